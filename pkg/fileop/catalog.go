package fileop

// errorCatalog maps the batch file-operation status codes that carry a
// meaning specific to that call, overriding the generic system message
// for the same numeric value. Read-only for the life of the process.
var errorCatalog = map[int]string{
	0x71: "The source and destination files are the same file.",
	0x72: "Multiple file paths were specified in the source buffer, but only one destination file path.",
	0x73: "Rename operation was specified but the destination path is a different directory. Use the move operation instead.",
	0x74: "The source is a root directory, which cannot be moved or renamed.",
	0x75: "The operation was canceled by the user, or silently canceled if the appropriate flags were supplied to SHFileOperation.",
	0x76: "The destination is a subtree of the source.",
	0x78: "Security settings denied access to the source.",
	0x79: "The source or destination path exceeded or would exceed MAX_PATH.",
	0x7a: "The operation involved multiple destination paths, which can fail in the case of a move operation.",
	0x7c: "The path in the source or destination or both was invalid.",
	0x7d: "The source and destination have the same parent folder.",
	0x7e: "The destination path is an existing file.",
	0x80: "The destination path is an existing folder.",
	0x81: "The name of the file exceeds MAX_PATH.",
	0x82: "The destination is a read-only CD-ROM, possibly unformatted.",
	0x83: "The destination is a read-only DVD, possibly unformatted.",
	0x84: "The destination is a writable CD-ROM, possibly unformatted.",
	0x85: "The file involved in the operation is too large for the destination media or file system.",
	0x86: "The source is a read-only CD-ROM, possibly unformatted.",
	0x87: "The source is a read-only DVD, possibly unformatted.",
	0x88: "The source is a writable CD-ROM, possibly unformatted.",
	0xb7: "MAX_PATH was exceeded during the operation.",
	0x402: "An unknown error occurred. This is typically due to an " +
		"invalid path in the source or destination. This error does not occur on Windows Vista and later.",
	0x10000: "An unspecified error occurred on the destination.",
	0x10074: "Destination is a root directory and cannot be renamed.",
}

// CatalogMessage returns the curated message for a status code, if the
// catalog has one.
func CatalogMessage(code int) (string, bool) {
	msg, ok := errorCatalog[code]
	return msg, ok
}
