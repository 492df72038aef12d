// Package shellwin binds the Windows shell's batch file-operation API
// (SHFileOperationW). The path-list codec lives in this file and is a
// pure string transformation, so it can be tested on any OS.
package shellwin

import "unicode/utf16"

// EncodePathList joins paths into the UTF-16 multi-string form consumed
// by SHFileOperationW's pFrom and pTo members: each entry is terminated
// by a NUL and the whole list by one extra NUL. An empty list encodes to
// a single NUL.
func EncodePathList(paths []string) []uint16 {
	buf := make([]uint16, 0, 16)

	for _, p := range paths {
		buf = append(buf, utf16.Encode([]rune(p))...)
		buf = append(buf, 0)
	}

	return append(buf, 0)
}

// DecodePathList is the inverse of EncodePathList: it splits the
// multi-string buffer back into individual paths, stopping at the
// empty entry that terminates the list.
func DecodePathList(buf []uint16) []string {
	var paths []string
	start := 0

	for i := 0; i < len(buf); i++ {
		if buf[i] != 0 {
			continue
		}
		if i == start {
			break
		}
		paths = append(paths, string(utf16.Decode(buf[start:i])))
		start = i + 1
	}

	return paths
}
