// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

//go:build !hashtable_size16 && !hashtable_size32

package hashtable

import "encoding/binary"

// sizeFieldBytes is the width of the key and value size fields in every
// record header. The default is 8 bytes, matching the pointer size on
// 64-bit targets. The hashtable_size16 and hashtable_size32 build tags
// trade maximum key/value length for a smaller per-record header; the
// chosen width applies everywhere a key or value length is stored, and
// buffers written under one width are not meaningful under another.
const sizeFieldBytes = 8

// maxSizeField is the largest key or value length representable in a
// size field at this width.
const maxSizeField = 1<<63 - 1

func putSizeField(b []byte, v int) {
	binary.LittleEndian.PutUint64(b, uint64(v))
}

func getSizeField(b []byte) int {
	return int(binary.LittleEndian.Uint64(b))
}
