// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

//go:build hashtable_size32

package hashtable

import "encoding/binary"

// 32-bit size fields: 4-byte lengths everywhere a key or value length
// is stored.
const sizeFieldBytes = 4

const maxSizeField = 1<<32 - 1

func putSizeField(b []byte, v int) {
	binary.LittleEndian.PutUint32(b, uint32(v))
}

func getSizeField(b []byte) int {
	return int(binary.LittleEndian.Uint32(b))
}
