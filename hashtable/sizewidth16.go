// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

//go:build hashtable_size16

package hashtable

import "encoding/binary"

// 16-bit size fields: smallest per-record header, keys and values are
// limited to 65535 bytes each.
const sizeFieldBytes = 2

const maxSizeField = 1<<16 - 1

func putSizeField(b []byte, v int) {
	binary.LittleEndian.PutUint16(b, uint16(v))
}

func getSizeField(b []byte) int {
	return int(binary.LittleEndian.Uint16(b))
}
