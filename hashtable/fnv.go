// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashtable

// HashFunc computes the 32-bit hash of a key. A table's hash function is
// fixed at creation; hashes select buckets and are never compared for
// key equality.
type HashFunc func(key []byte) uint32

// FNV-1a, 32-bit variant.
const (
	fnvOffsetBasis = 0x811c9dc5
	fnvPrime       = 0x01000193
)

// FNV1a32 is the default hash function: byte-wise XOR then multiply.
// hash/fnv in the standard library wraps the same arithmetic in an
// allocating hash.Hash32; the table needs the bare function.
func FNV1a32(key []byte) uint32 {
	h := uint32(fnvOffsetBasis)
	for _, b := range key {
		h ^= uint32(b)
		h *= fnvPrime
	}
	return h
}
