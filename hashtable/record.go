// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashtable

// A record is a variable-length region of the arena:
//
//	[ next | key_size | value_size | key_bytes... | value_bytes... ]
//
// next doubles as the chain link while the record is live and as the
// free-list link once it has been retired. The accessors below read and
// write the header fields; Insert copies key and value bytes in directly.

func (t *Table) recordNext(off int) int {
	return t.getOffset(off)
}

func (t *Table) setRecordNext(off, next int) {
	t.putOffset(off, next)
}

func (t *Table) recordKeySize(off int) int {
	return getSizeField(t.buf[off+offsetBytes:])
}

func (t *Table) setRecordKeySize(off, n int) {
	putSizeField(t.buf[off+offsetBytes:], n)
}

func (t *Table) recordValueSize(off int) int {
	return getSizeField(t.buf[off+offsetBytes+sizeFieldBytes:])
}

func (t *Table) setRecordValueSize(off, n int) {
	putSizeField(t.buf[off+offsetBytes+sizeFieldBytes:], n)
}

// recordKey returns the key bytes as a capacity-clamped view into the
// arena. Callers treat it as read only.
func (t *Table) recordKey(off int) []byte {
	start := off + recordHeaderSize
	end := start + t.recordKeySize(off)
	return t.buf[start:end:end]
}

// recordValue returns the value bytes as a capacity-clamped view into
// the arena. The view is empty, not nil, for a zero-size value.
func (t *Table) recordValue(off int) []byte {
	start := off + recordHeaderSize + t.recordKeySize(off)
	end := start + t.recordValueSize(off)
	return t.buf[start:end:end]
}

// recordFootprint is the byte span the record accounts for, computed
// from the stored sizes. A record whose value shrank in place reports a
// smaller footprint than the span originally carved for it; the trailing
// excess stays unreachable, also after the slot cycles through the free
// list. Shrinking is recorded, capacity is not.
func (t *Table) recordFootprint(off int) int {
	return recordHeaderSize + t.recordKeySize(off) + t.recordValueSize(off)
}
