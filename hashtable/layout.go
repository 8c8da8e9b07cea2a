// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashtable

import "encoding/binary"

// The caller's buffer is laid out left to right as a fixed table header,
// the bucket array behind its own small header, and the record arena.
// Every link stored in the buffer is a byte offset from the start of the
// buffer. Offset 0 always lands inside the table header, so 0 doubles as
// the null link.
const (
	tableMagic   = 0x4854424c // "HTBL"
	tableVersion = 1

	// offsetBytes is the width of every intra-buffer link: bucket
	// heads and tails, record next links and free-list links.
	offsetBytes = 8

	// tableHeaderSize covers the magic, version, size-field width,
	// bucket count and arena offset/size fields written at creation.
	tableHeaderSize = 40

	// bucketArrayHeaderSize holds the slot count ahead of the slots.
	bucketArrayHeaderSize = 8

	// bucketSlotSize is one chain head plus one chain tail.
	bucketSlotSize = 2 * offsetBytes

	// arenaHeaderSize records the arena's extent ahead of the data.
	arenaHeaderSize = 16

	// recordHeaderSize precedes every record's key bytes: the next
	// link plus the key and value size fields.
	recordHeaderSize = offsetBytes + 2*sizeFieldBytes

	// minBucketCount is the floor applied when the bucket count is
	// derived from the buffer size rather than supplied explicitly.
	minBucketCount = 10

	// defaultBucketSharePct is the approximate share of the buffer,
	// in percent, given to the bucket array by a derived config.
	defaultBucketSharePct = 12
)

// Table header field offsets (bytes from buffer start).
const (
	hdrOffMagic       = 0  // uint32
	hdrOffVersion     = 4  // uint32
	hdrOffSizeWidth   = 8  // uint32
	hdrOffReserved    = 12 // uint32, zero
	hdrOffBucketCount = 16 // uint64
	hdrOffArenaOffset = 24 // uint64
	hdrOffArenaSize   = 32 // uint64
)

// MinBufferSize returns the smallest buffer, in bytes, on which New can
// succeed with a bucket count of n. A table created on exactly this many
// bytes has a zero-byte arena: creation succeeds and the first insert
// reports ErrNoSpace.
func MinBufferSize(n int) int {
	return tableHeaderSize + bucketArrayHeaderSize + n*bucketSlotSize + arenaHeaderSize
}

// deriveBucketCount sizes the bucket array at roughly
// defaultBucketSharePct of the buffer, never below minBucketCount.
func deriveBucketCount(bufLen int) int {
	n := bufLen * defaultBucketSharePct / 100 / bucketSlotSize
	if n < minBucketCount {
		n = minBucketCount
	}
	return n
}

// writeHeader stamps the creation-time layout description. The live
// counters stay on the Table struct; the buffer is not reopened.
func (t *Table) writeHeader() {
	binary.LittleEndian.PutUint32(t.buf[hdrOffMagic:], tableMagic)
	binary.LittleEndian.PutUint32(t.buf[hdrOffVersion:], tableVersion)
	binary.LittleEndian.PutUint32(t.buf[hdrOffSizeWidth:], sizeFieldBytes)
	binary.LittleEndian.PutUint32(t.buf[hdrOffReserved:], 0)
	binary.LittleEndian.PutUint64(t.buf[hdrOffBucketCount:], uint64(t.bucketCount))
	binary.LittleEndian.PutUint64(t.buf[hdrOffArenaOffset:], uint64(t.dataOff))
	binary.LittleEndian.PutUint64(t.buf[hdrOffArenaSize:], uint64(t.arenaSize))
	binary.LittleEndian.PutUint64(t.buf[tableHeaderSize:], uint64(t.bucketCount))
	arenaHdr := t.dataOff - arenaHeaderSize
	binary.LittleEndian.PutUint64(t.buf[arenaHdr:], 0) // bytes used at creation
	binary.LittleEndian.PutUint64(t.buf[arenaHdr+8:], uint64(t.arenaSize))
}

func (t *Table) getOffset(pos int) int {
	return int(binary.LittleEndian.Uint64(t.buf[pos:]))
}

func (t *Table) putOffset(pos, off int) {
	binary.LittleEndian.PutUint64(t.buf[pos:], uint64(off))
}

func (t *Table) bucketPos(i int) int {
	return t.bucketsOff + i*bucketSlotSize
}

func (t *Table) bucketHead(i int) int {
	return t.getOffset(t.bucketPos(i))
}

func (t *Table) bucketTail(i int) int {
	return t.getOffset(t.bucketPos(i) + offsetBytes)
}

func (t *Table) setBucketHead(i, off int) {
	t.putOffset(t.bucketPos(i), off)
}

func (t *Table) setBucketTail(i, off int) {
	t.putOffset(t.bucketPos(i)+offsetBytes, off)
}
