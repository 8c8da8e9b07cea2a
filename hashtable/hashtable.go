// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package hashtable implements a fixed-memory key/value store over a
// caller-supplied byte buffer.
//
// A Table maps arbitrary byte keys to arbitrary byte values using
// separate chaining. It allocates nothing after New: the bucket array
// and every record live inside the one buffer handed to New, whose size
// is fixed for the table's life. When the buffer is exhausted, Insert
// returns ErrNoSpace and the caller decides what to give up.
//
// A Table is owned by a single goroutine at a time. Slices returned by
// Retrieve and Next borrow the buffer and are invalidated by the next
// Insert or Remove.
package hashtable

import "bytes"

// Config supplies the table geometry. Both fields must be set in a
// non-nil Config; pass nil to New to derive a configuration from the
// buffer size instead.
type Config struct {
	// Hash selects the bucket for a key.
	Hash HashFunc

	// BucketCount fixes the length of the bucket array. It is never
	// resized or rehashed.
	BucketCount int
}

// Table is a fixed-memory separate-chaining map. The zero value is not
// usable; call New.
type Table struct {
	buf  []byte
	hash HashFunc

	bucketCount int
	bucketsOff  int // first bucket slot
	dataOff     int // first arena data byte
	arenaSize   int // arena data bytes total

	used     int // arena data bytes bump-allocated, never decreases
	entries  int // live records across all chains
	occupied int // buckets with a non-empty chain

	freeHead    int // retired records, FIFO; 0 when empty
	freeTail    int
	freeRecords int

	gen uint64 // bumped by every mutation; guards cursor validity
	cur cursor
}

// Stats is a point-in-time snapshot of table occupancy.
type Stats struct {
	Entries         int
	BucketCount     int
	BucketsOccupied int
	BytesUsed       int
	BytesRemaining  int
	BytesTotal      int
	FreeRecords     int
}

// New initializes a Table inside buf. With a nil cfg the bucket count is
// derived so the bucket array takes roughly 12% of the buffer (at least
// 10 buckets) and the hash is FNV1a32. New returns ErrNoSpace when buf
// is smaller than MinBufferSize of the bucket count; the table owns buf
// until the caller drops the table.
func New(buf []byte, cfg *Config) (*Table, error) {
	if paramCheck {
		if buf == nil {
			return nil, argError("new", "nil buffer")
		}
		if cfg != nil && cfg.Hash == nil {
			return nil, argError("new", "config has no hash function")
		}
		if cfg != nil && cfg.BucketCount <= 0 {
			return nil, argError("new", "config has zero bucket count")
		}
	}
	hash := HashFunc(FNV1a32)
	var n int
	if cfg != nil {
		hash = cfg.Hash
		n = cfg.BucketCount
	} else {
		n = deriveBucketCount(len(buf))
	}
	min := MinBufferSize(n)
	if len(buf) < min {
		return nil, ErrNoSpace
	}
	t := &Table{
		buf:         buf,
		hash:        hash,
		bucketCount: n,
		bucketsOff:  tableHeaderSize + bucketArrayHeaderSize,
		dataOff:     min,
		arenaSize:   len(buf) - min,
	}
	// The buffer arrives with arbitrary contents; the header and the
	// bucket slots are the only regions read before being written.
	for i := range buf[:min] {
		buf[i] = 0
	}
	t.writeHeader()
	return t, nil
}

// find walks the chain for key and returns the matching record, its
// predecessor in the chain (0 at the head) and the bucket index. The
// predecessor is what lets removal fix the chain tail. Keys match on
// length first, then bytes; hashes are never compared.
func (t *Table) find(key []byte) (rec, prev, bucket int) {
	bucket = int(t.hash(key) % uint32(t.bucketCount))
	for rec = t.bucketHead(bucket); rec != 0; rec = t.recordNext(rec) {
		if t.recordKeySize(rec) == len(key) && bytes.Equal(t.recordKey(rec), key) {
			return rec, prev, bucket
		}
		prev = rec
	}
	return 0, 0, bucket
}

// unlink removes rec from its chain and fixes the counters. prev is
// rec's predecessor as returned by find.
func (t *Table) unlink(bucket, rec, prev int) {
	next := t.recordNext(rec)
	if prev == 0 {
		t.setBucketHead(bucket, next)
	} else {
		t.setRecordNext(prev, next)
	}
	if next == 0 {
		t.setBucketTail(bucket, prev)
	}
	t.entries--
	if t.bucketHead(bucket) == 0 {
		t.occupied--
	}
}

// appendChain links rec at the tail of bucket's chain, preserving
// insertion order for iteration.
func (t *Table) appendChain(bucket, rec int) {
	t.setRecordNext(rec, 0)
	if tail := t.bucketTail(bucket); tail != 0 {
		t.setRecordNext(tail, rec)
	} else {
		t.setBucketHead(bucket, rec)
		t.occupied++
	}
	t.setBucketTail(bucket, rec)
	t.entries++
}

// Insert stores value under key, overwriting any previous value. A value
// no larger than the one already stored is overwritten in place; a
// larger value retires the old record to the free list and allocates
// afresh. A nil or empty value stores a key-only record. On ErrNoSpace
// the table is unchanged.
func (t *Table) Insert(key, value []byte) error {
	if err := t.checkKey("insert", key); err != nil {
		return err
	}
	if paramCheck && uint64(len(value)) > maxSizeField {
		return argError("insert", "value too long for size field")
	}
	rec, prev, bucket := t.find(key)
	if rec != 0 && len(value) <= t.recordValueSize(rec) {
		copy(t.recordValue(rec), value)
		t.setRecordValueSize(rec, len(value))
		t.gen++
		return nil
	}
	// A growing record can never reclaim its own slot (the recorded
	// footprint is what it outgrew), so allocating before unlinking
	// changes nothing except that a failed insert leaves no trace.
	off := t.allocate(recordHeaderSize + len(key) + len(value))
	if off == 0 {
		return ErrNoSpace
	}
	if rec != 0 {
		t.unlink(bucket, rec, prev)
		t.freePush(rec)
	}
	t.setRecordKeySize(off, len(key))
	t.setRecordValueSize(off, len(value))
	copy(t.buf[off+recordHeaderSize:], key)
	if len(value) > 0 {
		copy(t.buf[off+recordHeaderSize+len(key):], value)
	}
	t.appendChain(bucket, off)
	t.gen++
	return nil
}

// Retrieve returns the value stored under key as a view into the table's
// buffer. The view must not be written to and is only valid until the
// next Insert or Remove. A key stored with an empty value yields an
// empty, non-nil view. Returns ErrNotFound for an absent key.
func (t *Table) Retrieve(key []byte) ([]byte, error) {
	if err := t.checkKey("retrieve", key); err != nil {
		return nil, err
	}
	rec, _, _ := t.find(key)
	if rec == 0 {
		return nil, ErrNotFound
	}
	return t.recordValue(rec), nil
}

// Remove unlinks key's record and retires it for reuse. Returns
// ErrNotFound for an absent key; the arena's used byte count is
// unaffected either way.
func (t *Table) Remove(key []byte) error {
	if err := t.checkKey("remove", key); err != nil {
		return err
	}
	rec, prev, bucket := t.find(key)
	if rec == 0 {
		return ErrNotFound
	}
	t.unlink(bucket, rec, prev)
	t.freePush(rec)
	t.gen++
	return nil
}

// HasKey reports whether key is present.
func (t *Table) HasKey(key []byte) (bool, error) {
	if err := t.checkKey("haskey", key); err != nil {
		return false, err
	}
	rec, _, _ := t.find(key)
	return rec != 0, nil
}

// BytesRemaining returns the arena bytes the bump allocator has not yet
// handed out. Free-list capacity is excluded: retired records are not
// contiguous and cannot satisfy arbitrary requests.
func (t *Table) BytesRemaining() int {
	return t.arenaSize - t.used
}

// Len returns the number of live records.
func (t *Table) Len() int {
	return t.entries
}

// BucketCount returns the fixed length of the bucket array.
func (t *Table) BucketCount() int {
	return t.bucketCount
}

// BucketsOccupied returns the number of buckets with at least one
// record.
func (t *Table) BucketsOccupied() int {
	return t.occupied
}

// Stats returns a snapshot of the table's occupancy counters.
func (t *Table) Stats() Stats {
	return Stats{
		Entries:         t.entries,
		BucketCount:     t.bucketCount,
		BucketsOccupied: t.occupied,
		BytesUsed:       t.used,
		BytesRemaining:  t.arenaSize - t.used,
		BytesTotal:      t.arenaSize,
		FreeRecords:     t.freeRecords,
	}
}

// checkKey is the shared precondition for every keyed operation.
func (t *Table) checkKey(op string, key []byte) error {
	if !paramCheck {
		return nil
	}
	if t == nil {
		return argError(op, "nil table")
	}
	if len(key) == 0 {
		return argError(op, "zero-length key")
	}
	if uint64(len(key)) > maxSizeField {
		return argError(op, "key too long for size field")
	}
	return nil
}
