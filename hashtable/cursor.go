// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashtable

// cursor is the state of an in-progress traversal: the bucket being
// walked, the next record within its chain, how many records have been
// yielded and a sticky exhausted flag. gen is the table generation
// snapshotted at Reset.
type cursor struct {
	bucket    int
	record    int
	traversed int
	exhausted bool
	gen       uint64
}

// Next yields the next live record as borrowed key and value views into
// the table's buffer. Records come out in ascending bucket order and in
// insertion order within a bucket; no ordering holds across buckets.
// After the last record, and on every call thereafter until Reset, Next
// returns ErrExhausted.
//
// Mutating the table between Next calls invalidates the traversal: Next
// then returns ErrModified rather than walking chains that may no longer
// contain its record. Reset starts a fresh traversal.
func (t *Table) Next() (key, value []byte, err error) {
	if paramCheck && t == nil {
		return nil, nil, argError("next", "nil table")
	}
	if t.cur.exhausted {
		return nil, nil, ErrExhausted
	}
	if t.cur.gen != t.gen {
		return nil, nil, ErrModified
	}
	for t.cur.bucket < t.bucketCount && t.cur.traversed < t.entries {
		if t.cur.record == 0 {
			t.cur.record = t.bucketHead(t.cur.bucket)
		}
		if rec := t.cur.record; rec != 0 {
			t.cur.record = t.recordNext(rec)
			if t.cur.record == 0 {
				t.cur.bucket++
			}
			t.cur.traversed++
			return t.recordKey(rec), t.recordValue(rec), nil
		}
		t.cur.bucket++
	}
	t.cur.exhausted = true
	return nil, nil, ErrExhausted
}

// Reset rewinds the cursor to the first bucket and revalidates it
// against the table's current state.
func (t *Table) Reset() {
	if paramCheck && t == nil {
		return
	}
	t.cur = cursor{gen: t.gen}
}
