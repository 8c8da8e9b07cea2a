// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashtable

// Record allocation is a FIFO free list searched first fit, backed by a
// bump pointer over the untouched tail of the arena. The bump pointer
// never retreats and freed records are never split, merged or moved:
// a freed slot can hold any record no larger than the footprint of the
// record it last held, which keeps free-and-reinsert cycles of the same
// record sizes from consuming fresh arena bytes. The footprint comes
// from the stored sizes, so bytes beyond them (left by an in-place
// shrink or by a smaller record reusing the slot) are not offered again.

// allocate returns the offset of storage for an n-byte record, or 0 when
// neither the free list nor the remaining arena can supply it. A free
// record is returned whole: its trailing excess stays with the slot.
func (t *Table) allocate(n int) int {
	prev := 0
	for rec := t.freeHead; rec != 0; prev, rec = rec, t.recordNext(rec) {
		if t.recordFootprint(rec) < n {
			continue
		}
		next := t.recordNext(rec)
		if prev == 0 {
			t.freeHead = next
		} else {
			t.setRecordNext(prev, next)
		}
		if rec == t.freeTail {
			t.freeTail = prev
		}
		t.freeRecords--
		t.setRecordNext(rec, 0)
		return rec
	}
	if n > t.arenaSize-t.used {
		return 0
	}
	off := t.dataOff + t.used
	t.used += n
	return off
}

// freePush retires a record to the tail of the free list. The next link
// is cleared first; retired records are unreachable from every bucket.
func (t *Table) freePush(rec int) {
	t.setRecordNext(rec, 0)
	if t.freeTail == 0 {
		t.freeHead = rec
	} else {
		t.setRecordNext(t.freeTail, rec)
	}
	t.freeTail = rec
	t.freeRecords++
}
