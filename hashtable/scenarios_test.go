// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashtable

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

// End-to-end flows exercising the public surface the way the demo
// drivers do.

func TestScenarioInsertThenIterate(t *testing.T) {
	ht := newTable(t, 4096, nil)
	want := map[string]string{
		"key1": "val1",
		"key2": "val2",
		"key3": "val3",
		"key4": "val4",
	}
	for k, v := range want {
		if err := ht.Insert([]byte(k), []byte(v)); err != nil {
			t.Fatal(err)
		}
	}
	got := collect(t, ht)
	if len(got) != 4 {
		t.Fatalf("traversal yielded %d pairs, want 4", len(got))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("traversal has %q=%q, want %q", k, got[k], v)
		}
	}
}

func TestScenarioShrinkingOverwrite(t *testing.T) {
	ht := newTable(t, 4096, nil)
	if err := ht.Insert([]byte("k"), []byte("alpha")); err != nil {
		t.Fatal(err)
	}
	v, err := ht.Retrieve([]byte("k"))
	if err != nil || len(v) != 5 || !bytes.Equal(v, []byte("alpha")) {
		t.Fatalf("Retrieve #1 = %q, %v", v, err)
	}
	remain := ht.BytesRemaining()
	if err := ht.Insert([]byte("k"), []byte("beta")); err != nil {
		t.Fatal(err)
	}
	v, err = ht.Retrieve([]byte("k"))
	if err != nil || len(v) != 4 || !bytes.Equal(v, []byte("beta")) {
		t.Fatalf("Retrieve #2 = %q, %v", v, err)
	}
	if got := ht.BytesRemaining(); got != remain {
		t.Errorf("BytesRemaining changed across shrinking overwrite: %d -> %d", remain, got)
	}
}

func TestScenarioGrowingOverwrite(t *testing.T) {
	ht := newTable(t, 4096, nil)
	if err := ht.Insert([]byte("k"), []byte("12345")); err != nil {
		t.Fatal(err)
	}
	remain := ht.BytesRemaining()
	if err := ht.Insert([]byte("k"), []byte("123456")); err != nil {
		t.Fatal(err)
	}
	if got := ht.BytesRemaining(); got >= remain {
		t.Errorf("BytesRemaining after growing overwrite = %d, want < %d", got, remain)
	}
}

// randomPairs generates n distinct random keys with values, lengths 4-24
// bytes, from a fixed seed.
func randomPairs(n int) map[string]string {
	rng := rand.New(rand.NewSource(0x5eed))
	randBytes := func() []byte {
		b := make([]byte, 4+rng.Intn(21))
		for i := range b {
			b[i] = byte(rng.Intn(256))
		}
		return b
	}
	pairs := make(map[string]string, n)
	for len(pairs) < n {
		pairs[string(randBytes())] = string(randBytes())
	}
	return pairs
}

func TestScenarioRandomChurn(t *testing.T) {
	ht := newTable(t, 128*1024, nil)
	pairs := randomPairs(1000)
	for k, v := range pairs {
		if err := ht.Insert([]byte(k), []byte(v)); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	// Remove half, keep half.
	removed := map[string]bool{}
	for k := range pairs {
		if len(removed) == 500 {
			break
		}
		removed[k] = true
		if err := ht.Remove([]byte(k)); err != nil {
			t.Fatalf("Remove: %v", err)
		}
	}

	for k, v := range pairs {
		got, err := ht.Retrieve([]byte(k))
		if removed[k] {
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("Retrieve of removed key: got %v, want ErrNotFound", err)
			}
			continue
		}
		if err != nil || !bytes.Equal(got, []byte(v)) {
			t.Fatalf("Retrieve of live key = %q, %v, want %q", got, err, v)
		}
	}
	if got := ht.Len(); got != 500 {
		t.Fatalf("Len() after churn = %d, want 500", got)
	}

	// Exactly the 500 live keys come out of a traversal.
	got := collect(t, ht)
	if len(got) != 500 {
		t.Fatalf("traversal yielded %d records, want 500", len(got))
	}
	for k, v := range got {
		if removed[k] {
			t.Fatalf("traversal emitted removed key %q", k)
		}
		if pairs[k] != v {
			t.Fatalf("traversal has %q=%q, want %q", k, v, pairs[k])
		}
	}
}

func TestScenarioSingleBucketExhaustion(t *testing.T) {
	// One bucket, 512-byte buffer, two large records: the second
	// insert fails and leaves the accounting untouched.
	ht := newTable(t, 512, &Config{Hash: FNV1a32, BucketCount: 1})
	key1 := bytes.Repeat([]byte{'a'}, 128)
	key2 := bytes.Repeat([]byte{'b'}, 128)
	val := bytes.Repeat([]byte{'v'}, 128)
	if err := ht.Insert(key1, val); err != nil {
		t.Fatalf("first Insert: %v", err)
	}
	remain := ht.BytesRemaining()
	if err := ht.Insert(key2, val); !errors.Is(err, ErrNoSpace) {
		t.Fatalf("second Insert: got %v, want ErrNoSpace", err)
	}
	if got := ht.BytesRemaining(); got != remain {
		t.Errorf("failed Insert moved BytesRemaining: %d -> %d", remain, got)
	}
	if got := ht.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestScenarioFillToCapacity(t *testing.T) {
	// Drive a small table to ErrNoSpace, then verify everything that
	// got in is still intact.
	ht := newTable(t, 2048, nil)
	var kept []string
	for i := 0; ; i++ {
		k := fmt.Sprintf("fill-key-%04d", i)
		err := ht.Insert([]byte(k), []byte("fill-value"))
		if errors.Is(err, ErrNoSpace) {
			break
		}
		if err != nil {
			t.Fatalf("Insert: %v", err)
		}
		kept = append(kept, k)
	}
	if len(kept) == 0 {
		t.Fatal("no inserts succeeded")
	}
	if got := ht.Len(); got != len(kept) {
		t.Errorf("Len() = %d, want %d", got, len(kept))
	}
	for _, k := range kept {
		if v, err := ht.Retrieve([]byte(k)); err != nil || string(v) != "fill-value" {
			t.Fatalf("Retrieve(%q) after fill = %q, %v", k, v, err)
		}
	}
}
