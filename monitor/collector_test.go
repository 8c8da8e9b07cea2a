// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package monitor

import (
	"strings"
	"testing"

	"github.com/eriknyquist/hashtable/hashtable"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestTableCollector(t *testing.T) {
	ht, err := hashtable.New(make([]byte, 4096), nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := ht.Insert([]byte("key1"), []byte("val1")); err != nil {
		t.Fatal(err)
	}
	if err := ht.Insert([]byte("key2"), []byte("val2")); err != nil {
		t.Fatal(err)
	}
	if err := ht.Remove([]byte("key1")); err != nil {
		t.Fatal(err)
	}

	coll := NewTableCollector("test", ht.Stats)
	ch := make(chan prometheus.Metric, 16)
	coll.Collect(ch)
	close(ch)

	stats := ht.Stats()
	want := map[string]float64{
		"hashtable_entries":               float64(stats.Entries),
		"hashtable_buckets_occupied":      float64(stats.BucketsOccupied),
		"hashtable_bucket_count":          float64(stats.BucketCount),
		"hashtable_arena_bytes_used":      float64(stats.BytesUsed),
		"hashtable_arena_bytes_remaining": float64(stats.BytesRemaining),
		"hashtable_arena_bytes_total":     float64(stats.BytesTotal),
		"hashtable_free_records":          float64(stats.FreeRecords),
	}

	seen := 0
	for metric := range ch {
		var m dto.Metric
		if err := metric.Write(&m); err != nil {
			t.Fatal(err)
		}
		desc := metric.Desc().String()
		name := ""
		for wantName := range want {
			if strings.Contains(desc, wantName) {
				name = wantName
				break
			}
		}
		if name == "" {
			t.Fatalf("unexpected metric: %s", desc)
		}
		if got := m.GetGauge().GetValue(); got != want[name] {
			t.Errorf("%s = %v, want %v", name, got, want[name])
		}
		hasLabel := false
		for _, lp := range m.GetLabel() {
			if lp.GetName() == "table" && lp.GetValue() == "test" {
				hasLabel = true
			}
		}
		if !hasLabel {
			t.Errorf("%s missing table label", name)
		}
		seen++
	}
	if seen != len(want) {
		t.Errorf("collected %d metrics, want %d", seen, len(want))
	}
}
