// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package monitor

import (
	"github.com/eriknyquist/hashtable/hashtable"
	"github.com/prometheus/client_golang/prometheus"
)

// TableCollector exposes a hashtable's occupancy counters as prometheus
// gauges. A Table is owned by one goroutine, so the collector takes a
// snapshot callback rather than the table: the owner decides how a
// consistent Stats value reaches the scrape goroutine.
type TableCollector struct {
	stats func() hashtable.Stats

	entries         *prometheus.Desc
	bucketsOccupied *prometheus.Desc
	bucketCount     *prometheus.Desc
	bytesUsed       *prometheus.Desc
	bytesRemaining  *prometheus.Desc
	bytesTotal      *prometheus.Desc
	freeRecords     *prometheus.Desc
}

// NewTableCollector builds a collector for one table. name becomes the
// "table" label on every metric.
func NewTableCollector(name string, stats func() hashtable.Stats) *TableCollector {
	labels := prometheus.Labels{"table": name}
	desc := func(metric, help string) *prometheus.Desc {
		return prometheus.NewDesc("hashtable_"+metric, help, nil, labels)
	}
	return &TableCollector{
		stats:           stats,
		entries:         desc("entries", "Live records across all chains."),
		bucketsOccupied: desc("buckets_occupied", "Buckets with at least one record."),
		bucketCount:     desc("bucket_count", "Fixed length of the bucket array."),
		bytesUsed:       desc("arena_bytes_used", "Arena bytes handed out by the bump allocator."),
		bytesRemaining:  desc("arena_bytes_remaining", "Arena bytes not yet handed out."),
		bytesTotal:      desc("arena_bytes_total", "Arena data region size."),
		freeRecords:     desc("free_records", "Retired records awaiting reuse."),
	}
}

// Describe implements prometheus.Collector.
func (c *TableCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.bucketsOccupied
	ch <- c.bucketCount
	ch <- c.bytesUsed
	ch <- c.bytesRemaining
	ch <- c.bytesTotal
	ch <- c.freeRecords
}

// Collect implements prometheus.Collector.
func (c *TableCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.stats()
	gauge := func(d *prometheus.Desc, v int) prometheus.Metric {
		return prometheus.MustNewConstMetric(d, prometheus.GaugeValue, float64(v))
	}
	ch <- gauge(c.entries, s.Entries)
	ch <- gauge(c.bucketsOccupied, s.BucketsOccupied)
	ch <- gauge(c.bucketCount, s.BucketCount)
	ch <- gauge(c.bytesUsed, s.BytesUsed)
	ch <- gauge(c.bytesRemaining, s.BytesRemaining)
	ch <- gauge(c.bytesTotal, s.BytesTotal)
	ch <- gauge(c.freeRecords, s.FreeRecords)
}
