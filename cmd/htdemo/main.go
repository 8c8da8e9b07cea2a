// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// The htdemo command drives a fixed-memory hashtable through a workload
// described in a YAML file, or through a small built-in workload, and
// prints the resulting table contents and occupancy counters.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/eriknyquist/hashtable/glog"
	"github.com/eriknyquist/hashtable/hashtable"
	"github.com/eriknyquist/hashtable/logger"
)

func main() {
	bufferSize := flag.Int("buffer", 4096, "table buffer size in `bytes`")
	bucketCount := flag.Int("buckets", 0, "bucket count, 0 derives it from the buffer size")
	configFlag := flag.String("config", "", "YAML workload `file`")
	flag.Parse()
	var log logger.Logger = &glog.Glog{}

	workload := defaultWorkload()
	if *configFlag != "" {
		raw, err := os.ReadFile(*configFlag)
		if err != nil {
			log.Fatalf("Can't read workload file %q: %v", *configFlag, err)
		}
		workload, err = parseWorkload(raw)
		if err != nil {
			log.Fatal(err)
		}
	}
	if workload.BufferSize == 0 {
		workload.BufferSize = *bufferSize
	}
	if workload.BucketCount == 0 {
		workload.BucketCount = *bucketCount
	}

	var cfg *hashtable.Config
	if workload.BucketCount > 0 {
		cfg = &hashtable.Config{Hash: hashtable.FNV1a32, BucketCount: workload.BucketCount}
	}
	ht, err := hashtable.New(make([]byte, workload.BufferSize), cfg)
	if err != nil {
		log.Fatalf("Can't create table in a %d-byte buffer: %v", workload.BufferSize, err)
	}

	for _, e := range workload.Entries {
		if err := ht.Insert([]byte(e.Key), []byte(e.Value)); err != nil {
			log.Fatalf("Insert %q: %v", e.Key, err)
		}
	}
	for _, k := range workload.Remove {
		if err := ht.Remove([]byte(k)); err != nil {
			log.Fatalf("Remove %q: %v", k, err)
		}
	}
	for _, k := range workload.Lookup {
		v, err := ht.Retrieve([]byte(k))
		switch {
		case errors.Is(err, hashtable.ErrNotFound):
			fmt.Printf("lookup %q: not found\n", k)
		case err != nil:
			log.Fatalf("Retrieve %q: %v", k, err)
		default:
			fmt.Printf("lookup %q: %q\n", k, v)
		}
	}

	fmt.Println("table contents:")
	ht.Reset()
	for {
		k, v, err := ht.Next()
		if err != nil {
			break
		}
		fmt.Printf("  %q = %q\n", k, v)
	}

	s := ht.Stats()
	fmt.Printf("entries=%d buckets=%d/%d arena=%d/%d bytes free-records=%d\n",
		s.Entries, s.BucketsOccupied, s.BucketCount,
		s.BytesUsed, s.BytesTotal, s.FreeRecords)
}
