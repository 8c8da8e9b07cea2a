// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package main

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

// Workload is the representation of htdemo's YAML workload file.
type Workload struct {
	// Buffer size in bytes; the -buffer flag applies when zero.
	BufferSize int `yaml:"buffersize"`

	// Bucket count; the -buckets flag applies when zero, and a zero flag
	// derives it from the buffer size.
	BucketCount int `yaml:"bucketcount"`

	// Entries to insert, in order.
	Entries []Entry `yaml:"entries"`

	// Keys to remove after the inserts.
	Remove []string `yaml:"remove"`

	// Keys to look up and print.
	Lookup []string `yaml:"lookup"`
}

// Entry is one key/value pair of the workload.
type Entry struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

func parseWorkload(raw []byte) (Workload, error) {
	var w Workload
	if err := yaml.UnmarshalStrict(raw, &w); err != nil {
		return Workload{}, fmt.Errorf("can't parse workload: %v", err)
	}
	return w, nil
}

func defaultWorkload() Workload {
	return Workload{
		Entries: []Entry{
			{Key: "key1", Value: "val1"},
			{Key: "key2", Value: "val2"},
			{Key: "key3", Value: "val3"},
			{Key: "key4", Value: "val4"},
		},
		Remove: []string{"key2"},
		Lookup: []string{"key1", "key2"},
	}
}
