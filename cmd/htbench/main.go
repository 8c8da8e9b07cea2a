// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// The htbench command measures fixed-memory hashtable throughput: it
// fills a table with random records, reads everything back, churns half
// of the keyspace through remove/reinsert cycles and walks the cursor,
// timing each phase. With -listenaddr it also serves the table's
// occupancy counters as Prometheus metrics while the workload runs.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"runtime"
	"sync"

	"github.com/eriknyquist/hashtable/glog"
	"github.com/eriknyquist/hashtable/hashtable"
	"github.com/eriknyquist/hashtable/logger"
	"github.com/eriknyquist/hashtable/monitor"
	"github.com/eriknyquist/hashtable/monotime"
	"golang.org/x/sync/errgroup"
)

type pair struct {
	key, value []byte
}

// generate builds n random pairs, sharded across the CPUs. Keys are not
// deduplicated here; the fill phase skips any key the table already holds.
func generate(n int, keyMin, keyMax, valMin, valMax int, seed int64) []pair {
	shards := runtime.GOMAXPROCS(0)
	if shards > n {
		shards = 1
	}
	pairs := make([]pair, n)
	var g errgroup.Group
	per := n / shards
	for s := 0; s < shards; s++ {
		s := s
		lo, hi := s*per, (s+1)*per
		if s == shards-1 {
			hi = n
		}
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed + int64(s)))
			randBytes := func(min, max int) []byte {
				b := make([]byte, min+rng.Intn(max-min+1))
				rng.Read(b)
				return b
			}
			for i := lo; i < hi; i++ {
				pairs[i] = pair{
					key:   randBytes(keyMin, keyMax),
					value: randBytes(valMin, valMax),
				}
			}
			return nil
		})
	}
	g.Wait()
	return pairs
}

// snapshot hands Stats across goroutines: the workload owns the table,
// the scrape handler only ever sees the last published copy.
type snapshot struct {
	mu sync.Mutex
	s  hashtable.Stats
}

func (s *snapshot) publish(stats hashtable.Stats) {
	s.mu.Lock()
	s.s = stats
	s.mu.Unlock()
}

func (s *snapshot) get() hashtable.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s
}

func main() {
	bufferSize := flag.Int("buffer", 1<<20, "table buffer size in `bytes`")
	bucketCount := flag.Int("buckets", 0, "bucket count, 0 derives it from the buffer size")
	keys := flag.Int("keys", 10000, "records to insert")
	keyMin := flag.Int("keymin", 4, "minimum key length")
	keyMax := flag.Int("keymax", 24, "maximum key length")
	valMin := flag.Int("valmin", 4, "minimum value length")
	valMax := flag.Int("valmax", 24, "maximum value length")
	cycles := flag.Int("cycles", 3, "churn cycles over half the keyspace")
	seed := flag.Int64("seed", 1, "random seed")
	listenAddr := flag.String("listenaddr", "", "serve /metrics and /debug on this `address`")
	flag.Parse()
	var log logger.Logger = &glog.Glog{}

	var cfg *hashtable.Config
	if *bucketCount > 0 {
		cfg = &hashtable.Config{Hash: hashtable.FNV1a32, BucketCount: *bucketCount}
	}
	ht, err := hashtable.New(make([]byte, *bufferSize), cfg)
	if err != nil {
		log.Fatalf("Can't create table in a %d-byte buffer: %v", *bufferSize, err)
	}

	var snap snapshot
	snap.publish(ht.Stats())
	if *listenAddr != "" {
		coll := monitor.NewTableCollector("htbench", snap.get)
		go monitor.NewMonitorServer(*listenAddr, log, coll).Run()
	}

	pairs := generate(*keys, *keyMin, *keyMax, *valMin, *valMax, *seed)

	// Fill until done or the arena gives out. A key duplicated by the
	// generator is skipped so churn sees each live key exactly once.
	live := make([]pair, 0, len(pairs))
	start := monotime.Now()
	for _, p := range pairs {
		if ok, _ := ht.HasKey(p.key); ok {
			continue
		}
		if err := ht.Insert(p.key, p.value); err != nil {
			break
		}
		live = append(live, p)
	}
	report("fill", len(live), monotime.Since(start))
	snap.publish(ht.Stats())

	start = monotime.Now()
	for _, p := range live {
		if _, err := ht.Retrieve(p.key); err != nil {
			log.Fatalf("Retrieve lost key %q: %v", p.key, err)
		}
	}
	report("lookup", len(live), monotime.Since(start))

	// Churn: remove and reinsert the first half of the live set. The
	// free list absorbs every cycle, so the arena level must hold.
	half := live[:len(live)/2]
	floor := ht.BytesRemaining()
	start = monotime.Now()
	for c := 0; c < *cycles; c++ {
		for _, p := range half {
			if err := ht.Remove(p.key); err != nil {
				log.Fatalf("Remove lost key %q: %v", p.key, err)
			}
		}
		for _, p := range half {
			if err := ht.Insert(p.key, p.value); err != nil {
				log.Fatalf("churn reinsert %q: %v", p.key, err)
			}
		}
	}
	report("churn", 2*len(half)*(*cycles), monotime.Since(start))
	snap.publish(ht.Stats())
	if got := ht.BytesRemaining(); got != floor {
		log.Fatalf("churn leaked arena bytes: %d remaining, want %d", got, floor)
	}

	start = monotime.Now()
	ht.Reset()
	walked := 0
	for {
		if _, _, err := ht.Next(); err != nil {
			break
		}
		walked++
	}
	report("iterate", walked, monotime.Since(start))

	s := ht.Stats()
	fmt.Printf("table: entries=%d buckets=%d/%d arena %s of %s used, %d free records\n",
		s.Entries, s.BucketsOccupied, s.BucketCount,
		formatBytes(s.BytesUsed), formatBytes(s.BytesTotal), s.FreeRecords)

	verbose := &glog.Glog{InfoLevel: 1}
	verbose.Info(monitor.VarsToString())

	if *listenAddr != "" {
		fmt.Printf("serving metrics on %s, ^C to stop\n", *listenAddr)
		select {}
	}
}
