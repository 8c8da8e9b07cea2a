// Copyright (C) 2015  Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package monitor provides an embedded HTTP server to expose
// metrics for monitoring
package monitor

import (
	_ "expvar" // Go documentation recommended usage
	"fmt"
	"net/http"
	_ "net/http/pprof" // Go documentation recommended usage

	"github.com/eriknyquist/hashtable/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server represents a monitoring server
type Server interface {
	Run()
}

// server contains information for the monitoring server
type server struct {
	// Server name e.g. host[:port]
	serverName string
	log        logger.Logger
}

// NewMonitorServer creates a new server struct. Collectors registered
// with prometheus before Run are served under /metrics.
func NewMonitorServer(serverName string, log logger.Logger,
	collectors ...prometheus.Collector) Server {
	for _, c := range collectors {
		prometheus.MustRegister(c)
	}
	return &server{
		serverName: serverName,
		log:        log,
	}
}

func debugHandler(w http.ResponseWriter, r *http.Request) {
	indexTmpl := `<html>
	<head>
	<title>/debug</title>
	</head>
	<body>
	<p>/debug</p>
	<div><a href="/debug/vars">vars</a></div>
	<div><a href="/debug/pprof">pprof</a></div>
	<div><a href="/debug/loglevel">loglevel</a></div>
	<div><a href="/metrics">metrics</a></div>
	</body>
	</html>
	`
	fmt.Fprintf(w, indexTmpl)
}

// Run sets up the HTTP server and any handlers
func (s *server) Run() {
	http.HandleFunc("/debug", debugHandler)
	http.Handle("/debug/loglevel", newLogsetSrv(s.log))
	http.Handle("/metrics", promhttp.Handler())

	// monitoring server
	err := http.ListenAndServe(s.serverName, nil)
	if err != nil {
		s.log.Errorf("Could not start monitor server: %s", err)
	}
}
