// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/urfave/negroni"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "diffeo",
			Subsystem: "lists",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "diffeo",
			Subsystem: "lists",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

// countRequests records the count and latency of every request.
func countRequests(rw http.ResponseWriter, req *http.Request, next http.HandlerFunc) {
	start := time.Now()
	next(rw, req)
	status := http.StatusOK
	if nrw, ok := rw.(negroni.ResponseWriter); ok && nrw.Status() != 0 {
		status = nrw.Status()
	}
	httpRequestsTotal.WithLabelValues(req.Method, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(req.Method).Observe(time.Since(start).Seconds())
}
