// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"context"
	"net/http"
	"time"

	"github.com/diffeo/go-lists/lists"
	"github.com/diffeo/go-lists/restserver"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
)

// requestIDHeader carries the request ID in both directions.
const requestIDHeader = "X-Request-Id"

type contextKey int

const requestIDKey contextKey = iota

// newHandler builds the complete HTTP handler: the list API, the
// /metrics endpoint, and the middleware around them.  If reqLogger
// is non-nil, every request is logged to it.
func newHandler(store lists.Store, reqLogger *logrus.Logger) http.Handler {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	restserver.PopulateRouter(r, store)

	n := negroni.New()
	n.Use(negroni.NewRecovery())
	n.UseFunc(requestID)
	n.UseFunc(countRequests)
	if reqLogger != nil {
		n.Use(requestLogger{reqLogger})
	}
	n.UseHandler(r)
	return n
}

// requestID makes sure every request has an ID, reusing one from the
// client if it sent one, and echoes it in the response.
func requestID(rw http.ResponseWriter, req *http.Request, next http.HandlerFunc) {
	id := req.Header.Get(requestIDHeader)
	if id == "" {
		id = uuid.NewV4().String()
	}
	rw.Header().Set(requestIDHeader, id)
	ctx := context.WithValue(req.Context(), requestIDKey, id)
	next(rw, req.WithContext(ctx))
}

// requestIDFrom retrieves the request ID set by requestID.
func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// requestLogger logs one entry per request.
type requestLogger struct {
	Logger *logrus.Logger
}

func (l requestLogger) ServeHTTP(rw http.ResponseWriter, req *http.Request, next http.HandlerFunc) {
	start := time.Now()
	next(rw, req)
	entry := l.Logger.WithFields(logrus.Fields{
		"method":     req.Method,
		"path":       req.URL.Path,
		"request_id": requestIDFrom(req.Context()),
		"duration":   time.Since(start),
	})
	if nrw, ok := rw.(negroni.ResponseWriter); ok {
		entry = entry.WithField("status", nrw.Status())
	}
	entry.Debug("request")
}
