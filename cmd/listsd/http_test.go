// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"bytes"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/diffeo/go-lists/backend"
	"github.com/diffeo/go-lists/memory"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	handler := newHandler(memory.New(), nil)

	req := httptest.NewRequest(http.MethodGet, "/lists", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, resp.Header().Get(requestIDHeader), 36)

	req = httptest.NewRequest(http.MethodGet, "/lists", nil)
	req.Header.Set(requestIDHeader, "abc")
	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	assert.Equal(t, "abc", resp.Header().Get(requestIDHeader))
}

func TestRequestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := &logrus.Logger{
		Out:       &buf,
		Formatter: &logrus.JSONFormatter{},
		Hooks:     make(logrus.LevelHooks),
		Level:     logrus.DebugLevel,
	}
	handler := newHandler(memory.New(), logger)

	req := httptest.NewRequest(http.MethodPost, "/items", nil)
	req.Header.Set(requestIDHeader, "req-1")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)

	line := buf.String()
	assert.Contains(t, line, `"path":"/items"`)
	assert.Contains(t, line, `"request_id":"req-1"`)
	assert.Contains(t, line, `"status":405`)
}

func TestMetrics(t *testing.T) {
	handler := newHandler(memory.New(), nil)

	req := httptest.NewRequest(http.MethodGet, "/lists", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, strings.Contains(resp.Body.String(), "diffeo_lists_http_requests_total"))
}

func TestLoadConfigYaml(t *testing.T) {
	dir, err := ioutil.TempDir("", "listsd")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	filename := filepath.Join(dir, "config.yaml")
	contents := "http: \":8080\"\nbackend: postgres:dbname=lists\nlog_requests: true\n"
	require.NoError(t, ioutil.WriteFile(filename, []byte(contents), 0600))

	cfg := config{HTTP: ":5980", Backend: backend.Backend{Implementation: "memory"}}
	if assert.NoError(t, loadConfigYaml(filename, &cfg)) {
		assert.Equal(t, ":8080", cfg.HTTP)
		assert.Equal(t, backend.Backend{Implementation: "postgres", Address: "dbname=lists"}, cfg.Backend)
		assert.True(t, cfg.LogRequests)
	}
}
