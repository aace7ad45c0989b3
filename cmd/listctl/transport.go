// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"context"
	"time"

	"github.com/diffeo/go-lists/restclient"
	"github.com/sirupsen/logrus"
)

// loggingTransport logs every request at debug level before passing
// it on.
type loggingTransport struct {
	Next restclient.Transport
	Log  *logrus.Logger
}

func (t loggingTransport) Ajax(ctx context.Context, url, method string, data interface{}) (*restclient.Response, error) {
	start := time.Now()
	resp, err := t.Next.Ajax(ctx, url, method, data)
	entry := t.Log.WithFields(logrus.Fields{
		"method":   method,
		"url":      url,
		"duration": time.Since(start),
	})
	switch e := err.(type) {
	case nil:
		entry.WithField("status", resp.StatusCode).Debug("request")
	case restclient.ErrServerRejected:
		entry.WithField("status", e.StatusCode).Debug("request rejected")
	default:
		entry.WithError(err).Debug("request failed")
	}
	return resp, err
}
