// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restclient provides an HTTP REST client for the list API
// served by the "restserver" package, or any API with the same shape.
//
// The central operation is Adapter.CreateItem.  The remote API only
// accepts new items in the collection of the list that owns them, so
// rather than posting to a flat /items collection, the adapter
// serializes the item, reads the list ID back out of the payload, and
// posts to /lists/{list_id}/items:
//
//     a, err := restclient.New("http://localhost:5980")
//     resp, err := a.CreateItem(ctx, &lists.Item{
//             Content: "Buy milk",
//             ListID:  "42",
//     })
//     item, err := restclient.DecodeItem(resp)
//
// CreateItem sends exactly one request and returns the raw response.
// It does not retry, cache, or time out on its own; set those up in
// the Transport (or its http.Client).
package restclient

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/diffeo/go-lists/lists"
)

// ErrNoHost is returned from New if the base URL is empty or not an
// absolute URL.
var ErrNoHost = errors.New("An absolute base URL is required")

// Adapter talks to one list API.  Its collaborators can be replaced
// after New returns and before the adapter is used.
type Adapter struct {
	// Host is the base URL of the API, without a trailing slash.
	Host string

	// Transport sends requests.  New sets it to an HTTPTransport
	// using http.DefaultClient.
	Transport Transport

	// Serializer turns items into payloads.  New sets it to a
	// FieldSerializer.
	Serializer Serializer

	// Strategy picks the URL for new items.  New sets it to
	// NestedCreate on Host.
	Strategy CreateStrategy
}

// New creates an adapter for the API rooted at host, for instance
// "http://localhost:5980" or "https://example.com/api".
func New(host string) (*Adapter, error) {
	u, err := url.Parse(host)
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, ErrNoHost
	}
	host = strings.TrimRight(host, "/")
	return &Adapter{
		Host:       host,
		Transport:  &HTTPTransport{},
		Serializer: FieldSerializer{},
		Strategy:   NestedCreate{Host: host},
	}, nil
}

// CreateItem creates a new item on the server.  The item must name
// its list; if it does not, this returns an error wrapping
// lists.ErrMissingParentReference without sending anything.  The
// request body is {"item": payload}, where the payload carries
// list_id as well as the item's own fields.
//
// Errors from the Transport are returned unchanged, so with the
// default transport a non-2xx response is an ErrServerRejected.
func (a *Adapter) CreateItem(ctx context.Context, item *lists.Item) (*Response, error) {
	payload, err := BuildPayload(a.Serializer, item, true)
	if err != nil {
		return nil, err
	}
	url, err := a.Strategy.CreatePath(payload)
	if err != nil {
		return nil, err
	}
	data := map[string]interface{}{"item": map[string]interface{}(payload)}
	return a.Transport.Ajax(ctx, url, http.MethodPost, data)
}
