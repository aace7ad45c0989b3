// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"bytes"
	"context"
	"io"
	"io/ioutil"
	"net/http"

	"github.com/diffeo/go-lists/restdata"
)

// Transport issues a single HTTP request.  It is responsible for
// everything the adapter itself does not do: timeouts, retries, and
// the interpretation of network failures.
type Transport interface {
	// Ajax sends method to url.  If data is non-nil it is
	// serialized as the JSON request body.  A successful (2xx)
	// exchange returns the raw response.
	Ajax(ctx context.Context, url, method string, data interface{}) (*Response, error)
}

// Response is a raw, successful server response.
type Response struct {
	// StatusCode is the HTTP status code, e.g. 201.
	StatusCode int

	// Header holds the response headers.
	Header http.Header

	// Body holds the complete response body.
	Body []byte
}

// Decode deserializes the response body into out, which must be of
// pointer type.
func (r *Response) Decode(out interface{}) error {
	return restdata.Decode(r.Header.Get("Content-Type"), bytes.NewReader(r.Body), out)
}

// ErrServerRejected is returned for any non-2xx response.  It keeps
// the status and body exactly as the server sent them.
type ErrServerRejected struct {
	// StatusCode is the numeric HTTP status, e.g. 404.
	StatusCode int

	// Status is the full HTTP status line, e.g. "404 Not Found".
	Status string

	// Header holds the response headers.
	Header http.Header

	// Body holds the complete response body.
	Body []byte
}

func (e ErrServerRejected) Error() string {
	return e.Status
}

// ServerError tries to interpret the response body as a
// restdata.ErrorResponse, and if that works, returns the equivalent
// error.  Otherwise returns nil.
func (e ErrServerRejected) ServerError() error {
	var errResp restdata.ErrorResponse
	err := restdata.Decode(e.Header.Get("Content-Type"), bytes.NewReader(e.Body), &errResp)
	if err != nil || errResp.Error == "" {
		return nil
	}
	return errResp.ToError()
}

// HTTPTransport is the default Transport, backed by a net/http
// client.
type HTTPTransport struct {
	// Client performs the requests.  If nil, http.DefaultClient
	// is used.
	Client *http.Client
}

// Ajax performs a single HTTP request.  Errors from the HTTP client
// are returned as is; a non-2xx response is returned as
// ErrServerRejected.
func (t *HTTPTransport) Ajax(ctx context.Context, url, method string, data interface{}) (resp *Response, err error) {
	var body io.Reader
	if data != nil {
		var encoded []byte
		encoded, err = restdata.EncodeBytes(data)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if data != nil {
		req.Header.Set("Content-Type", restdata.JSONMediaType)
	}
	req.Header.Set("Accept", restdata.JSONMediaType)

	client := t.Client
	if client == nil {
		client = http.DefaultClient
	}
	httpResp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = firstError(err, httpResp.Body.Close())
	}()

	respBody, err := ioutil.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, ErrServerRejected{
			StatusCode: httpResp.StatusCode,
			Status:     httpResp.Status,
			Header:     httpResp.Header,
			Body:       respBody,
		}
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       respBody,
	}, nil
}

func firstError(e1, e2 error) error {
	if e1 != nil {
		return e1
	}
	return e2
}
