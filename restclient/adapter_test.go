// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diffeo/go-lists/lists"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingTransport records requests without sending them.
type countingTransport struct {
	calls []string
	resp  *Response
	err   error
}

func (t *countingTransport) Ajax(ctx context.Context, url, method string, data interface{}) (*Response, error) {
	t.calls = append(t.calls, method+" "+url)
	return t.resp, t.err
}

func TestNew(t *testing.T) {
	for _, host := range []string{"", "/lists", "localhost"} {
		_, err := New(host)
		assert.Equal(t, ErrNoHost, err, "%q", host)
	}

	a, err := New("http://localhost:5980/")
	if assert.NoError(t, err) {
		assert.Equal(t, "http://localhost:5980", a.Host)
		assert.Equal(t, NestedCreate{Host: "http://localhost:5980"}, a.Strategy)
	}
}

// TestCreateItemRequest checks the exact request sent for a new item
// and that the response comes back untouched.
func TestCreateItemRequest(t *testing.T) {
	var (
		method, path, contentType string
		body                      []byte
	)
	reply := []byte(`{"item":{"id":"1","content":"Buy milk","done":false,"list_id":"42"}}`)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		contentType = r.Header.Get("Content-Type")
		body, _ = ioutil.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(reply)
	}))
	defer server.Close()

	a, err := New(server.URL)
	require.NoError(t, err)

	item := &lists.Item{Content: "Buy milk", Done: false, ListID: "42"}
	resp, err := a.CreateItem(context.Background(), item)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/lists/42/items", path)
	assert.Equal(t, "application/json", contentType)
	assert.JSONEq(t, `{"item": {"content": "Buy milk", "done": false, "list_id": "42"}}`, string(body))

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, reply, resp.Body)

	created, err := DecodeItem(resp)
	if assert.NoError(t, err) {
		assert.Equal(t, "1", created.ID)
		assert.Equal(t, "42", created.ListID)
	}

	assert.Equal(t, lists.Item{Content: "Buy milk", ListID: "42"}, *item)
}

func TestCreateItemMissingParent(t *testing.T) {
	a, err := New("http://example.com")
	require.NoError(t, err)
	transport := &countingTransport{}
	a.Transport = transport

	_, err = a.CreateItem(context.Background(), &lists.Item{Content: "orphan"})
	assert.True(t, errors.Is(err, lists.ErrMissingParentReference), "%v", err)
	assert.Empty(t, transport.calls)
}

// emptySerializer drops everything, so the strategy sees only what
// BuildPayload adds.
type emptySerializer struct{}

func (emptySerializer) Serialize(item lists.Item, opts SerializeOptions) (Payload, error) {
	return nil, nil
}

func TestCreateItemUsesStrategy(t *testing.T) {
	a, err := New("http://example.com")
	require.NoError(t, err)
	transport := &countingTransport{resp: &Response{StatusCode: http.StatusCreated}}
	a.Transport = transport
	a.Serializer = emptySerializer{}
	a.Strategy = NestedCreate{Host: "http://other.example.com/v2"}

	_, err = a.CreateItem(context.Background(), &lists.Item{ListID: "5"})
	require.NoError(t, err)
	assert.Equal(t, []string{"POST http://other.example.com/v2/lists/5/items"}, transport.calls)
}

func TestCreateItemTransportError(t *testing.T) {
	a, err := New("http://example.com")
	require.NoError(t, err)
	lost := errors.New("connection reset by peer")
	a.Transport = &countingTransport{err: lost}

	resp, err := a.CreateItem(context.Background(), &lists.Item{Content: "x", ListID: "42"})
	assert.Nil(t, resp)
	assert.True(t, err == lost, "got %#v", err)
}

func TestCreateItemServerRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("content can't be blank"))
	}))
	defer server.Close()

	a, err := New(server.URL)
	require.NoError(t, err)

	_, err = a.CreateItem(context.Background(), &lists.Item{ListID: "42"})
	if assert.IsType(t, ErrServerRejected{}, err) {
		rejected := err.(ErrServerRejected)
		assert.Equal(t, http.StatusUnprocessableEntity, rejected.StatusCode)
		assert.Equal(t, "422 Unprocessable Entity", rejected.Status)
		assert.Equal(t, []byte("content can't be blank"), rejected.Body)
		assert.Nil(t, rejected.ServerError())
	}
}

func TestCreateItemCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not have been sent")
	}))
	defer server.Close()

	a, err := New(server.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = a.CreateItem(ctx, &lists.Item{Content: "x", ListID: "42"})
	assert.True(t, errors.Is(err, context.Canceled), "%v", err)
}
