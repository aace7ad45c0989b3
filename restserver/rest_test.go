// Regression tests for rest.go.
//
// Main tests are really by running the end-to-end path, using the
// restclient tests against this server.  This only contains special
// cases that the client cannot produce.
//
// Copyright 2016-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/diffeo/go-lists/lists"
	"github.com/diffeo/go-lists/memory"
	"github.com/diffeo/go-lists/restdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failResponseWriter struct {
	Headers    http.Header
	StatusCode int
}

func (rw *failResponseWriter) Header() http.Header {
	if rw.Headers == nil {
		rw.Headers = make(http.Header)
	}
	return rw.Headers
}

func (rw *failResponseWriter) Write([]byte) (int, error) {
	return 0, errors.New("foo")
}

func (rw *failResponseWriter) WriteHeader(code int) {
	rw.StatusCode = code
}

// setUp creates a router over a memory store with one list in it.
func setUp(t *testing.T) (http.Handler, lists.Store, lists.List) {
	store := memory.New()
	list, err := store.CreateList(context.Background(), lists.List{Title: "groceries"})
	require.NoError(t, err)
	return NewRouter(store), store, list
}

// serve sends a request with an optional JSON body to a router.
func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

// TestDoubleFault checks that, if there is an error serializing a JSON
// response, it doesn't actually panic the process.
func TestDoubleFault(t *testing.T) {
	router, _, list := setUp(t)
	req := &http.Request{
		Method: http.MethodGet,
		URL: &url.URL{
			Path: "/lists/" + list.ID,
		},
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     http.Header{},
		Close:      true,
		Host:       "localhost",
	}
	resp := &failResponseWriter{}
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestFlatItemsRejected checks that items cannot be created outside
// a list.
func TestFlatItemsRejected(t *testing.T) {
	router, store, list := setUp(t)
	body := `{"item": {"content": "Buy milk", "done": false, "list_id": "` + list.ID + `"}}`
	resp := serve(router, http.MethodPost, "/items", body)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)

	items, err := store.Items(context.Background(), list.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCreateItemNested(t *testing.T) {
	router, store, list := setUp(t)
	body := `{"item": {"content": "Buy milk", "done": false, "list_id": "` + list.ID + `"}}`
	resp := serve(router, http.MethodPost, "/lists/"+list.ID+"/items", body)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var env restdata.ItemEnvelope
	require.NoError(t, restdata.Decode(resp.Header().Get("Content-Type"), resp.Body, &env))
	assert.NotEmpty(t, env.Item.ID)
	assert.Equal(t, "Buy milk", env.Item.Content)
	assert.Equal(t, list.ID, env.Item.ListID)
	assert.Equal(t, "/lists/"+list.ID+"/items/"+env.Item.ID, resp.Header().Get("Location"))

	items, err := store.Items(context.Background(), list.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

// TestCreateItemNumericListID checks that a numeric list_id matching
// the URL is accepted.
func TestCreateItemNumericListID(t *testing.T) {
	router, _, list := setUp(t)
	body := `{"item": {"content": "Buy milk", "list_id": ` + list.ID + `}}`
	resp := serve(router, http.MethodPost, "/lists/"+list.ID+"/items", body)
	assert.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
}

func TestCreateItemBadBodies(t *testing.T) {
	router, store, list := setUp(t)
	other, err := store.CreateList(context.Background(), lists.List{Title: "other"})
	require.NoError(t, err)

	tests := []struct {
		body  string
		error string
	}{
		{`{"item": {"content": "Buy milk", "list_id": "` + other.ID + `"}}`, "error"},
		{`{"content": "Buy milk"}`, "error"},
		{`{"item": {"content": ""}}`, "ErrEmptyContent"},
	}
	for _, test := range tests {
		resp := serve(router, http.MethodPost, "/lists/"+list.ID+"/items", test.body)
		assert.Equal(t, http.StatusBadRequest, resp.Code, test.body)
		var errResp restdata.ErrorResponse
		if assert.NoError(t, restdata.Decode(resp.Header().Get("Content-Type"), resp.Body, &errResp)) {
			assert.Equal(t, test.error, errResp.Error, test.body)
		}
	}
}

func TestUnknownList(t *testing.T) {
	router, _, _ := setUp(t)
	resp := serve(router, http.MethodPost, "/lists/999/items", `{"item": {"content": "x"}}`)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	var errResp restdata.ErrorResponse
	if assert.NoError(t, restdata.Decode(resp.Header().Get("Content-Type"), resp.Body, &errResp)) {
		assert.Equal(t, lists.ErrNoSuchList{ID: "999"}, errResp.ToError())
	}
}

func TestUnsupportedMediaType(t *testing.T) {
	router, _, list := setUp(t)
	req := httptest.NewRequest(http.MethodPost, "/lists/"+list.ID+"/items", strings.NewReader("content=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.Code)
}

func TestNotAcceptable(t *testing.T) {
	router, _, _ := setUp(t)
	req := httptest.NewRequest(http.MethodGet, "/lists", nil)
	req.Header.Set("Accept", "text/html")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusNotAcceptable, resp.Code)
}

func TestDeleteItem(t *testing.T) {
	router, store, list := setUp(t)
	item, err := store.CreateItem(context.Background(), lists.Item{ListID: list.ID, Content: "x"})
	require.NoError(t, err)

	path := "/lists/" + list.ID + "/items/" + item.ID
	resp := serve(router, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNoContent, resp.Code)

	resp = serve(router, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
