// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"testing"

	"github.com/diffeo/go-lists/lists"
	"github.com/stretchr/testify/assert"
)

func TestNestedCreatePath(t *testing.T) {
	tests := []struct {
		host   string
		listID interface{}
		url    string
	}{
		{"http://example.com", "42", "http://example.com/lists/42/items"},
		{"http://example.com/", "42", "http://example.com/lists/42/items"},
		{"https://example.com/api", "7", "https://example.com/api/lists/7/items"},
		{"http://localhost:3000", 42, "http://localhost:3000/lists/42/items"},
		{"http://localhost:3000", int64(42), "http://localhost:3000/lists/42/items"},
		{"http://localhost:3000", float64(42), "http://localhost:3000/lists/42/items"},
		{"http://localhost:3000", "a b", "http://localhost:3000/lists/a%20b/items"},
	}
	for _, test := range tests {
		strategy := NestedCreate{Host: test.host}
		url, err := strategy.CreatePath(Payload{"content": "x", "list_id": test.listID})
		if assert.NoError(t, err, "%+v", test) {
			assert.Equal(t, test.url, url)
		}
	}
}

func TestNestedCreateMissingParent(t *testing.T) {
	strategy := NestedCreate{Host: "http://example.com"}
	payloads := []Payload{
		{"content": "x"},
		{"content": "x", "list_id": nil},
		{"content": "x", "list_id": ""},
	}
	for _, payload := range payloads {
		url, err := strategy.CreatePath(payload)
		assert.Equal(t, lists.ErrMissingParentReference, err, "%+v", payload)
		assert.Empty(t, url)
	}
}

func TestListIDUnsupportedType(t *testing.T) {
	_, err := ListID(Payload{"list_id": []string{"42"}})
	assert.IsType(t, lists.ErrInvalidRecordState{}, err)
}
