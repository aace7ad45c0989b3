// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"errors"
	"testing"
	"time"

	"github.com/diffeo/go-lists/lists"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldSerializer(t *testing.T) {
	item := lists.Item{
		ID:        "7",
		Content:   "Buy milk",
		Done:      true,
		ListID:    "42",
		CreatedAt: time.Date(2017, 3, 4, 5, 6, 7, 0, time.UTC),
	}

	payload, err := FieldSerializer{}.Serialize(item, SerializeOptions{})
	if assert.NoError(t, err) {
		assert.Equal(t, Payload{
			"content": "Buy milk",
			"done":    true,
			"list_id": "42",
		}, payload)
	}

	payload, err = FieldSerializer{}.Serialize(item, SerializeOptions{IncludeID: true})
	if assert.NoError(t, err) {
		assert.Equal(t, Payload{
			"id":      "7",
			"content": "Buy milk",
			"done":    true,
			"list_id": "42",
		}, payload)
	}
}

func TestBuildPayloadListID(t *testing.T) {
	items := []lists.Item{
		{Content: "Buy milk", ListID: "42"},
		{ID: "7", Content: "Buy milk", ListID: "42"},
		{ID: "8", Content: "", Done: true, ListID: "1"},
	}
	for _, item := range items {
		for _, includeID := range []bool{false, true} {
			payload, err := BuildPayload(FieldSerializer{}, &item, includeID)
			if assert.NoError(t, err) {
				assert.Equal(t, item.ListID, payload["list_id"])
			}
		}
	}
}

func TestBuildPayloadDoesNotMutate(t *testing.T) {
	item := &lists.Item{ID: "7", Content: "Buy milk", ListID: "42"}
	before := *item
	_, err := BuildPayload(FieldSerializer{}, item, true)
	require.NoError(t, err)
	assert.Equal(t, before, *item)
}

// nestingSerializer represents the list the way a serializer for a
// relationship-linking format might, with no list_id at all.
type nestingSerializer struct{}

func (nestingSerializer) Serialize(item lists.Item, opts SerializeOptions) (Payload, error) {
	return Payload{
		"content": item.Content,
		"list":    map[string]interface{}{"id": item.ListID},
	}, nil
}

// wrongSerializer puts the wrong list ID in.
type wrongSerializer struct{}

func (wrongSerializer) Serialize(item lists.Item, opts SerializeOptions) (Payload, error) {
	return Payload{"content": item.Content, "list_id": "wrong"}, nil
}

// failingSerializer always fails.
type failingSerializer struct{ err error }

func (s failingSerializer) Serialize(item lists.Item, opts SerializeOptions) (Payload, error) {
	return nil, s.err
}

func TestBuildPayloadFlattensList(t *testing.T) {
	item := &lists.Item{Content: "Buy milk", ListID: "42"}

	payload, err := BuildPayload(nestingSerializer{}, item, false)
	if assert.NoError(t, err) {
		assert.Equal(t, "42", payload["list_id"])
	}

	payload, err = BuildPayload(wrongSerializer{}, item, false)
	if assert.NoError(t, err) {
		assert.Equal(t, "42", payload["list_id"])
	}
}

func TestBuildPayloadSerializerError(t *testing.T) {
	oops := errors.New("oops")
	_, err := BuildPayload(failingSerializer{err: oops}, &lists.Item{ListID: "1"}, false)
	assert.Equal(t, oops, err)
}

func TestBuildPayloadInvalid(t *testing.T) {
	_, err := BuildPayload(FieldSerializer{}, nil, false)
	assert.IsType(t, lists.ErrInvalidRecordState{}, err)

	_, err = BuildPayload(FieldSerializer{}, &lists.Item{Content: "orphan"}, false)
	assert.IsType(t, lists.ErrInvalidRecordState{}, err)
	assert.True(t, errors.Is(err, lists.ErrMissingParentReference), "%v", err)
}
