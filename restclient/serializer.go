// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"github.com/diffeo/go-lists/lists"
	"github.com/mitchellh/mapstructure"
)

// Payload is the flat, JSON-compatible field mapping of a single
// record, as sent in a request body.
type Payload map[string]interface{}

// ListIDField is the payload key holding the owning list's ID.
const ListIDField = "list_id"

// SerializeOptions controls what a Serializer includes.
type SerializeOptions struct {
	// IncludeID adds the record's own ID to the payload, if it
	// has one.
	IncludeID bool
}

// Serializer converts an item into a payload.  The set of fields it
// produces is whatever the remote API expects; BuildPayload only
// guarantees the placement of the list ID.
type Serializer interface {
	Serialize(item lists.Item, opts SerializeOptions) (Payload, error)
}

// FieldSerializer is the default Serializer.  It emits every field of
// lists.Item that carries a mapstructure tag, except that "id" is
// only included on request and timestamps are never included.
type FieldSerializer struct{}

// Serialize converts an item into a payload.
func (FieldSerializer) Serialize(item lists.Item, opts SerializeOptions) (Payload, error) {
	payload := Payload{}
	err := mapstructure.Decode(item, (*map[string]interface{})(&payload))
	if err != nil {
		return nil, err
	}
	if !opts.IncludeID {
		delete(payload, "id")
	}
	return payload, nil
}

// BuildPayload serializes an item and ensures the payload names its
// list under ListIDField, no matter what the serializer did with it.
// The item must have a list; if it does not, returns
// ErrInvalidRecordState wrapping ErrMissingParentReference.  The item
// itself is never modified.
func BuildPayload(serializer Serializer, item *lists.Item, includeID bool) (Payload, error) {
	if item == nil {
		return nil, lists.ErrInvalidRecordState{Reason: "no item"}
	}
	if item.ListID == "" {
		return nil, lists.ErrInvalidRecordState{
			Reason: "item has no list",
			Err:    lists.ErrMissingParentReference,
		}
	}
	payload, err := serializer.Serialize(*item, SerializeOptions{IncludeID: includeID})
	if err != nil {
		return nil, err
	}
	if payload == nil {
		payload = Payload{}
	}
	payload[ListIDField] = item.ListID
	return payload, nil
}
