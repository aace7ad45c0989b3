// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restdata defines common data structures shared between the
// restserver and restclient packages.  These are passed across the
// wire as ordinary application/json documents, in the shape a
// conventional Rails-style REST API would use.
//
// URL Scheme
//
// Lists live at the top level of the URL space; items are only
// reachable through the list that owns them:
//
//     /lists
//     /lists/{list_id}
//     /lists/{list_id}/items
//     /lists/{list_id}/items/{item_id}
//
// In particular, new items are created by HTTP POST to
// /lists/{list_id}/items.  There is no flat /items collection, and a
// POST to /items is rejected.
//
// Envelopes
//
// Every representation is wrapped in an object keyed by its type
// name.  A new item is submitted as
//
//     {
//         "item": {
//             "content": "Buy milk",
//             "done": false,
//             "list_id": "42"
//         }
//     }
//
// The list_id field duplicates the list in the URL.  The server
// accepts either a string or a number here, and rejects the request
// if it does not match the URL.
//
// Errors
//
// Failing requests return an ErrorResponse along with a failing HTTP
// status code.  Well-known errors from the lists package round-trip
// through ErrorResponse.ToError.
package restdata

import (
	"time"
)

// Item is the wire representation of a lists.Item.
type Item struct {
	// ID is assigned by the server and is absent when creating.
	ID string `json:"id,omitempty" mapstructure:"id"`

	// Content is the display text of the item.
	Content string `json:"content" mapstructure:"content"`

	// Done indicates whether the item has been completed.
	Done bool `json:"done" mapstructure:"done"`

	// ListID names the owning list.  When submitting, it may be
	// omitted, in which case the list from the URL is used.
	ListID string `json:"list_id" mapstructure:"list_id"`

	CreatedAt time.Time `json:"created_at,omitempty" mapstructure:"-"`
	UpdatedAt time.Time `json:"updated_at,omitempty" mapstructure:"-"`
}

// List is the wire representation of a lists.List.
type List struct {
	ID        string    `json:"id,omitempty" mapstructure:"id"`
	Title     string    `json:"title" mapstructure:"title"`
	CreatedAt time.Time `json:"created_at,omitempty" mapstructure:"-"`
	UpdatedAt time.Time `json:"updated_at,omitempty" mapstructure:"-"`
}

// ItemEnvelope wraps a single item, in a request or a response.
type ItemEnvelope struct {
	Item Item `json:"item"`
}

// ItemsEnvelope wraps the items of a single list.
type ItemsEnvelope struct {
	Items []Item `json:"items"`
}

// ListEnvelope wraps a single list, in a request or a response.
type ListEnvelope struct {
	List List `json:"list"`
}

// ListsEnvelope wraps every list.
type ListsEnvelope struct {
	Lists []List `json:"lists"`
}

// ErrorResponse can be a response to any method, generally accompanied
// by a failing HTTP status code.
type ErrorResponse struct {
	// Error is a short description of the failure.  This may be
	// the name or type of a lists API error, the string "panic",
	// or the string "error" for some other kind of error.
	Error string `json:"error"`

	// Message is a human-readable description of the failure.
	Message string `json:"message"`

	// Value is an extra parameter to the error if applicable.
	Value string `json:"value,omitempty"`

	// Value2 is a second extra parameter, used by errors that
	// name both a list and an item.
	Value2 string `json:"value2,omitempty"`

	// Stack holds a formatted backtrace, if the method failed
	// due to a panic.
	Stack string `json:"stack,omitempty"`
}
