// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package lists defines the data model and storage API for the list
// manager.
//
// A List is a named collection that owns zero or more Items.  An Item
// always belongs to exactly one List; its ListID is the parent
// reference and must be set before the item is created anywhere.
// Identifiers are opaque strings assigned by whatever stores the
// object, so an Item or List that has not been created yet has an
// empty ID.
//
// Implementations of Store live in the memory, postgres, and neo4j
// packages.  The restclient package talks to a Store published over
// HTTP by the restserver package.
package lists

import (
	"context"
	"time"
)

// List is a parent collection of items.
type List struct {
	// ID is assigned by the store on creation.
	ID string

	// Title is the display name of the list.
	Title string

	// CreatedAt and UpdatedAt are maintained by the store.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Item is a single entry in a list.
type Item struct {
	// ID is assigned by the store on creation, and is empty
	// before then.
	ID string `mapstructure:"id,omitempty"`

	// Content is the display text of the item.
	Content string `mapstructure:"content"`

	// Done indicates whether the item has been completed.
	Done bool `mapstructure:"done"`

	// ListID is the identifier of the list that owns this item.
	ListID string `mapstructure:"list_id"`

	// CreatedAt and UpdatedAt are maintained by the store.
	CreatedAt time.Time `mapstructure:"-"`
	UpdatedAt time.Time `mapstructure:"-"`
}

// Store is the persistent home of lists and items.  All methods are
// safe to call from multiple goroutines.
type Store interface {
	// Lists returns every list, ordered by creation.
	Lists(ctx context.Context) ([]List, error)

	// List retrieves a single list.  If it does not exist, returns
	// ErrNoSuchList.
	List(ctx context.Context, id string) (List, error)

	// CreateList stores a new list, ignoring any ID in the
	// parameter, and returns it with its new ID and timestamps.
	CreateList(ctx context.Context, list List) (List, error)

	// UpdateList changes the title of an existing list.
	UpdateList(ctx context.Context, list List) (List, error)

	// DestroyList deletes a list and every item in it.
	DestroyList(ctx context.Context, id string) error

	// Items returns every item in a list, ordered by creation.
	// If the list does not exist, returns ErrNoSuchList.
	Items(ctx context.Context, listID string) ([]Item, error)

	// Item retrieves a single item within a list.  If the list
	// exists but the item does not (or belongs to a different
	// list), returns ErrNoSuchItem.
	Item(ctx context.Context, listID, id string) (Item, error)

	// CreateItem stores a new item in item.ListID, ignoring any
	// ID in the parameter.  The item must have non-empty content.
	CreateItem(ctx context.Context, item Item) (Item, error)

	// UpdateItem changes the content and completion flag of an
	// existing item.  Items cannot move between lists.
	UpdateItem(ctx context.Context, item Item) (Item, error)

	// DestroyItem deletes a single item.
	DestroyItem(ctx context.Context, listID, id string) error
}

// CheckItem validates an item before it is created or updated in a
// store.
func CheckItem(item Item) error {
	if item.ListID == "" {
		return ErrInvalidRecordState{
			Reason: "item has no list",
			Err:    ErrMissingParentReference,
		}
	}
	if item.Content == "" {
		return ErrEmptyContent
	}
	return nil
}
