// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package lists

import (
	"errors"
	"fmt"
)

// ErrMissingParentReference is returned when an item, or a payload
// built from one, does not name the list it belongs to.  This is
// always detected locally, before any request is sent.
var ErrMissingParentReference = errors.New("Item has no list_id")

// ErrEmptyContent is returned when creating or updating an item with
// no content.
var ErrEmptyContent = errors.New("Item content must not be empty")

// ErrInvalidRecordState is returned when an item cannot be
// serialized or stored in its current form.  Err, if non-nil, is a
// more specific cause, such as ErrMissingParentReference.
type ErrInvalidRecordState struct {
	Reason string
	Err    error
}

func (err ErrInvalidRecordState) Error() string {
	return fmt.Sprintf("Invalid item: %v", err.Reason)
}

// Unwrap returns the underlying cause.
func (err ErrInvalidRecordState) Unwrap() error {
	return err.Err
}

// ErrNoSuchList is returned by Store methods that name a list that
// does not exist.
type ErrNoSuchList struct {
	ID string
}

func (err ErrNoSuchList) Error() string {
	return fmt.Sprintf("No such list %v", err.ID)
}

// ErrNoSuchItem is returned by Store methods that name an item that
// does not exist in the named list.
type ErrNoSuchItem struct {
	ListID string
	ID     string
}

func (err ErrNoSuchItem) Error() string {
	return fmt.Sprintf("No such item %v in list %v", err.ID, err.ListID)
}
