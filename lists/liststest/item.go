// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package liststest

import (
	"context"
	"errors"

	"github.com/diffeo/go-lists/lists"
)

// TestItemFlow creates, updates, and destroys a single item.
func (s *Suite) TestItemFlow() {
	ctx := context.Background()
	list := s.makeList("chores")

	items, err := s.Store.Items(ctx, list.ID)
	if s.NoError(err) {
		s.Empty(items)
	}

	item := s.makeItem(list.ID, "Buy milk")
	s.Equal(list.ID, item.ListID)
	s.Equal("Buy milk", item.Content)
	s.False(item.Done)
	s.False(item.CreatedAt.IsZero())

	got, err := s.Store.Item(ctx, list.ID, item.ID)
	if s.NoError(err) {
		s.Equal(item.ID, got.ID)
		s.Equal(list.ID, got.ListID)
		s.Equal("Buy milk", got.Content)
	}

	item.Done = true
	item.Content = "Buy oat milk"
	updated, err := s.Store.UpdateItem(ctx, item)
	if s.NoError(err) {
		s.True(updated.Done)
		s.Equal("Buy oat milk", updated.Content)
	}

	items, err = s.Store.Items(ctx, list.ID)
	if s.NoError(err) && s.Len(items, 1) {
		s.Equal(item.ID, items[0].ID)
		s.True(items[0].Done)
	}

	err = s.Store.DestroyItem(ctx, list.ID, item.ID)
	s.NoError(err)

	_, err = s.Store.Item(ctx, list.ID, item.ID)
	s.Equal(lists.ErrNoSuchItem{ListID: list.ID, ID: item.ID}, err)

	err = s.Store.DestroyItem(ctx, list.ID, item.ID)
	s.Equal(lists.ErrNoSuchItem{ListID: list.ID, ID: item.ID}, err)
}

// TestItemOrder checks that items come back in creation order.
func (s *Suite) TestItemOrder() {
	ctx := context.Background()
	list := s.makeList("ordered")
	first := s.makeItem(list.ID, "first")
	second := s.makeItem(list.ID, "second")
	third := s.makeItem(list.ID, "third")

	items, err := s.Store.Items(ctx, list.ID)
	if s.NoError(err) && s.Len(items, 3) {
		s.Equal(first.ID, items[0].ID)
		s.Equal(second.ID, items[1].ID)
		s.Equal(third.ID, items[2].ID)
	}
}

// TestItemsStayInTheirList checks that an item is only visible
// through the list that owns it.
func (s *Suite) TestItemsStayInTheirList() {
	ctx := context.Background()
	mine := s.makeList("mine")
	yours := s.makeList("yours")
	item := s.makeItem(mine.ID, "private")

	_, err := s.Store.Item(ctx, yours.ID, item.ID)
	s.Equal(lists.ErrNoSuchItem{ListID: yours.ID, ID: item.ID}, err)

	items, err := s.Store.Items(ctx, yours.ID)
	if s.NoError(err) {
		s.Empty(items)
	}

	moved := item
	moved.ListID = yours.ID
	_, err = s.Store.UpdateItem(ctx, moved)
	s.Equal(lists.ErrNoSuchItem{ListID: yours.ID, ID: item.ID}, err)
}

// TestDestroyListDestroysItems checks that a list's items go away
// with it.
func (s *Suite) TestDestroyListDestroysItems() {
	ctx := context.Background()
	list := s.makeList("short-lived")
	item := s.makeItem(list.ID, "gone soon")

	s.Require().NoError(s.Store.DestroyList(ctx, list.ID))

	_, err := s.Store.Item(ctx, list.ID, item.ID)
	s.Equal(lists.ErrNoSuchList{ID: list.ID}, err)
}

// TestInvalidItems checks that items without a list or content are
// rejected.
func (s *Suite) TestInvalidItems() {
	ctx := context.Background()
	list := s.makeList("strict")

	_, err := s.Store.CreateItem(ctx, lists.Item{Content: "orphan"})
	s.True(errors.Is(err, lists.ErrMissingParentReference), "%v", err)

	_, err = s.Store.CreateItem(ctx, lists.Item{ListID: list.ID})
	s.Equal(lists.ErrEmptyContent, err)

	item := s.makeItem(list.ID, "something")
	item.Content = ""
	_, err = s.Store.UpdateItem(ctx, item)
	s.Equal(lists.ErrEmptyContent, err)
}
