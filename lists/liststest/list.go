// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package liststest

import (
	"context"

	"github.com/diffeo/go-lists/lists"
)

// TestListCreateDestroy performs basic list lifetime tests.
func (s *Suite) TestListCreateDestroy() {
	ctx := context.Background()
	list := s.makeList("groceries")
	s.Equal("groceries", list.Title)
	s.False(list.CreatedAt.IsZero())

	got, err := s.Store.List(ctx, list.ID)
	if s.NoError(err) {
		s.Equal(list.ID, got.ID)
		s.Equal("groceries", got.Title)
	}

	all, err := s.Store.Lists(ctx)
	if s.NoError(err) {
		s.Contains(listIDs(all), list.ID)
	}

	err = s.Store.DestroyList(ctx, list.ID)
	s.NoError(err)

	_, err = s.Store.List(ctx, list.ID)
	s.Equal(lists.ErrNoSuchList{ID: list.ID}, err)

	all, err = s.Store.Lists(ctx)
	if s.NoError(err) {
		s.NotContains(listIDs(all), list.ID)
	}
}

// TestListIgnoresID checks that a client-provided ID is not used.
func (s *Suite) TestListIgnoresID() {
	ctx := context.Background()
	first := s.makeList("first")
	second, err := s.Store.CreateList(ctx, lists.List{ID: first.ID, Title: "second"})
	if s.NoError(err) {
		s.NotEqual(first.ID, second.ID)
	}
}

// TestListUpdate changes a list's title.
func (s *Suite) TestListUpdate() {
	ctx := context.Background()
	list := s.makeList("before")
	list.Title = "after"
	updated, err := s.Store.UpdateList(ctx, list)
	if s.NoError(err) {
		s.Equal(list.ID, updated.ID)
		s.Equal("after", updated.Title)
	}

	got, err := s.Store.List(ctx, list.ID)
	if s.NoError(err) {
		s.Equal("after", got.Title)
	}
}

// TestMissingList checks the errors returned for a list that was
// never created.
func (s *Suite) TestMissingList() {
	ctx := context.Background()
	list := s.makeList("doomed")
	s.Require().NoError(s.Store.DestroyList(ctx, list.ID))

	_, err := s.Store.UpdateList(ctx, list)
	s.Equal(lists.ErrNoSuchList{ID: list.ID}, err)

	err = s.Store.DestroyList(ctx, list.ID)
	s.Equal(lists.ErrNoSuchList{ID: list.ID}, err)

	_, err = s.Store.Items(ctx, list.ID)
	s.Equal(lists.ErrNoSuchList{ID: list.ID}, err)

	_, err = s.Store.CreateItem(ctx, lists.Item{ListID: list.ID, Content: "x"})
	s.Equal(lists.ErrNoSuchList{ID: list.ID}, err)
}

func listIDs(all []lists.List) []string {
	ids := make([]string, len(all))
	for i, list := range all {
		ids[i] = list.ID
	}
	return ids
}
