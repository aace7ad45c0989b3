// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package liststest provides generic functional tests for the
// lists.Store interface.  A typical backend test module needs to wrap
// Suite to create its backend:
//
//     package mybackend
//
//     import (
//             "testing"
//             "github.com/diffeo/go-lists/lists/liststest"
//             "github.com/stretchr/testify/suite"
//     )
//
//     // Suite is the per-backend generic test suite.
//     type Suite struct{
//             liststest.Suite
//     }
//
//     // SetupSuite does global setup for the test suite.
//     func (s *Suite) SetupSuite() {
//             s.Suite.SetupSuite()
//             s.Store = NewWithClock(s.Clock)
//     }
//
//     // TestStore runs the lists.Store generic tests.
//     func TestStore(t *testing.T) {
//             suite.Run(t, &Suite{})
//     }
//
// Backends may share state between tests, so every test creates its
// own lists and only makes assertions about those.
package liststest

import (
	"context"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-lists/lists"
	"github.com/stretchr/testify/suite"
)

// Suite is the generic lists.Store backend test suite.
type Suite struct {
	suite.Suite

	// Clock contains the alternate time source to be used in
	// tests.  It is pre-initialized to a mock clock.  Backends
	// that keep time elsewhere are free to ignore it.
	Clock *clock.Mock

	// Store contains the backend under test.  It is set by
	// importing packages.
	Store lists.Store
}

// SetupSuite does one-time initialization for the test suite.
func (s *Suite) SetupSuite() {
	s.Clock = clock.NewMock()
}

// makeList creates a list with a given title, failing the test if
// that is not possible.
func (s *Suite) makeList(title string) lists.List {
	list, err := s.Store.CreateList(context.Background(), lists.List{Title: title})
	s.Require().NoError(err)
	s.Require().NotEmpty(list.ID)
	return list
}

// makeItem creates an item in a list, failing the test if that is
// not possible.
func (s *Suite) makeItem(listID, content string) lists.Item {
	item, err := s.Store.CreateItem(context.Background(), lists.Item{
		ListID:  listID,
		Content: content,
	})
	s.Require().NoError(err)
	s.Require().NotEmpty(item.ID)
	return item
}
