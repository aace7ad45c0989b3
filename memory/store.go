// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package memory provides an in-process, in-memory implementation of
// lists.Store.  There is no persistence on this store, nor is there
// any automatic sharing.  The entire system is behind a single global
// mutex to protect against concurrent updates.
//
// This is mostly intended as a simple reference implementation that
// can be used for testing, including in-process testing of the REST
// server and client.  Identifiers are assigned sequentially as
// decimal strings, starting from "1", in the style of an SQL serial
// column.
package memory

import (
	"strconv"
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-lists/lists"
)

// New creates a new lists.Store that operates purely in memory.
func New() lists.Store {
	return NewWithClock(clock.New())
}

// NewWithClock creates a new lists.Store that operates purely in
// memory, using a specified time source.  This is generally useful
// only for tests that need to check timestamps.
func NewWithClock(clk clock.Clock) lists.Store {
	return &memStore{
		clock: clk,
		lists: make(map[string]*memList),
	}
}

type memStore struct {
	sem    sync.Mutex
	clock  clock.Clock
	lists  map[string]*memList
	order  []string
	nextID int
}

// memList is the stored form of a list, along with its items.
type memList struct {
	list  lists.List
	items map[string]*lists.Item
	order []string
}

// do runs f under the global lock.
func (s *memStore) do(f func() error) error {
	s.sem.Lock()
	defer s.sem.Unlock()
	return f()
}

// newID allocates the next identifier.  Lists and items share a
// sequence.  It assumes the global lock.
func (s *memStore) newID() string {
	s.nextID++
	return strconv.Itoa(s.nextID)
}

// getList finds a list by ID or returns ErrNoSuchList.  It assumes
// the global lock.
func (s *memStore) getList(id string) (*memList, error) {
	list, present := s.lists[id]
	if !present {
		return nil, lists.ErrNoSuchList{ID: id}
	}
	return list, nil
}

// getItem finds an item in a list.  It assumes the global lock.
func (s *memStore) getItem(listID, id string) (*memList, *lists.Item, error) {
	list, err := s.getList(listID)
	if err != nil {
		return nil, nil, err
	}
	item, present := list.items[id]
	if !present {
		return nil, nil, lists.ErrNoSuchItem{ListID: listID, ID: id}
	}
	return list, item, nil
}

// remove deletes a single string from a slice, preserving order.
func remove(ids []string, id string) []string {
	for i, other := range ids {
		if other == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
