// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import (
	"context"

	"github.com/diffeo/go-lists/lists"
)

func (s *memStore) Lists(ctx context.Context) (result []lists.List, err error) {
	err = s.do(func() error {
		result = make([]lists.List, 0, len(s.order))
		for _, id := range s.order {
			result = append(result, s.lists[id].list)
		}
		return nil
	})
	return
}

func (s *memStore) List(ctx context.Context, id string) (result lists.List, err error) {
	err = s.do(func() error {
		list, err := s.getList(id)
		if err == nil {
			result = list.list
		}
		return err
	})
	return
}

func (s *memStore) CreateList(ctx context.Context, list lists.List) (result lists.List, err error) {
	err = s.do(func() error {
		now := s.clock.Now()
		list.ID = s.newID()
		list.CreatedAt = now
		list.UpdatedAt = now
		s.lists[list.ID] = &memList{
			list:  list,
			items: make(map[string]*lists.Item),
		}
		s.order = append(s.order, list.ID)
		result = list
		return nil
	})
	return
}

func (s *memStore) UpdateList(ctx context.Context, list lists.List) (result lists.List, err error) {
	err = s.do(func() error {
		stored, err := s.getList(list.ID)
		if err != nil {
			return err
		}
		stored.list.Title = list.Title
		stored.list.UpdatedAt = s.clock.Now()
		result = stored.list
		return nil
	})
	return
}

func (s *memStore) DestroyList(ctx context.Context, id string) error {
	return s.do(func() error {
		if _, err := s.getList(id); err != nil {
			return err
		}
		delete(s.lists, id)
		s.order = remove(s.order, id)
		return nil
	})
}
