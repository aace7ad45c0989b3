// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import (
	"context"

	"github.com/diffeo/go-lists/lists"
)

func (s *memStore) Items(ctx context.Context, listID string) (result []lists.Item, err error) {
	err = s.do(func() error {
		list, err := s.getList(listID)
		if err != nil {
			return err
		}
		result = make([]lists.Item, 0, len(list.order))
		for _, id := range list.order {
			result = append(result, *list.items[id])
		}
		return nil
	})
	return
}

func (s *memStore) Item(ctx context.Context, listID, id string) (result lists.Item, err error) {
	err = s.do(func() error {
		_, item, err := s.getItem(listID, id)
		if err == nil {
			result = *item
		}
		return err
	})
	return
}

func (s *memStore) CreateItem(ctx context.Context, item lists.Item) (result lists.Item, err error) {
	err = lists.CheckItem(item)
	if err != nil {
		return
	}
	err = s.do(func() error {
		list, err := s.getList(item.ListID)
		if err != nil {
			return err
		}
		now := s.clock.Now()
		item.ID = s.newID()
		item.CreatedAt = now
		item.UpdatedAt = now
		stored := item
		list.items[item.ID] = &stored
		list.order = append(list.order, item.ID)
		result = item
		return nil
	})
	return
}

func (s *memStore) UpdateItem(ctx context.Context, item lists.Item) (result lists.Item, err error) {
	err = lists.CheckItem(item)
	if err != nil {
		return
	}
	err = s.do(func() error {
		_, stored, err := s.getItem(item.ListID, item.ID)
		if err != nil {
			return err
		}
		stored.Content = item.Content
		stored.Done = item.Done
		stored.UpdatedAt = s.clock.Now()
		result = *stored
		return nil
	})
	return
}

func (s *memStore) DestroyItem(ctx context.Context, listID, id string) error {
	return s.do(func() error {
		list, _, err := s.getItem(listID, id)
		if err != nil {
			return err
		}
		delete(list.items, id)
		list.order = remove(list.order, id)
		return nil
	})
}
