// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"github.com/diffeo/go-lists/lists"
)

// FromItem builds the wire representation of an item.
func FromItem(item lists.Item) Item {
	return Item{
		ID:        item.ID,
		Content:   item.Content,
		Done:      item.Done,
		ListID:    item.ListID,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// ToItem converts the wire representation back to an item.
func (i Item) ToItem() lists.Item {
	return lists.Item{
		ID:        i.ID,
		Content:   i.Content,
		Done:      i.Done,
		ListID:    i.ListID,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

// FromList builds the wire representation of a list.
func FromList(list lists.List) List {
	return List{
		ID:        list.ID,
		Title:     list.Title,
		CreatedAt: list.CreatedAt,
		UpdatedAt: list.UpdatedAt,
	}
}

// ToList converts the wire representation back to a list.
func (l List) ToList() lists.List {
	return lists.List{
		ID:        l.ID,
		Title:     l.Title,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
