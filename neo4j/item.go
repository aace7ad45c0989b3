// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package neo4j

import (
	"context"

	"github.com/diffeo/go-lists/lists"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

const itemFields = "i.id AS id, l.id AS list_id, i.content AS content, " +
	"i.done AS done, i.created_at AS created_at, i.updated_at AS updated_at"

func recordItem(r *neo4j.Record) lists.Item {
	return lists.Item{
		ID:        recordString(r, "id"),
		ListID:    recordString(r, "list_id"),
		Content:   recordString(r, "content"),
		Done:      recordBool(r, "done"),
		CreatedAt: recordTime(r, "created_at"),
		UpdatedAt: recordTime(r, "updated_at"),
	}
}

// itemQuery runs a query that returns at most one item in a known
// list, mapping an empty result to ErrNoSuchItem.
func itemQuery(ctx context.Context, tx neo4j.ManagedTransaction, listID, id, query string, params map[string]any) (lists.Item, error) {
	if _, err := getList(ctx, tx, listID); err != nil {
		return lists.Item{}, err
	}
	record, err := first(ctx, tx, query, params)
	if err != nil {
		return lists.Item{}, err
	}
	if record == nil {
		return lists.Item{}, lists.ErrNoSuchItem{ListID: listID, ID: id}
	}
	return recordItem(record), nil
}

func (s *graphStore) Items(ctx context.Context, listID string) (result []lists.Item, err error) {
	err = s.read(ctx, func(tx neo4j.ManagedTransaction) error {
		if _, err := getList(ctx, tx, listID); err != nil {
			return err
		}
		result = []lists.Item{}
		return each(ctx, tx,
			"MATCH (i:Item)-[:IN_LIST]->(l:List {id: $list_id}) RETURN "+itemFields+" ORDER BY i.seq",
			map[string]any{"list_id": listID},
			func(r *neo4j.Record) error {
				result = append(result, recordItem(r))
				return nil
			})
	})
	return
}

func (s *graphStore) Item(ctx context.Context, listID, id string) (result lists.Item, err error) {
	err = s.read(ctx, func(tx neo4j.ManagedTransaction) (err error) {
		result, err = itemQuery(ctx, tx, listID, id,
			"MATCH (i:Item {id: $id})-[:IN_LIST]->(l:List {id: $list_id}) RETURN "+itemFields,
			map[string]any{"id": id, "list_id": listID})
		return
	})
	return
}

func (s *graphStore) CreateItem(ctx context.Context, item lists.Item) (result lists.Item, err error) {
	err = lists.CheckItem(item)
	if err != nil {
		return
	}
	params := map[string]any{
		"id":      newID(),
		"list_id": item.ListID,
		"content": item.Content,
		"done":    item.Done,
		"now":     s.now(),
	}
	err = s.write(ctx, func(tx neo4j.ManagedTransaction) error {
		if _, err := getList(ctx, tx, item.ListID); err != nil {
			return err
		}
		record, err := first(ctx, tx,
			nextSeq+
				"MATCH (l:List {id: $list_id}) "+
				"CREATE (i:Item {id: $id, content: $content, done: $done, seq: seq, created_at: $now, updated_at: $now})"+
				"-[:IN_LIST]->(l) "+
				"RETURN "+itemFields,
			params)
		if err != nil {
			return err
		}
		if record == nil {
			return lists.ErrNoSuchList{ID: item.ListID}
		}
		result = recordItem(record)
		return nil
	})
	return
}

func (s *graphStore) UpdateItem(ctx context.Context, item lists.Item) (result lists.Item, err error) {
	err = lists.CheckItem(item)
	if err != nil {
		return
	}
	params := map[string]any{
		"id":      item.ID,
		"list_id": item.ListID,
		"content": item.Content,
		"done":    item.Done,
		"now":     s.now(),
	}
	err = s.write(ctx, func(tx neo4j.ManagedTransaction) (err error) {
		result, err = itemQuery(ctx, tx, item.ListID, item.ID,
			"MATCH (i:Item {id: $id})-[:IN_LIST]->(l:List {id: $list_id}) "+
				"SET i.content = $content, i.done = $done, i.updated_at = $now "+
				"RETURN "+itemFields,
			params)
		return
	})
	return
}

func (s *graphStore) DestroyItem(ctx context.Context, listID, id string) error {
	return s.write(ctx, func(tx neo4j.ManagedTransaction) error {
		_, err := itemQuery(ctx, tx, listID, id,
			"MATCH (i:Item {id: $id})-[:IN_LIST]->(l:List {id: $list_id}) "+
				"WITH i, "+itemFields+" "+
				"DETACH DELETE i "+
				"RETURN id, list_id, content, done, created_at, updated_at",
			map[string]any{"id": id, "list_id": listID})
		return err
	})
}
