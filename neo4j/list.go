// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package neo4j

import (
	"context"

	"github.com/diffeo/go-lists/lists"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

const listFields = "l.id AS id, l.title AS title, " +
	"l.created_at AS created_at, l.updated_at AS updated_at"

func recordList(r *neo4j.Record) lists.List {
	return lists.List{
		ID:        recordString(r, "id"),
		Title:     recordString(r, "title"),
		CreatedAt: recordTime(r, "created_at"),
		UpdatedAt: recordTime(r, "updated_at"),
	}
}

// getList finds a single list within a transaction.
func getList(ctx context.Context, tx neo4j.ManagedTransaction, id string) (lists.List, error) {
	record, err := first(ctx, tx,
		"MATCH (l:List {id: $id}) RETURN "+listFields,
		map[string]any{"id": id})
	if err != nil {
		return lists.List{}, err
	}
	if record == nil {
		return lists.List{}, lists.ErrNoSuchList{ID: id}
	}
	return recordList(record), nil
}

func (s *graphStore) Lists(ctx context.Context) (result []lists.List, err error) {
	err = s.read(ctx, func(tx neo4j.ManagedTransaction) error {
		result = []lists.List{}
		return each(ctx, tx,
			"MATCH (l:List) RETURN "+listFields+" ORDER BY l.seq",
			nil,
			func(r *neo4j.Record) error {
				result = append(result, recordList(r))
				return nil
			})
	})
	return
}

func (s *graphStore) List(ctx context.Context, id string) (result lists.List, err error) {
	err = s.read(ctx, func(tx neo4j.ManagedTransaction) (err error) {
		result, err = getList(ctx, tx, id)
		return
	})
	return
}

func (s *graphStore) CreateList(ctx context.Context, list lists.List) (result lists.List, err error) {
	params := map[string]any{
		"id":    newID(),
		"title": list.Title,
		"now":   s.now(),
	}
	err = s.write(ctx, func(tx neo4j.ManagedTransaction) error {
		record, err := first(ctx, tx,
			nextSeq+
				"CREATE (l:List {id: $id, title: $title, seq: seq, created_at: $now, updated_at: $now}) "+
				"RETURN "+listFields,
			params)
		if err == nil {
			result = recordList(record)
		}
		return err
	})
	return
}

func (s *graphStore) UpdateList(ctx context.Context, list lists.List) (result lists.List, err error) {
	params := map[string]any{
		"id":    list.ID,
		"title": list.Title,
		"now":   s.now(),
	}
	err = s.write(ctx, func(tx neo4j.ManagedTransaction) error {
		record, err := first(ctx, tx,
			"MATCH (l:List {id: $id}) SET l.title = $title, l.updated_at = $now RETURN "+listFields,
			params)
		if err != nil {
			return err
		}
		if record == nil {
			return lists.ErrNoSuchList{ID: list.ID}
		}
		result = recordList(record)
		return nil
	})
	return
}

func (s *graphStore) DestroyList(ctx context.Context, id string) error {
	return s.write(ctx, func(tx neo4j.ManagedTransaction) error {
		if _, err := getList(ctx, tx, id); err != nil {
			return err
		}
		params := map[string]any{"id": id}
		_, err := tx.Run(ctx,
			"MATCH (i:Item)-[:IN_LIST]->(:List {id: $id}) DETACH DELETE i",
			params)
		if err != nil {
			return err
		}
		_, err = tx.Run(ctx, "MATCH (l:List {id: $id}) DETACH DELETE l", params)
		return err
	})
}
