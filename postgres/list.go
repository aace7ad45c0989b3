// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/diffeo/go-lists/lists"
)

// scanList reads one row of listColumns.
func scanList(row interface {
	Scan(...interface{}) error
}) (list lists.List, err error) {
	var id int64
	err = row.Scan(&id, &list.Title, &list.CreatedAt, &list.UpdatedAt)
	list.ID = formatID(id)
	return
}

// getList reads a single list within a transaction.
func getList(ctx context.Context, tx *sql.Tx, id string) (lists.List, error) {
	key, ok := parseID(id)
	if !ok {
		return lists.List{}, lists.ErrNoSuchList{ID: id}
	}
	query := buildSelect(listColumns, []string{listTable}, []string{isList})
	list, err := scanList(tx.QueryRowContext(ctx, query, key))
	if err == sql.ErrNoRows {
		return lists.List{}, lists.ErrNoSuchList{ID: id}
	}
	return list, err
}

func (s *pgStore) Lists(ctx context.Context) (result []lists.List, err error) {
	query := buildSelect(listColumns, []string{listTable}, nil) + " ORDER BY " + listID
	err = withTx(ctx, s, true, func(tx *sql.Tx) error {
		result = nil
		return queryAndScan(ctx, tx, query, nil, func(rows *sql.Rows) error {
			list, err := scanList(rows)
			if err == nil {
				result = append(result, list)
			}
			return err
		})
	})
	return
}

func (s *pgStore) List(ctx context.Context, id string) (result lists.List, err error) {
	err = withTx(ctx, s, true, func(tx *sql.Tx) (err error) {
		result, err = getList(ctx, tx, id)
		return
	})
	return
}

func (s *pgStore) CreateList(ctx context.Context, list lists.List) (result lists.List, err error) {
	now := s.clock.Now()
	var (
		params queryParams
		fields fieldList
	)
	fields.Add(&params, "title", list.Title)
	fields.Add(&params, "created_at", now)
	fields.Add(&params, "updated_at", now)
	query := fields.InsertStatement(listTable, listColumns...)
	err = withTx(ctx, s, false, func(tx *sql.Tx) (err error) {
		result, err = scanList(tx.QueryRowContext(ctx, query, params...))
		return
	})
	return
}

func (s *pgStore) UpdateList(ctx context.Context, list lists.List) (result lists.List, err error) {
	key, ok := parseID(list.ID)
	if !ok {
		return lists.List{}, lists.ErrNoSuchList{ID: list.ID}
	}
	var (
		params queryParams
		fields fieldList
	)
	cond := listID + "=" + params.Param(key)
	fields.Add(&params, "title", list.Title)
	fields.Add(&params, "updated_at", s.clock.Now())
	query := buildUpdate(listTable, fields.UpdateChanges(), []string{cond})
	query += " RETURNING " + strings.Join(listColumns, ", ")
	err = withTx(ctx, s, false, func(tx *sql.Tx) (err error) {
		result, err = scanList(tx.QueryRowContext(ctx, query, params...))
		if err == sql.ErrNoRows {
			err = lists.ErrNoSuchList{ID: list.ID}
		}
		return
	})
	return
}

func (s *pgStore) DestroyList(ctx context.Context, id string) error {
	key, ok := parseID(id)
	if !ok {
		return lists.ErrNoSuchList{ID: id}
	}
	query := buildDelete(listTable, []string{isList})
	return withTx(ctx, s, false, func(tx *sql.Tx) error {
		return execExpectingOne(ctx, tx, query, queryParams{key}, lists.ErrNoSuchList{ID: id})
	})
}
