// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/diffeo/go-lists/lists"
)

// scanItem reads one row of itemColumns.
func scanItem(row interface {
	Scan(...interface{}) error
}) (item lists.Item, err error) {
	var id, listID int64
	err = row.Scan(&id, &listID, &item.Content, &item.Done, &item.CreatedAt, &item.UpdatedAt)
	item.ID = formatID(id)
	item.ListID = formatID(listID)
	return
}

func (s *pgStore) Items(ctx context.Context, listID string) (result []lists.Item, err error) {
	query := buildSelect(itemColumns, []string{itemTable}, []string{inThisList}) + " ORDER BY " + itemID
	err = withTx(ctx, s, true, func(tx *sql.Tx) error {
		result = nil
		list, err := getList(ctx, tx, listID)
		if err != nil {
			return err
		}
		key, _ := parseID(list.ID)
		result = []lists.Item{}
		return queryAndScan(ctx, tx, query, queryParams{key}, func(rows *sql.Rows) error {
			item, err := scanItem(rows)
			if err == nil {
				result = append(result, item)
			}
			return err
		})
	})
	return
}

func (s *pgStore) Item(ctx context.Context, listID, id string) (result lists.Item, err error) {
	err = withTx(ctx, s, true, func(tx *sql.Tx) error {
		if _, err := getList(ctx, tx, listID); err != nil {
			return err
		}
		listKey, _ := parseID(listID)
		key, ok := parseID(id)
		if !ok {
			return lists.ErrNoSuchItem{ListID: listID, ID: id}
		}
		query := buildSelect(itemColumns, []string{itemTable}, []string{isItemInList})
		item, err := scanItem(tx.QueryRowContext(ctx, query, listKey, key))
		if err == sql.ErrNoRows {
			return lists.ErrNoSuchItem{ListID: listID, ID: id}
		}
		result = item
		return err
	})
	return
}

func (s *pgStore) CreateItem(ctx context.Context, item lists.Item) (result lists.Item, err error) {
	err = lists.CheckItem(item)
	if err != nil {
		return
	}
	listKey, ok := parseID(item.ListID)
	if !ok {
		return lists.Item{}, lists.ErrNoSuchList{ID: item.ListID}
	}
	now := s.clock.Now()
	var (
		params queryParams
		fields fieldList
	)
	fields.Add(&params, "list_id", listKey)
	fields.Add(&params, "content", item.Content)
	fields.Add(&params, "done", item.Done)
	fields.Add(&params, "created_at", now)
	fields.Add(&params, "updated_at", now)
	query := fields.InsertStatement(itemTable, itemColumns...)
	err = withTx(ctx, s, false, func(tx *sql.Tx) (err error) {
		result, err = scanItem(tx.QueryRowContext(ctx, query, params...))
		if isForeignKeyViolation(err) {
			err = lists.ErrNoSuchList{ID: item.ListID}
		}
		return
	})
	return
}

func (s *pgStore) UpdateItem(ctx context.Context, item lists.Item) (result lists.Item, err error) {
	err = lists.CheckItem(item)
	if err != nil {
		return
	}
	err = withTx(ctx, s, false, func(tx *sql.Tx) error {
		if _, err := getList(ctx, tx, item.ListID); err != nil {
			return err
		}
		listKey, _ := parseID(item.ListID)
		key, ok := parseID(item.ID)
		if !ok {
			return lists.ErrNoSuchItem{ListID: item.ListID, ID: item.ID}
		}
		var (
			params queryParams
			fields fieldList
		)
		conds := []string{
			itemListID + "=" + params.Param(listKey),
			itemID + "=" + params.Param(key),
		}
		fields.Add(&params, "content", item.Content)
		fields.Add(&params, "done", item.Done)
		fields.Add(&params, "updated_at", s.clock.Now())
		query := buildUpdate(itemTable, fields.UpdateChanges(), conds)
		query += " RETURNING " + strings.Join(itemColumns, ", ")
		updated, err := scanItem(tx.QueryRowContext(ctx, query, params...))
		if err == sql.ErrNoRows {
			return lists.ErrNoSuchItem{ListID: item.ListID, ID: item.ID}
		}
		result = updated
		return err
	})
	return
}

func (s *pgStore) DestroyItem(ctx context.Context, listID, id string) error {
	return withTx(ctx, s, false, func(tx *sql.Tx) error {
		if _, err := getList(ctx, tx, listID); err != nil {
			return err
		}
		listKey, _ := parseID(listID)
		key, ok := parseID(id)
		if !ok {
			return lists.ErrNoSuchItem{ListID: listID, ID: id}
		}
		query := buildDelete(itemTable, []string{isItemInList})
		return execExpectingOne(ctx, tx, query, queryParams{listKey, key},
			lists.ErrNoSuchItem{ListID: listID, ID: id})
	})
}
