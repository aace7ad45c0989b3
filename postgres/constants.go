// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

const (
	// SQL table names:
	listTable = "list"
	itemTable = "item"

	// SQL column names:
	listID        = listTable + ".id"
	listTitle     = listTable + ".title"
	listCreatedAt = listTable + ".created_at"
	listUpdatedAt = listTable + ".updated_at"
	itemID        = itemTable + ".id"
	itemListID    = itemTable + ".list_id"
	itemContent   = itemTable + ".content"
	itemDone      = itemTable + ".done"
	itemCreatedAt = itemTable + ".created_at"
	itemUpdatedAt = itemTable + ".updated_at"

	// WHERE clause fragments:
	isList       = listID + "=$1"
	inThisList   = itemListID + "=$1"
	isItemInList = itemListID + "=$1 AND " + itemID + "=$2"

	// PostgreSQL error codes:
	foreignKeyViolation  = "23503"
	serializationFailure = "40001"
)

// Output columns, in the order the scan functions read them.
var (
	listColumns = []string{listID, listTitle, listCreatedAt, listUpdatedAt}
	itemColumns = []string{itemID, itemListID, itemContent, itemDone, itemCreatedAt, itemUpdatedAt}
)
