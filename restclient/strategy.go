// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/diffeo/go-lists/lists"
	"github.com/jtacoma/uritemplates"
)

// CreateStrategy decides where a new record is sent.
type CreateStrategy interface {
	// CreatePath returns the absolute URL to POST a serialized
	// record to.
	CreatePath(payload Payload) (string, error)
}

// nestedItemsTemplate is the RFC 6570 template for an item
// collection.  host is a reserved expansion so its slashes and colons
// survive; list_id is escaped.
const nestedItemsTemplate = "{+host}/lists/{list_id}/items"

// NestedCreate creates items in the collection of their owning list,
// <host>/lists/<list_id>/items, rather than in a flat <host>/items
// collection.  The remote API does not accept the latter.
type NestedCreate struct {
	// Host is the base URL of the API, e.g. "http://localhost:3000".
	Host string
}

// CreatePath finds the list ID in payload and returns the nested
// collection URL for it.  If the payload has no list ID, or an empty
// one, returns ErrMissingParentReference.
func (s NestedCreate) CreatePath(payload Payload) (string, error) {
	listID, err := ListID(payload)
	if err != nil {
		return "", err
	}
	return expand(s.Host, nestedItemsTemplate, map[string]interface{}{
		"list_id": listID,
	})
}

// ListID extracts the list ID from a payload as a string.  Numeric
// IDs are formatted in decimal.
func ListID(payload Payload) (string, error) {
	var listID string
	switch v := payload[ListIDField].(type) {
	case nil:
		return "", lists.ErrMissingParentReference
	case string:
		listID = v
	case int:
		listID = strconv.Itoa(v)
	case int64:
		listID = strconv.FormatInt(v, 10)
	case uint64:
		listID = strconv.FormatUint(v, 10)
	case float64:
		listID = strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		listID = v.String()
	default:
		return "", lists.ErrInvalidRecordState{
			Reason: fmt.Sprintf("list_id has unsupported type %T", v),
			Err:    lists.ErrMissingParentReference,
		}
	}
	if listID == "" {
		return "", lists.ErrMissingParentReference
	}
	return listID, nil
}

// expand fills in a URI template rooted at host.  vars is not
// modified.
func expand(host, template string, vars map[string]interface{}) (string, error) {
	tmpl, err := uritemplates.Parse(template)
	if err != nil {
		return "", err
	}
	values := make(map[string]interface{}, len(vars)+1)
	for k, v := range vars {
		values[k] = v
	}
	values["host"] = strings.TrimRight(host, "/")
	return tmpl.Expand(values)
}
