// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

// This file has the remaining list and item operations.  These follow
// the plain REST conventions of the API and decode their responses.

import (
	"context"
	"net/http"

	"github.com/diffeo/go-lists/lists"
	"github.com/diffeo/go-lists/restdata"
)

const (
	listsTemplate = "{+host}/lists"
	listTemplate  = "{+host}/lists/{list_id}"
	itemsTemplate = "{+host}/lists/{list_id}/items"
	itemTemplate  = "{+host}/lists/{list_id}/items/{item_id}"
)

// DecodeItem extracts the item from a raw response, such as the one
// returned from CreateItem.
func DecodeItem(resp *Response) (lists.Item, error) {
	var env restdata.ItemEnvelope
	if err := resp.Decode(&env); err != nil {
		return lists.Item{}, err
	}
	return env.Item.ToItem(), nil
}

// DecodeList extracts the list from a raw response.
func DecodeList(resp *Response) (lists.List, error) {
	var env restdata.ListEnvelope
	if err := resp.Decode(&env); err != nil {
		return lists.List{}, err
	}
	return env.List.ToList(), nil
}

// do expands template and sends a request to it, returning the raw
// response.
func (a *Adapter) do(ctx context.Context, method, template string, vars map[string]interface{}, data interface{}) (*Response, error) {
	url, err := expand(a.Host, template, vars)
	if err != nil {
		return nil, err
	}
	return a.Transport.Ajax(ctx, url, method, data)
}

// Lists retrieves every list.
func (a *Adapter) Lists(ctx context.Context) ([]lists.List, error) {
	resp, err := a.do(ctx, http.MethodGet, listsTemplate, nil, nil)
	if err != nil {
		return nil, err
	}
	var env restdata.ListsEnvelope
	if err = resp.Decode(&env); err != nil {
		return nil, err
	}
	result := make([]lists.List, len(env.Lists))
	for i, list := range env.Lists {
		result[i] = list.ToList()
	}
	return result, nil
}

// List retrieves a single list.
func (a *Adapter) List(ctx context.Context, id string) (lists.List, error) {
	resp, err := a.do(ctx, http.MethodGet, listTemplate, map[string]interface{}{"list_id": id}, nil)
	if err != nil {
		return lists.List{}, err
	}
	return DecodeList(resp)
}

// CreateList creates a new list with a given title.
func (a *Adapter) CreateList(ctx context.Context, title string) (lists.List, error) {
	data := restdata.ListEnvelope{List: restdata.List{Title: title}}
	resp, err := a.do(ctx, http.MethodPost, listsTemplate, nil, data)
	if err != nil {
		return lists.List{}, err
	}
	return DecodeList(resp)
}

// DestroyList deletes a list and all of its items.
func (a *Adapter) DestroyList(ctx context.Context, id string) error {
	_, err := a.do(ctx, http.MethodDelete, listTemplate, map[string]interface{}{"list_id": id}, nil)
	return err
}

// Items retrieves every item in a list.
func (a *Adapter) Items(ctx context.Context, listID string) ([]lists.Item, error) {
	resp, err := a.do(ctx, http.MethodGet, itemsTemplate, map[string]interface{}{"list_id": listID}, nil)
	if err != nil {
		return nil, err
	}
	var env restdata.ItemsEnvelope
	if err = resp.Decode(&env); err != nil {
		return nil, err
	}
	result := make([]lists.Item, len(env.Items))
	for i, item := range env.Items {
		result[i] = item.ToItem()
	}
	return result, nil
}

// UpdateItem sends an existing item's content and completion flag
// back to the server.  The item must have both an ID and a list.
func (a *Adapter) UpdateItem(ctx context.Context, item *lists.Item) (lists.Item, error) {
	if item != nil && item.ID == "" {
		return lists.Item{}, lists.ErrInvalidRecordState{Reason: "item has no id"}
	}
	payload, err := BuildPayload(a.Serializer, item, true)
	if err != nil {
		return lists.Item{}, err
	}
	vars := map[string]interface{}{"list_id": item.ListID, "item_id": item.ID}
	data := map[string]interface{}{"item": map[string]interface{}(payload)}
	resp, err := a.do(ctx, http.MethodPut, itemTemplate, vars, data)
	if err != nil {
		return lists.Item{}, err
	}
	return DecodeItem(resp)
}

// DestroyItem deletes a single item.
func (a *Adapter) DestroyItem(ctx context.Context, listID, id string) error {
	vars := map[string]interface{}{"list_id": listID, "item_id": id}
	_, err := a.do(ctx, http.MethodDelete, itemTemplate, vars, nil)
	return err
}
