// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"errors"

	"github.com/diffeo/go-lists/restdata"
	"github.com/gorilla/mux"
)

// errNoItem is returned if a request body does not have an "item"
// object.
var errNoItem = restdata.ErrBadRequest{
	Err: errors.New("Request body must contain an \"item\" object"),
}

// errListMismatch is returned if the list_id in a request body names
// a different list than the URL.
var errListMismatch = restdata.ErrBadRequest{
	Err: errors.New("list_id does not match the list in the URL"),
}

// itemFromBody extracts the item from a request body.  The body is
// decoded loosely, so the list_id may be a number.  If the body names
// a list, it must be the list from the URL.
func itemFromBody(ctx *reqContext, in interface{}) (restdata.Item, error) {
	var item restdata.Item
	body, valid := in.(map[string]interface{})
	if !valid {
		return item, errUnmarshal
	}
	raw, valid := body["item"].(map[string]interface{})
	if !valid {
		return item, errNoItem
	}
	if err := restdata.DecodeMap(raw, &item); err != nil {
		return item, restdata.ErrBadRequest{Err: err}
	}
	if item.ListID != "" && item.ListID != ctx.List.ID {
		return item, errListMismatch
	}
	item.ListID = ctx.List.ID
	return item, nil
}

// ItemIndex gets every item in a list.
func (api *restAPI) ItemIndex(ctx *reqContext) (interface{}, error) {
	items, err := api.Store.Items(ctx.Ctx, ctx.List.ID)
	if err != nil {
		return nil, statusError(err)
	}
	result := restdata.ItemsEnvelope{Items: make([]restdata.Item, len(items))}
	for i, item := range items {
		result.Items[i] = restdata.FromItem(item)
	}
	return result, nil
}

// ItemCreate creates a new item in the list named in the URL.
func (api *restAPI) ItemCreate(ctx *reqContext, in interface{}) (interface{}, error) {
	req, err := itemFromBody(ctx, in)
	if err != nil {
		return nil, err
	}
	item, err := api.Store.CreateItem(ctx.Ctx, req.ToItem())
	if err != nil {
		return nil, statusError(err)
	}
	location, err := api.urlFor("item", "list_id", item.ListID, "item_id", item.ID)
	if err != nil {
		return nil, err
	}
	return responseCreated{
		Location: location,
		Body:     restdata.ItemEnvelope{Item: restdata.FromItem(item)},
	}, nil
}

// ItemGet retrieves a single item.
func (api *restAPI) ItemGet(ctx *reqContext) (interface{}, error) {
	return restdata.ItemEnvelope{Item: restdata.FromItem(*ctx.Item)}, nil
}

// ItemPut updates the content and completion flag of an item.  Any
// id in the body is ignored in favor of the URL.
func (api *restAPI) ItemPut(ctx *reqContext, in interface{}) (interface{}, error) {
	req, err := itemFromBody(ctx, in)
	if err != nil {
		return nil, err
	}
	item := *ctx.Item
	item.Content = req.Content
	item.Done = req.Done
	item, err = api.Store.UpdateItem(ctx.Ctx, item)
	if err != nil {
		return nil, statusError(err)
	}
	return restdata.ItemEnvelope{Item: restdata.FromItem(item)}, nil
}

// ItemDelete destroys a single item.
func (api *restAPI) ItemDelete(ctx *reqContext) (interface{}, error) {
	return nil, statusError(api.Store.DestroyItem(ctx.Ctx, ctx.List.ID, ctx.Item.ID))
}

// PopulateItem adds item-specific routes to a router.  r should be
// rooted at the root of the API URL tree, e.g. "/".
func (api *restAPI) PopulateItem(r *mux.Router) {
	r.Path("/lists/{list_id}/items").Name("items").Handler(&resourceHandler{
		Representation: map[string]interface{}{},
		Context:        api.Context,
		Get:            api.ItemIndex,
		Post:           api.ItemCreate,
	})
	r.Path("/lists/{list_id}/items/{item_id}").Name("item").Handler(&resourceHandler{
		Representation: map[string]interface{}{},
		Context:        api.Context,
		Get:            api.ItemGet,
		Put:            api.ItemPut,
		Delete:         api.ItemDelete,
	})
	// Items only exist inside lists, so every method here is a
	// 405 Method Not Allowed.
	r.Path("/items").Name("flatItems").Handler(&resourceHandler{
		Context: api.Context,
	})
}
