// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/diffeo/go-lists/lists"
	"github.com/diffeo/go-lists/restdata"
	"github.com/gorilla/mux"
)

// errUnmarshal is returned if the put/post contract is violated and
// a handler function is passed the wrong type.
var errUnmarshal = restdata.ErrBadRequest{
	Err: errors.New("Invalid input format"),
}

// reqContext holds all of the information and objects that can be
// extracted from URL parameters.
type reqContext struct {
	Ctx  context.Context
	List *lists.List
	Item *lists.Item
}

func (api *restAPI) Context(req *http.Request) (ctx *reqContext, err error) {
	ctx = &reqContext{Ctx: req.Context()}
	vars := mux.Vars(req)

	if listID, present := vars["list_id"]; present {
		var list lists.List
		list, err = api.Store.List(ctx.Ctx, listID)
		if err != nil {
			return ctx, statusError(err)
		}
		ctx.List = &list
	}

	if itemID, present := vars["item_id"]; present && ctx.List != nil {
		var item lists.Item
		item, err = api.Store.Item(ctx.Ctx, ctx.List.ID, itemID)
		if err != nil {
			return ctx, statusError(err)
		}
		ctx.Item = &item
	}

	return ctx, nil
}

// statusError wraps the well-known lists errors so that they produce
// the right HTTP status.
func statusError(err error) error {
	switch err.(type) {
	case lists.ErrNoSuchList, lists.ErrNoSuchItem:
		return restdata.ErrNotFound{Err: err}
	case lists.ErrInvalidRecordState:
		return restdata.ErrBadRequest{Err: err}
	}
	switch err {
	case lists.ErrEmptyContent, lists.ErrMissingParentReference:
		return restdata.ErrBadRequest{Err: err}
	}
	return err
}
