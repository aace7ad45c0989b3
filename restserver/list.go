// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/diffeo/go-lists/restdata"
	"github.com/gorilla/mux"
)

// ListIndex gets a list of all lists known in the system.
func (api *restAPI) ListIndex(ctx *reqContext) (interface{}, error) {
	all, err := api.Store.Lists(ctx.Ctx)
	if err != nil {
		return nil, err
	}
	result := restdata.ListsEnvelope{Lists: make([]restdata.List, len(all))}
	for i, list := range all {
		result.Lists[i] = restdata.FromList(list)
	}
	return result, nil
}

// ListCreate creates a new list.
func (api *restAPI) ListCreate(ctx *reqContext, in interface{}) (interface{}, error) {
	req, valid := in.(restdata.ListEnvelope)
	if !valid {
		return nil, errUnmarshal
	}
	list, err := api.Store.CreateList(ctx.Ctx, req.List.ToList())
	if err != nil {
		return nil, statusError(err)
	}
	location, err := api.urlFor("list", "list_id", list.ID)
	if err != nil {
		return nil, err
	}
	return responseCreated{
		Location: location,
		Body:     restdata.ListEnvelope{List: restdata.FromList(list)},
	}, nil
}

// ListGet retrieves an existing list.
func (api *restAPI) ListGet(ctx *reqContext) (interface{}, error) {
	return restdata.ListEnvelope{List: restdata.FromList(*ctx.List)}, nil
}

// ListPut changes the title of an existing list.
func (api *restAPI) ListPut(ctx *reqContext, in interface{}) (interface{}, error) {
	req, valid := in.(restdata.ListEnvelope)
	if !valid {
		return nil, errUnmarshal
	}
	list := *ctx.List
	list.Title = req.List.Title
	list, err := api.Store.UpdateList(ctx.Ctx, list)
	if err != nil {
		return nil, statusError(err)
	}
	return restdata.ListEnvelope{List: restdata.FromList(list)}, nil
}

// ListDelete destroys an existing list and its items.
func (api *restAPI) ListDelete(ctx *reqContext) (interface{}, error) {
	return nil, statusError(api.Store.DestroyList(ctx.Ctx, ctx.List.ID))
}

// PopulateList adds list-specific routes to a router.  r should be
// rooted at the root of the API URL tree, e.g. "/".
func (api *restAPI) PopulateList(r *mux.Router) {
	r.Path("/lists").Name("lists").Handler(&resourceHandler{
		Representation: restdata.ListEnvelope{},
		Context:        api.Context,
		Get:            api.ListIndex,
		Post:           api.ListCreate,
	})
	r.Path("/lists/{list_id}").Name("list").Handler(&resourceHandler{
		Representation: restdata.ListEnvelope{},
		Context:        api.Context,
		Get:            api.ListGet,
		Put:            api.ListPut,
		Delete:         api.ListDelete,
	})
}
