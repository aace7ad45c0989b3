// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"net/http"

	"github.com/diffeo/go-lists/lists"
	"github.com/gorilla/mux"
)

// NewRouter creates a new HTTP handler that processes all list API
// requests.  All resources are under the URL path root, e.g.
// /lists/42.  For more control over this setup, create a mux.Router
// and call PopulateRouter instead.
func NewRouter(store lists.Store) http.Handler {
	r := mux.NewRouter()
	PopulateRouter(r, store)
	return r
}

// PopulateRouter adds list API routes to an existing
// github.com/gorilla/mux router object.  This can be used, for
// instance, to place the API under a subpath:
//
//     import "github.com/diffeo/go-lists/memory"
//     import "github.com/gorilla/mux"
//     r := mux.NewRouter()
//     s := r.PathPrefix("/api").Subrouter()
//     PopulateRouter(s, memory.New())
func PopulateRouter(r *mux.Router, store lists.Store) {
	api := &restAPI{Store: store, Router: r}
	api.PopulateRouter(r)
}

// restAPI holds the persistent state for the list REST API.
type restAPI struct {
	Store  lists.Store
	Router *mux.Router
}

// PopulateRouter adds all list API URL paths to a router.
func (api *restAPI) PopulateRouter(r *mux.Router) {
	api.PopulateList(r)
	api.PopulateItem(r)
}
