// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package routes holds the client-side route map of the list
// application: a small table of named navigation states, each with a
// URL pattern.
//
// The table is validated when it is built, rather than when a route
// is first used.  State names are flat; a dot in a name would imply a
// nested state, so "list-edit" is used instead of "list.edit".
//
//     table, err := routes.New(routes.Default)
//     state, err := table.Resolve("/lists/42/edit")
//     // state.Name == "list-edit", state.Params["list_id"] == "42"
package routes

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
)

// Route names one navigation state and the URL pattern that reaches
// it.  Patterns use gorilla/mux syntax, e.g. "/lists/{list_id}".
type Route struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// Default is the route map of the list application.
var Default = []Route{
	{Name: "lists", Path: "/lists"},
	{Name: "list", Path: "/lists/{list_id}"},
	{Name: "list-edit", Path: "/lists/{list_id}/edit"},
}

// ErrEmptyName is returned from New if a route has no name.
var ErrEmptyName = errors.New("Route name must not be empty")

// ErrInvalidRoute is returned from New if a route cannot be added to
// the table.
type ErrInvalidRoute struct {
	Route  Route
	Reason string
}

func (e ErrInvalidRoute) Error() string {
	return fmt.Sprintf("Invalid route %q (%q): %s", e.Route.Name, e.Route.Path, e.Reason)
}

// ErrNoRoute is returned from Resolve if no route matches a path.
type ErrNoRoute struct {
	Path string
}

func (e ErrNoRoute) Error() string {
	return fmt.Sprintf("No route matches %q", e.Path)
}

// ErrNoState is returned from URL if a state name is not in the
// table.
type ErrNoState struct {
	Name string
}

func (e ErrNoState) Error() string {
	return fmt.Sprintf("No such state %q", e.Name)
}

// State is the result of resolving a path: the name of the matching
// route and the values of its pattern variables.
type State struct {
	Name   string
	Params map[string]string
}

// Table is a validated, immutable route map.  It is safe for
// concurrent use.
type Table struct {
	routes []Route
	router *mux.Router
}

// New validates routes and builds a table from them.  Every route
// must have a unique name without dots and a unique path beginning
// with "/" that compiles as a mux pattern.
func New(routes []Route) (*Table, error) {
	t := &Table{
		routes: make([]Route, 0, len(routes)),
		router: mux.NewRouter(),
	}
	names := make(map[string]bool)
	paths := make(map[string]bool)
	for _, route := range routes {
		switch {
		case route.Name == "":
			return nil, ErrEmptyName
		case strings.Contains(route.Name, "."):
			return nil, ErrInvalidRoute{route, "name contains \".\"; use \"-\" for flat state names"}
		case names[route.Name]:
			return nil, ErrInvalidRoute{route, "duplicate name"}
		case !strings.HasPrefix(route.Path, "/"):
			return nil, ErrInvalidRoute{route, "path must begin with \"/\""}
		case paths[route.Path]:
			return nil, ErrInvalidRoute{route, "duplicate path"}
		}
		r := t.router.Path(route.Path).Name(route.Name).Handler(http.NotFoundHandler())
		if err := r.GetError(); err != nil {
			return nil, ErrInvalidRoute{route, err.Error()}
		}
		names[route.Name] = true
		paths[route.Path] = true
		t.routes = append(t.routes, route)
	}
	return t, nil
}

// Routes returns the routes in the table, in the order they were
// declared.
func (t *Table) Routes() []Route {
	result := make([]Route, len(t.routes))
	copy(result, t.routes)
	return result
}

// Resolve finds the state for a URL path.  If several routes match,
// the first declared one wins.
func (t *Table) Resolve(path string) (State, error) {
	req := &http.Request{
		Method: http.MethodGet,
		URL:    &url.URL{Path: path},
	}
	var match mux.RouteMatch
	if !t.router.Match(req, &match) || match.Route == nil {
		return State{}, ErrNoRoute{Path: path}
	}
	params := make(map[string]string, len(match.Vars))
	for k, v := range match.Vars {
		params[k] = v
	}
	return State{Name: match.Route.GetName(), Params: params}, nil
}

// URL builds the path for a named state, given alternating variable
// names and values.
func (t *Table) URL(name string, pairs ...string) (string, error) {
	r := t.router.Get(name)
	if r == nil {
		return "", ErrNoState{Name: name}
	}
	u, err := r.URLPath(pairs...)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
