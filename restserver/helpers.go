// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

// This file contains various HTTP-related helpers.

import (
	"fmt"
)

// urlFor builds the URL of a named route, given alternating
// parameter names and values.
func (api *restAPI) urlFor(route string, params ...string) (string, error) {
	r := api.Router.Get(route)
	if r == nil {
		return "", fmt.Errorf("No such route %q", route)
	}
	url, err := r.URL(params...)
	if err != nil {
		return "", err
	}
	return url.String(), nil
}
