// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restserver publishes a lists.Store as a REST service.  The
// restclient package is a matching client.
//
// The wire format is defined in the restdata package.
//
// HTTP Considerations
//
// Clients should use the standard HTTP Accept: header to request
// application/json; a missing Accept: header is treated as */*.
// Request bodies must be sent with a JSON Content-Type:.
//
// This interface does not (currently) support HTTP caching or
// authentication headers.
//
// Successful creation returns 201 Created with a Location: header
// pointing at the new resource.  Deletion returns 204 No Content.
// Unknown lists and items return 404 Not Found; invalid bodies,
// including an item whose list_id disagrees with the URL, return 400
// Bad Request.
//
// URL Scheme
//
// The following URLs are defined:
//
//     /lists                              GET, POST
//     /lists/{list_id}                    GET, PUT, DELETE
//     /lists/{list_id}/items              GET, POST
//     /lists/{list_id}/items/{item_id}    GET, PUT, DELETE
//     /items                              (405 for every method)
package restserver
