// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package backend provides a standard way to construct a lists.Store
// based on command-line flags or configuration files.
package backend

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/diffeo/go-lists/lists"
	"github.com/diffeo/go-lists/memory"
	graph "github.com/diffeo/go-lists/neo4j"
	"github.com/diffeo/go-lists/postgres"
)

// Backend describes user-visible parameters to store list data.
// This implements the flag.Value interface, and so a typical use is
//
//     func main() {
//         backend := backend.Backend{Implementation: "memory"}
//         flag.Var(&backend, "backend", "impl:address of list storage")
//         flag.Parse()
//         store, err := backend.Store(context.Background())
//     }
//
// Known implementations are "memory" (with no address), "postgres"
// (with a PostgreSQL connection string), and "neo4j" (with a URI,
// e.g. "neo4j:bolt://localhost:7687").
type Backend struct {
	// Implementation holds the name of the implementation; for
	// instance, "memory".
	Implementation string

	// Address holds some backend-specific address, such as a
	// database connect string.
	Address string
}

// ErrUnknownBackend is returned from Set if the implementation name
// is not recognized.
type ErrUnknownBackend struct {
	Implementation string
}

func (e ErrUnknownBackend) Error() string {
	return fmt.Sprintf("unknown list backend %q", e.Implementation)
}

var errNoBackend = errors.New("must specify a backend type")

// Store creates a new store.  This generally should be only called
// once.  If the backend has in-process state, such as a database
// connection pool or an in-memory store, calling this multiple times
// will create multiple copies of that state.  In particular, if
// b.Implementation is "memory", multiple calls to this will create
// multiple independent "worlds".
func (b *Backend) Store(ctx context.Context) (lists.Store, error) {
	switch b.Implementation {
	case "memory":
		return memory.New(), nil
	case "postgres":
		return postgres.New(b.Address)
	case "neo4j":
		return graph.New(ctx, b.Address)
	default:
		return nil, ErrUnknownBackend{Implementation: b.Implementation}
	}
}

// String renders a backend description as a string.
func (b *Backend) String() string {
	if b.Address == "" {
		return b.Implementation
	}
	return b.Implementation + ":" + b.Address
}

// Set parses a string into an existing backend description.  The
// string should be of the form "implementation:address", where
// address can be any string.  Set checks to see if the provided
// implementation is any of the known implementations, and returns an
// appropriate error if not.
//
// This is part of the flag.Value interface.  Note that neither Set
// nor String attempts to validate the b.Address part of the string
// or attempts to actually make a connection.
func (b *Backend) Set(param string) error {
	parts := strings.SplitN(param, ":", 2)
	switch parts[0] {
	case "":
		return errNoBackend
	case "memory", "postgres", "neo4j":
	default:
		return ErrUnknownBackend{Implementation: parts[0]}
	}
	b.Implementation = parts[0]
	b.Address = ""
	if len(parts) == 2 {
		b.Address = parts[1]
	}
	return nil
}

// UnmarshalYAML reads a backend from a YAML string, using the same
// syntax as Set.
func (b *Backend) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var param string
	if err := unmarshal(&param); err != nil {
		return err
	}
	return b.Set(param)
}

// MarshalYAML writes a backend as a YAML string.
func (b Backend) MarshalYAML() (interface{}, error) {
	return b.String(), nil
}
