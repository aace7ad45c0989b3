// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres_test

import (
	"os"
	"testing"

	"github.com/diffeo/go-lists/lists/liststest"
	"github.com/diffeo/go-lists/postgres"
	"github.com/stretchr/testify/suite"
)

// Suite runs the generic store tests against PostgreSQL.
type Suite struct {
	liststest.Suite
}

// SetupSuite connects to the database named by $LISTS_POSTGRES.  The
// string is passed to postgres.New, so an empty value falls back to
// the libpq environment variables.
func (s *Suite) SetupSuite() {
	s.Suite.SetupSuite()
	store, err := postgres.NewWithClock(os.Getenv("LISTS_POSTGRES"), s.Clock)
	s.Require().NoError(err)
	s.Store = store
}

// TestStore runs the lists.Store generic tests.  Since it needs a
// live database, it only runs if $LISTS_POSTGRES is set.
func TestStore(t *testing.T) {
	if _, present := os.LookupEnv("LISTS_POSTGRES"); !present {
		t.Skip("LISTS_POSTGRES not set")
	}
	suite.Run(t, &Suite{})
}
