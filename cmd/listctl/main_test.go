// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"bytes"
	"io/ioutil"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/diffeo/go-lists/memory"
	"github.com/diffeo/go-lists/restserver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/urfave/cli"
)

// Suite runs the command against a fresh in-memory server for every
// test.
type Suite struct {
	suite.Suite
	Server *httptest.Server
	Stdout bytes.Buffer
	Stderr bytes.Buffer
	exiter func(int)
}

func (s *Suite) SetupSuite() {
	s.exiter = cli.OsExiter
	cli.OsExiter = func(int) {}
}

func (s *Suite) TearDownSuite() {
	cli.OsExiter = s.exiter
}

func (s *Suite) SetupTest() {
	s.Server = httptest.NewServer(restserver.NewRouter(memory.New()))
	s.Stdout.Reset()
	s.Stderr.Reset()
}

func (s *Suite) TearDownTest() {
	s.Server.Close()
}

// run runs listctl with some arguments and returns its output.
func (s *Suite) run(args ...string) (string, error) {
	s.Stdout.Reset()
	app := newApp()
	app.Writer = &s.Stdout
	app.ErrWriter = &s.Stderr
	argv := append([]string{"listctl", "--host", s.Server.URL}, args...)
	err := app.Run(argv)
	return s.Stdout.String(), err
}

func (s *Suite) TestItemFlow() {
	out, err := s.run("create-list", "groceries")
	s.Require().NoError(err)
	listID := strings.TrimSpace(out)
	s.Equal("1", listID)

	out, err = s.run("lists")
	if s.NoError(err) {
		s.Equal("1\tgroceries\n", out)
	}

	out, err = s.run("create-item", "--list", listID, "--content", "Buy milk")
	s.Require().NoError(err)
	itemID := strings.TrimSpace(out)
	s.Equal("2", itemID)

	out, err = s.run("items", "--list", listID)
	if s.NoError(err) {
		s.Equal("2\t[ ] Buy milk\n", out)
	}

	out, err = s.run("done", "--list", listID, itemID)
	if s.NoError(err) {
		s.Equal("2\t[x] Buy milk\n", out)
	}

	_, err = s.run("delete-item", "--list", listID, itemID)
	s.NoError(err)

	out, err = s.run("items", "--list", listID)
	if s.NoError(err) {
		s.Equal("", out)
	}
}

func (s *Suite) TestCreateItemWithoutList() {
	_, err := s.run("create-item", "--content", "Buy milk")
	if s.Error(err) {
		s.Contains(err.Error(), "no list")
	}
}

func (s *Suite) TestUnknownList() {
	_, err := s.run("items", "--list", "42")
	if s.Error(err) {
		s.Contains(err.Error(), "42")
	}
}

func (s *Suite) TestRoutes() {
	out, err := s.run("routes")
	if s.NoError(err) {
		s.Equal("lists\t/lists\nlist\t/lists/{list_id}\nlist-edit\t/lists/{list_id}/edit\n", out)
	}

	out, err = s.run("resolve", "/lists/7/edit")
	if s.NoError(err) {
		s.Equal("list-edit\nlist_id=7\n", out)
	}

	_, err = s.run("resolve", "/items")
	s.Error(err)
}

func (s *Suite) TestVerbose() {
	_, err := s.run("--verbose", "lists")
	s.NoError(err)
	s.Contains(s.Stderr.String(), "request")
}

func TestListctl(t *testing.T) {
	suite.Run(t, new(Suite))
}

func TestLoadConfigYaml(t *testing.T) {
	dir, err := ioutil.TempDir("", "listctl")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	filename := filepath.Join(dir, "config.yaml")
	contents := "host: http://example.com/api\nroutes:\n  - name: home\n    path: /\n"
	require.NoError(t, ioutil.WriteFile(filename, []byte(contents), 0600))

	cfg, err := loadConfigYaml(filename)
	if assert.NoError(t, err) {
		assert.Equal(t, "http://example.com/api", cfg.Host)
		if assert.Len(t, cfg.Routes, 1) {
			assert.Equal(t, "home", cfg.Routes[0].Name)
			assert.Equal(t, "/", cfg.Routes[0].Path)
		}
	}
}
