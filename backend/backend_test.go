// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package backend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
)

func TestSet(t *testing.T) {
	tests := []struct {
		param   string
		backend Backend
	}{
		{"memory", Backend{Implementation: "memory"}},
		{"postgres:host=localhost dbname=lists", Backend{"postgres", "host=localhost dbname=lists"}},
		{"postgres://localhost/lists", Backend{"postgres", "//localhost/lists"}},
		{"neo4j:bolt://localhost:7687", Backend{"neo4j", "bolt://localhost:7687"}},
	}
	for _, test := range tests {
		var b Backend
		if assert.NoError(t, b.Set(test.param), test.param) {
			assert.Equal(t, test.backend, b, test.param)
			assert.Equal(t, test.param, b.String())
		}
	}
}

func TestSetInvalid(t *testing.T) {
	b := Backend{Implementation: "memory"}
	assert.Equal(t, errNoBackend, b.Set(""))
	assert.Equal(t, ErrUnknownBackend{Implementation: "redis"}, b.Set("redis:localhost"))
	assert.Equal(t, Backend{Implementation: "memory"}, b)
}

func TestStoreMemory(t *testing.T) {
	b := Backend{Implementation: "memory"}
	store, err := b.Store(context.Background())
	if assert.NoError(t, err) {
		all, err := store.Lists(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, all)
	}

	b = Backend{Implementation: "redis"}
	_, err = b.Store(context.Background())
	assert.Equal(t, ErrUnknownBackend{Implementation: "redis"}, err)
}

func TestYAML(t *testing.T) {
	var config struct {
		Backend Backend `yaml:"backend"`
	}
	err := yaml.Unmarshal([]byte("backend: postgres:dbname=lists\n"), &config)
	if assert.NoError(t, err) {
		assert.Equal(t, Backend{"postgres", "dbname=lists"}, config.Backend)
	}

	out, err := yaml.Marshal(config)
	if assert.NoError(t, err) {
		assert.Equal(t, "backend: postgres:dbname=lists\n", string(out))
	}

	err = yaml.Unmarshal([]byte("backend: redis\n"), &config)
	assert.Error(t, err)
}
