// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Command listsd serves the list REST API over HTTP.  Lists and items
// are kept in a pluggable storage backend, selected with -backend.
//
// Settings may also come from a YAML file named with -config:
//
//     http: ":5980"
//     backend: "postgres:dbname=lists"
//     log_requests: true
//
// Flags given on the command line override the file.
package main

import (
	"context"
	"flag"
	"io/ioutil"
	"net/http"

	"github.com/diffeo/go-lists/backend"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// config holds the daemon settings.
type config struct {
	HTTP        string          `yaml:"http"`
	Backend     backend.Backend `yaml:"backend"`
	LogRequests bool            `yaml:"log_requests"`
}

func main() {
	cfg := config{
		HTTP:    ":5980",
		Backend: backend.Backend{Implementation: "memory"},
	}

	httpBind := flag.String("http", cfg.HTTP,
		"[ip]:port for HTTP REST interface")
	flagBackend := cfg.Backend
	flag.Var(&flagBackend, "backend", "impl[:address] of the storage backend")
	configFile := flag.String("config", "", "global configuration YAML file")
	logRequests := flag.Bool("log-requests", false, "log all requests")
	flag.Parse()

	if *configFile != "" {
		err := loadConfigYaml(*configFile, &cfg)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"err":  err,
				"file": *configFile,
			}).Fatal("Could not load YAML configuration")
			return
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "http":
			cfg.HTTP = *httpBind
		case "backend":
			cfg.Backend = flagBackend
		case "log-requests":
			cfg.LogRequests = *logRequests
		}
	})

	store, err := cfg.Backend.Store(context.Background())
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"err":     err,
			"backend": cfg.Backend.String(),
		}).Fatal("Could not create storage backend")
		return
	}

	var reqLogger *logrus.Logger
	if cfg.LogRequests {
		stdlog := logrus.StandardLogger()
		reqLogger = &logrus.Logger{
			Out:       stdlog.Out,
			Formatter: stdlog.Formatter,
			Hooks:     stdlog.Hooks,
			Level:     logrus.DebugLevel,
		}
	}

	logrus.WithFields(logrus.Fields{
		"http":    cfg.HTTP,
		"backend": cfg.Backend.Implementation,
	}).Info("Serving list API")
	err = http.ListenAndServe(cfg.HTTP, newHandler(store, reqLogger))
	logrus.WithError(err).Fatal("HTTP server stopped")
}

func loadConfigYaml(filename string, cfg *config) error {
	bytes, err := ioutil.ReadFile(filename)
	if err == nil {
		err = yaml.Unmarshal(bytes, cfg)
	}
	return err
}
