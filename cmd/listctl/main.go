// Copyright 2016-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Command listctl is a command-line client for the list REST API.
//
//     listctl --host http://localhost:5980 create-list groceries
//     listctl create-item --list 1 --content "Buy milk"
//     listctl items --list 1
//     listctl done --list 1 2
//
// The host may also come from $LISTS_HOST or a YAML file named with
// --config, which can also replace the client route table:
//
//     host: http://localhost:5980
//     routes:
//       - name: lists
//         path: /lists
package main

import (
	"io/ioutil"
	"os"

	"github.com/diffeo/go-lists/restclient"
	"github.com/diffeo/go-lists/routes"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v2"
)

// config holds settings read from a YAML file.
type config struct {
	Host   string         `yaml:"host"`
	Routes []routes.Route `yaml:"routes"`
}

// state is shared by every command once global flags are parsed.
type state struct {
	Adapter *restclient.Adapter
	Routes  *routes.Table
	Log     *logrus.Logger
}

func loadConfigYaml(filename string) (config, error) {
	var result config
	bytes, err := ioutil.ReadFile(filename)
	if err == nil {
		err = yaml.Unmarshal(bytes, &result)
	}
	return result, err
}

// setup builds the shared state from the global flags.
func (s *state) setup(c *cli.Context) error {
	var cfg config
	if file := c.GlobalString("config"); file != "" {
		var err error
		cfg, err = loadConfigYaml(file)
		if err != nil {
			return cli.NewExitError("could not load "+file+": "+err.Error(), 1)
		}
	}

	s.Log = logrus.New()
	s.Log.Out = c.App.ErrWriter
	if c.GlobalBool("verbose") {
		s.Log.Level = logrus.DebugLevel
	}

	routeList := routes.Default
	if len(cfg.Routes) > 0 {
		routeList = cfg.Routes
	}
	table, err := routes.New(routeList)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	s.Routes = table

	host := cfg.Host
	if c.GlobalIsSet("host") || host == "" {
		host = c.GlobalString("host")
	}
	adapter, err := restclient.New(host)
	if err != nil {
		return cli.NewExitError("invalid --host "+host+": "+err.Error(), 1)
	}
	adapter.Transport = loggingTransport{Next: adapter.Transport, Log: s.Log}
	s.Adapter = adapter
	return nil
}

func newApp() *cli.App {
	s := &state{}
	app := cli.NewApp()
	app.Name = "listctl"
	app.Usage = "manage lists and items on a list server"
	app.HideVersion = true
	app.ErrWriter = os.Stderr
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "host",
			Value:  "http://localhost:5980",
			Usage:  "base URL of the list API",
			EnvVar: "LISTS_HOST",
		},
		cli.StringFlag{
			Name:  "config",
			Usage: "YAML configuration file",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "log every request",
		},
	}
	app.Before = s.setup
	app.Commands = s.commands()
	return app
}

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
