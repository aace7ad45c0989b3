// Copyright 2016-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/diffeo/go-lists/lists"
	"github.com/diffeo/go-lists/restclient"
	"github.com/urfave/cli"
)

var listFlag = cli.StringFlag{
	Name:  "list",
	Usage: "ID of the list",
}

// fail converts an error into a command exit error, preferring the
// server's own description of what went wrong.
func fail(err error) error {
	if rejected, ok := err.(restclient.ErrServerRejected); ok {
		if serverErr := rejected.ServerError(); serverErr != nil {
			err = serverErr
		}
	}
	return cli.NewExitError(err.Error(), 1)
}

// requireList returns the --list flag, or an error if it is missing.
func requireList(c *cli.Context) (string, error) {
	listID := c.String("list")
	if listID == "" {
		return "", cli.NewExitError("--list is required", 1)
	}
	return listID, nil
}

// findItem looks up a single item through the list's item index.
func (s *state) findItem(ctx context.Context, listID, id string) (lists.Item, error) {
	items, err := s.Adapter.Items(ctx, listID)
	if err != nil {
		return lists.Item{}, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}
	return lists.Item{}, lists.ErrNoSuchItem{ListID: listID, ID: id}
}

func printItem(c *cli.Context, item lists.Item) {
	mark := " "
	if item.Done {
		mark = "x"
	}
	fmt.Fprintf(c.App.Writer, "%s\t[%s] %s\n", item.ID, mark, item.Content)
}

func (s *state) commands() []cli.Command {
	return []cli.Command{
		{
			Name:  "lists",
			Usage: "show every list",
			Action: func(c *cli.Context) error {
				all, err := s.Adapter.Lists(context.Background())
				if err != nil {
					return fail(err)
				}
				for _, list := range all {
					fmt.Fprintf(c.App.Writer, "%s\t%s\n", list.ID, list.Title)
				}
				return nil
			},
		},
		{
			Name:      "create-list",
			Usage:     "create a new list",
			ArgsUsage: "TITLE",
			Action: func(c *cli.Context) error {
				list, err := s.Adapter.CreateList(context.Background(), c.Args().First())
				if err != nil {
					return fail(err)
				}
				fmt.Fprintln(c.App.Writer, list.ID)
				return nil
			},
		},
		{
			Name:  "items",
			Usage: "show the items in a list",
			Flags: []cli.Flag{listFlag},
			Action: func(c *cli.Context) error {
				listID, err := requireList(c)
				if err != nil {
					return err
				}
				items, err := s.Adapter.Items(context.Background(), listID)
				if err != nil {
					return fail(err)
				}
				for _, item := range items {
					printItem(c, item)
				}
				return nil
			},
		},
		{
			Name:  "create-item",
			Usage: "add an item to a list",
			Flags: []cli.Flag{
				listFlag,
				cli.StringFlag{
					Name:  "content",
					Usage: "text of the item",
				},
				cli.BoolFlag{
					Name:  "done",
					Usage: "mark the item as already done",
				},
			},
			Action: func(c *cli.Context) error {
				item := &lists.Item{
					Content: c.String("content"),
					Done:    c.Bool("done"),
					ListID:  c.String("list"),
				}
				resp, err := s.Adapter.CreateItem(context.Background(), item)
				if err != nil {
					return fail(err)
				}
				created, err := restclient.DecodeItem(resp)
				if err != nil {
					return fail(err)
				}
				fmt.Fprintln(c.App.Writer, created.ID)
				return nil
			},
		},
		{
			Name:      "done",
			Usage:     "mark an item as done",
			ArgsUsage: "ITEM",
			Flags:     []cli.Flag{listFlag},
			Action: func(c *cli.Context) error {
				listID, err := requireList(c)
				if err != nil {
					return err
				}
				ctx := context.Background()
				item, err := s.findItem(ctx, listID, c.Args().First())
				if err != nil {
					return fail(err)
				}
				item.Done = true
				item, err = s.Adapter.UpdateItem(ctx, &item)
				if err != nil {
					return fail(err)
				}
				printItem(c, item)
				return nil
			},
		},
		{
			Name:      "delete-item",
			Usage:     "delete an item",
			ArgsUsage: "ITEM",
			Flags:     []cli.Flag{listFlag},
			Action: func(c *cli.Context) error {
				listID, err := requireList(c)
				if err != nil {
					return err
				}
				err = s.Adapter.DestroyItem(context.Background(), listID, c.Args().First())
				if err != nil {
					return fail(err)
				}
				return nil
			},
		},
		{
			Name:  "routes",
			Usage: "show the client route table",
			Action: func(c *cli.Context) error {
				for _, route := range s.Routes.Routes() {
					fmt.Fprintf(c.App.Writer, "%s\t%s\n", route.Name, route.Path)
				}
				return nil
			},
		},
		{
			Name:      "resolve",
			Usage:     "find the route state for a path",
			ArgsUsage: "PATH",
			Action: func(c *cli.Context) error {
				state, err := s.Routes.Resolve(c.Args().First())
				if err != nil {
					return fail(err)
				}
				fmt.Fprintln(c.App.Writer, state.Name)
				keys := make([]string, 0, len(state.Params))
				for k := range state.Params {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					fmt.Fprintf(c.App.Writer, "%s=%s\n", k, state.Params[k])
				}
				return nil
			},
		},
	}
}
