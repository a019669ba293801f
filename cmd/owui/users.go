package main

import (
	"fmt"

	// Packages
	openwebui "github.com/mutablelogic/go-openwebui"
	opt "github.com/mutablelogic/go-openwebui/pkg/opt"
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
	uitable "github.com/mutablelogic/go-openwebui/pkg/ui/table"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type UsersCmd struct {
	List ListUsersCmd `cmd:"" default:"withargs" help:"List users"`
}

type ListUsersCmd struct {
	Query string `name:"query" help:"Filter by name or email"`
	Page  uint   `name:"page" help:"Page number, starting at 1"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ListUsersCmd) Run(globals *Globals) error {
	c, err := globals.Client()
	if err != nil {
		return err
	}

	opts := []opt.Opt{}
	if cmd.Query != "" {
		opts = append(opts, openwebui.WithQuery(cmd.Query))
	}
	if cmd.Page > 0 {
		opts = append(opts, openwebui.WithPage(cmd.Page))
	}

	users, err := c.ListUsers(globals.ctx, opts...)
	if err != nil {
		return err
	}
	fmt.Println(uitable.Render(schema.UserTable(users.Users)))
	fmt.Printf("%d of %d users\n", len(users.Users), users.Total)
	return nil
}
