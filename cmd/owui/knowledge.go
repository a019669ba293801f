package main

import (
	"fmt"

	// Packages
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
	uitable "github.com/mutablelogic/go-openwebui/pkg/ui/table"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type KnowledgeCmd struct {
	List ListKnowledgeCmd `cmd:"" default:"withargs" help:"List knowledge bases"`
}

type ListKnowledgeCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ListKnowledgeCmd) Run(globals *Globals) error {
	c, err := globals.Client()
	if err != nil {
		return err
	}

	knowledge, err := c.ListAllKnowledge(globals.ctx)
	if err != nil {
		return err
	}
	fmt.Println(uitable.Render(schema.KnowledgeTable(knowledge)))
	return nil
}
