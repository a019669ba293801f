package main

import (
	"fmt"
	"strings"

	// Packages
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
	uitable "github.com/mutablelogic/go-openwebui/pkg/ui/table"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ModelsCmd struct {
	List ListModelsCmd `cmd:"" default:"withargs" help:"List models"`
}

type ListModelsCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ListModelsCmd) Run(globals *Globals) error {
	c, err := globals.Client()
	if err != nil {
		return err
	}

	models, err := c.Models(globals.ctx)
	if err != nil {
		return err
	}

	// Mark the server's default model when one is configured
	defaultModel := ""
	if config, err := c.Config(globals.ctx); err == nil && config.DefaultModels != nil {
		defaultModel, _, _ = strings.Cut(*config.DefaultModels, ",")
	}

	fmt.Println(uitable.Render(schema.ModelTable{
		Models:       models,
		DefaultModel: defaultModel,
	}))
	return nil
}
