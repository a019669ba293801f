package main

import (
	"fmt"

	// Packages
	version "github.com/mutablelogic/go-openwebui/pkg/version"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type VersionCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *VersionCmd) Run(globals *Globals) error {
	if globals.Debug {
		fmt.Println(string(version.JSON(execName())))
	} else {
		fmt.Printf("%s %s\n", execName(), version.Version())
	}

	// Report the server version when a server is configured
	if globals.client == nil {
		return nil
	}
	server, err := globals.client.Version(globals.ctx)
	if err != nil {
		return err
	}
	if server.DeploymentID != "" {
		fmt.Printf("server %s (deployment %s)\n", server.Version, server.DeploymentID)
	} else {
		fmt.Printf("server %s\n", server.Version)
	}
	return nil
}
