package main

import (
	"fmt"
	"os"
	"path/filepath"

	// Packages
	openwebui "github.com/mutablelogic/go-openwebui"
	opt "github.com/mutablelogic/go-openwebui/pkg/opt"
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
	uitable "github.com/mutablelogic/go-openwebui/pkg/ui/table"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type FilesCmd struct {
	List     ListFilesCmd    `cmd:"" default:"withargs" help:"List files"`
	Upload   UploadFileCmd   `cmd:"" help:"Upload a file"`
	Download DownloadFileCmd `cmd:"" help:"Download file content"`
}

type ListFilesCmd struct {
	Pattern string `name:"pattern" help:"Filter by filename pattern (e.g. \"*.pdf\")"`
}

type UploadFileCmd struct {
	Path       string `arg:"" type:"existingfile" help:"File to upload"`
	Knowledge  string `name:"knowledge" help:"Add the file to this knowledge base"`
	NoProcess  bool   `name:"no-process" help:"Skip content extraction"`
	Foreground bool   `name:"wait" help:"Wait for content extraction to complete"`
}

type DownloadFileCmd struct {
	ID     string `arg:"" help:"File id"`
	Output string `name:"output" short:"o" help:"Write to this path instead of stdout"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ListFilesCmd) Run(globals *Globals) error {
	c, err := globals.Client()
	if err != nil {
		return err
	}

	var files []schema.File
	if cmd.Pattern != "" {
		files, err = c.SearchFiles(globals.ctx, cmd.Pattern)
	} else {
		files, err = c.ListFiles(globals.ctx)
	}
	if err != nil {
		return err
	}
	fmt.Println(uitable.Render(schema.FileTable(files)))
	return nil
}

func (cmd *UploadFileCmd) Run(globals *Globals) error {
	c, err := globals.Client()
	if err != nil {
		return err
	}

	r, err := os.Open(cmd.Path)
	if err != nil {
		return err
	}
	defer r.Close()

	opts := []opt.Opt{}
	if cmd.NoProcess {
		opts = append(opts, openwebui.WithProcess(false))
	}
	if cmd.Foreground {
		opts = append(opts, openwebui.WithProcessInBackground(false))
	}

	// Upload, optionally indexing into a knowledge base
	if cmd.Knowledge != "" {
		knowledge, err := c.UploadToKnowledge(globals.ctx, cmd.Knowledge, filepath.Base(cmd.Path), r, opts...)
		if err != nil {
			return err
		}
		fmt.Printf("Uploaded to knowledge base %q (%d files)\n", knowledge.Name, len(knowledge.Files))
		return nil
	}
	file, err := c.UploadFile(globals.ctx, filepath.Base(cmd.Path), r, opts...)
	if err != nil {
		return err
	}
	fmt.Println(file)
	return nil
}

func (cmd *DownloadFileCmd) Run(globals *Globals) error {
	c, err := globals.Client()
	if err != nil {
		return err
	}

	data, err := c.GetFileContent(globals.ctx, cmd.ID)
	if err != nil {
		return err
	}
	if cmd.Output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(cmd.Output, data, 0o644)
}
