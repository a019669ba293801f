package main

import (
	"fmt"

	// Packages
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
	uitable "github.com/mutablelogic/go-openwebui/pkg/ui/table"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type NotesCmd struct {
	List ListNotesCmd `cmd:"" default:"withargs" help:"List notes"`
	Show ShowNoteCmd  `cmd:"" help:"Show a note"`
}

type ListNotesCmd struct{}

type ShowNoteCmd struct {
	ID string `arg:"" help:"Note id"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ListNotesCmd) Run(globals *Globals) error {
	c, err := globals.Client()
	if err != nil {
		return err
	}

	notes, err := c.ListNotes(globals.ctx)
	if err != nil {
		return err
	}
	fmt.Println(uitable.Render(schema.NoteTable(notes)))
	return nil
}

func (cmd *ShowNoteCmd) Run(globals *Globals) error {
	c, err := globals.Client()
	if err != nil {
		return err
	}

	note, err := c.GetNote(globals.ctx, cmd.ID)
	if err != nil {
		return err
	}
	if markdown := noteMarkdown(note); markdown != "" {
		return renderMarkdown("# " + note.Title + "\n\n" + markdown)
	}
	fmt.Println(note)
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// noteMarkdown extracts the markdown content of a note. The content is
// either a plain string or a dictionary of formats keyed by "md".
func noteMarkdown(note *schema.Note) string {
	content, exists := note.Data["content"]
	if !exists {
		return ""
	}
	switch content := content.(type) {
	case string:
		return content
	case map[string]any:
		if md, ok := content["md"].(string); ok {
			return md
		}
	}
	return ""
}
