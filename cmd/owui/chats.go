package main

import (
	"fmt"
	"os"
	"strings"

	// Packages
	glamour "github.com/charmbracelet/glamour"
	openwebui "github.com/mutablelogic/go-openwebui"
	opt "github.com/mutablelogic/go-openwebui/pkg/opt"
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
	uitable "github.com/mutablelogic/go-openwebui/pkg/ui/table"
	term "golang.org/x/term"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ChatsCmd struct {
	List   ListChatsCmd   `cmd:"" default:"withargs" help:"List chats"`
	Show   ShowChatCmd    `cmd:"" help:"Show a chat transcript"`
	Search SearchChatsCmd `cmd:"" help:"Search chats by title and content"`
}

type ListChatsCmd struct {
	Folder   string `name:"folder" help:"Only list chats in this folder"`
	Pinned   bool   `name:"pinned" help:"Only list pinned chats"`
	Archived bool   `name:"archived" help:"Only list archived chats"`
	Page     uint   `name:"page" help:"Page number, starting at 1"`
}

type ShowChatCmd struct {
	ID string `arg:"" help:"Chat id"`
}

type SearchChatsCmd struct {
	Text string `arg:"" help:"Search text"`
	Page uint   `name:"page" help:"Page number, starting at 1"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ListChatsCmd) Run(globals *Globals) error {
	c, err := globals.Client()
	if err != nil {
		return err
	}

	opts := []opt.Opt{}
	if cmd.Folder != "" {
		opts = append(opts, openwebui.WithFolder(cmd.Folder))
	}
	if cmd.Page > 0 {
		opts = append(opts, openwebui.WithPage(cmd.Page))
	}

	var chats []schema.ChatTitleID
	switch {
	case cmd.Pinned:
		chats, err = c.ListPinnedChats(globals.ctx)
	case cmd.Archived:
		chats, err = c.ListArchivedChats(globals.ctx, opts...)
	default:
		chats, err = c.ListChats(globals.ctx, opts...)
	}
	if err != nil {
		return err
	}
	fmt.Println(uitable.Render(schema.ChatTable(chats)))
	return nil
}

func (cmd *ShowChatCmd) Run(globals *Globals) error {
	c, err := globals.Client()
	if err != nil {
		return err
	}
	chat, err := c.GetChat(globals.ctx, cmd.ID)
	if err != nil {
		return err
	}
	return renderMarkdown(transcript(chat))
}

func (cmd *SearchChatsCmd) Run(globals *Globals) error {
	c, err := globals.Client()
	if err != nil {
		return err
	}

	opts := []opt.Opt{}
	if cmd.Page > 0 {
		opts = append(opts, openwebui.WithPage(cmd.Page))
	}

	chats, err := c.SearchChats(globals.ctx, cmd.Text, opts...)
	if err != nil {
		return err
	}
	fmt.Println(uitable.Render(schema.ChatTable(chats)))
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// transcript renders a chat as a markdown document, one section per
// message in conversation order.
func transcript(chat *schema.Chat) string {
	var b strings.Builder
	if chat.Title != "" {
		fmt.Fprintf(&b, "# %s\n", chat.Title)
	}
	messages, _ := chat.Chat["messages"].([]any)
	for _, m := range messages {
		message, ok := m.(map[string]any)
		if !ok {
			continue
		}
		role, _ := message["role"].(string)
		content, _ := message["content"].(string)
		if role == "" || content == "" {
			continue
		}
		heading := strings.ToUpper(role[:1]) + role[1:]
		if model, ok := message["modelName"].(string); ok && model != "" {
			heading = heading + " (" + model + ")"
		}
		fmt.Fprintf(&b, "\n**%s**\n\n%s\n", heading, content)
	}
	return b.String()
}

// renderMarkdown renders markdown for the terminal, or prints it
// unstyled when stdout is not a terminal.
func renderMarkdown(markdown string) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		fmt.Println(markdown)
		return nil
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return err
	}
	out, err := r.Render(markdown)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
