package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	openwebui "github.com/mutablelogic/go-openwebui"
	client "github.com/mutablelogic/go-openwebui/pkg/client"
	store "github.com/mutablelogic/go-openwebui/pkg/store"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Server
	URL        string `name:"url" env:"OWUI_URL" help:"Server URL (e.g. http://localhost:3000)"`
	APIKey     string `name:"api-key" env:"OWUI_API_KEY" help:"API key or session token"`
	Profile    string `name:"profile" env:"OWUI_PROFILE" help:"Named server profile from the configuration file"`
	Passphrase string `name:"passphrase" env:"OWUI_PASSPHRASE" help:"Passphrase for the stored session token"`

	// Context
	ctx    context.Context
	url    string
	client *openwebui.Client
	opts   []client.ClientOpt
}

type CLI struct {
	Globals

	// Authentication
	Login   LoginCmd   `cmd:"" help:"Sign in and store the session token"`
	Logout  LogoutCmd  `cmd:"" help:"Sign out and discard the stored session token"`
	Whoami  WhoamiCmd  `cmd:"" help:"Show the signed-in user"`
	Version VersionCmd `cmd:"" help:"Show client and server versions"`

	// Resources
	Users     UsersCmd     `cmd:"" help:"Manage users"`
	Chats     ChatsCmd     `cmd:"" help:"Manage chats"`
	Models    ModelsCmd    `cmd:"" help:"List models"`
	Files     FilesCmd     `cmd:"" help:"Manage files"`
	Knowledge KnowledgeCmd `cmd:"" help:"Manage knowledge bases"`
	Notes     NotesCmd     `cmd:"" help:"Manage notes"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Open WebUI command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Resolve the server URL from the flag, or else the named profile
	url, err := resolveURL(cli.URL, cli.Profile)
	cmd.FatalIfErrorf(err)
	cli.Globals.url = url

	// Client options
	opts := []client.ClientOpt{}
	if cli.Debug || cli.Verbose {
		opts = append(opts, client.OptTrace(os.Stderr, cli.Verbose))
	}
	if token := cli.Globals.token(); token != nil {
		opts = append(opts, client.OptReqToken(*token))
	}
	cli.Globals.opts = opts

	// Create the client
	if url != "" {
		c, err := openwebui.New(apiEndpoint(url), opts...)
		cmd.FatalIfErrorf(err)
		cli.Globals.client = c
	}

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Client returns the API client, or an error when no server URL has
// been configured.
func (g *Globals) Client() (*openwebui.Client, error) {
	if g.client == nil {
		return nil, fmt.Errorf("no server: set --url, OWUI_URL or a profile in %q", configPath())
	}
	return g.client, nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// token returns the token for the resolved server, from the --api-key
// flag or else the encrypted token store. Returns nil when the user is
// not signed in.
func (g *Globals) token() *client.Token {
	if g.APIKey != "" {
		return &client.Token{Scheme: client.Bearer, Value: g.APIKey}
	}
	if g.Passphrase == "" || g.url == "" {
		return nil
	}
	tokens, err := store.NewFileTokenStore(g.Passphrase, tokenDir())
	if err != nil {
		return nil
	}
	token, err := tokens.GetToken(g.ctx, g.url)
	if err != nil {
		return nil
	}
	return token
}

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
