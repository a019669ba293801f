package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-openwebui/pkg/client"
	store "github.com/mutablelogic/go-openwebui/pkg/store"
	term "golang.org/x/term"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type LoginCmd struct {
	Email    string `arg:"" help:"Account email address"`
	Password string `name:"password" help:"Account password (prompted when not given)"`
	NoStore  bool   `name:"no-store" help:"Do not persist the session token"`
}

type LogoutCmd struct{}

type WhoamiCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *LoginCmd) Run(globals *Globals) error {
	c, err := globals.Client()
	if err != nil {
		return err
	}

	// Prompt for the password when not given
	password := cmd.Password
	if password == "" {
		if password, err = readSecret("Password: "); err != nil {
			return err
		}
	}

	// Sign in
	user, err := c.SignIn(globals.ctx, cmd.Email, password)
	if err != nil {
		return err
	}
	fmt.Printf("Signed in as %s (%s)\n", user.Name, user.Role)

	// Persist the session token
	if cmd.NoStore || user.Token == "" {
		return nil
	}
	passphrase := globals.Passphrase
	if passphrase == "" {
		if passphrase, err = readSecret("Passphrase for the token store (empty to skip): "); err != nil {
			return err
		}
	}
	if passphrase == "" {
		fmt.Fprintln(os.Stderr, "Token not stored")
		return nil
	}
	tokens, err := store.NewFileTokenStore(passphrase, tokenDir())
	if err != nil {
		return err
	}
	return tokens.SetToken(globals.ctx, globals.url, client.Token{Scheme: client.Bearer, Value: user.Token})
}

func (cmd *LogoutCmd) Run(globals *Globals) error {
	c, err := globals.Client()
	if err != nil {
		return err
	}

	// Sign out. The client credential is cleared even when the request
	// fails.
	_, signoutErr := c.SignOut(globals.ctx)

	// Discard the stored token
	if globals.Passphrase != "" {
		if tokens, err := store.NewFileTokenStore(globals.Passphrase, tokenDir()); err == nil {
			if err := tokens.DeleteToken(globals.ctx, globals.url); err != nil && !errors.Is(err, client.ErrNotFound) {
				return err
			}
		}
	}
	if signoutErr != nil {
		return signoutErr
	}
	fmt.Println("Signed out")
	return nil
}

func (cmd *WhoamiCmd) Run(globals *Globals) error {
	c, err := globals.Client()
	if err != nil {
		return err
	}
	user, err := c.GetSessionUser(globals.ctx)
	if err != nil {
		return err
	}
	fmt.Println(user)
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// readSecret prompts on stderr and reads a line without echo.
func readSecret(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(secret)), nil
}
