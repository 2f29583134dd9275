package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/rentaltracker/internal/client/app"
	"github.com/dmitrijs2005/rentaltracker/internal/client/page"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// getSimpleText and getPassword point to the interactive input helpers and
// can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// execIface is the command surface the REPL needs. Shell satisfies it.
type execIface interface {
	isLoggedIn() bool
	Navigate(ctx context.Context, section string) error
	Submit(ctx context.Context, formID string) error
	Logout(ctx context.Context) error
}

var formSections = map[string]string{
	page.LoginForm:    page.SectionLogin,
	page.RegisterForm: page.SectionRegister,
	page.PropertyForm: page.SectionAddProperty,
}

// runREPL reads one command per line and dispatches it to a. It returns on
// end of input or when the user types "exit" or "quit".
//
//	Not logged in:
//	  - login, register
//	Logged in:
//	  - properties, add-property, criteria, logout
//	Always:
//	  - nav <section>, help, exit | quit
//
// Command errors are reported and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("rental %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: properties, add-property, criteria, nav <section>, logout, exit")
			} else {
				printlnFn("Available commands: login, register, nav <section>, exit")
			}

		case "login":
			err = a.Submit(ctx, page.LoginForm)

		case "register":
			err = a.Submit(ctx, page.RegisterForm)

		case "add-property":
			err = a.Submit(ctx, page.PropertyForm)

		case "properties", "criteria":
			err = a.Navigate(ctx, cmd)

		case "nav":
			if len(args) == 0 {
				printlnFn("Usage: nav <section>")
				continue
			}
			err = a.Navigate(ctx, args[0])

		case "logout":
			err = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			reportError(cmd, err)
		}
	}
}

func reportError(cmd string, err error) {
	switch {
	case errors.Is(err, app.ErrHiddenTarget):
		printlnFn("Not available now:", cmd)
	case errors.Is(err, app.ErrUnknownTarget):
		printlnFn("Unknown section")
	}
}

func (s *Shell) isLoggedIn() bool {
	return s.app.Visible(page.LogoutBtn)
}

func (s *Shell) status() string {
	st := s.app.Section()
	if u := s.app.User(); u != nil && u.FirstName != "" {
		st += " (" + u.FirstName + ")"
	}
	return st
}

func (s *Shell) print() {
	if text := s.app.Render(); text != "" {
		printlnFn(text)
	}
}

// Navigate clicks the nav button of section.
func (s *Shell) Navigate(ctx context.Context, section string) error {
	if err := s.app.Dispatch(ctx, app.Event{Type: app.Click, Target: page.NavID(section)}); err != nil {
		return err
	}
	s.print()
	return nil
}

// Submit opens the section holding formID, prompts for each field and submits
// the form. A rejected submission is shown by the page itself.
func (s *Shell) Submit(ctx context.Context, formID string) error {
	if err := s.app.Dispatch(ctx, app.Event{Type: app.Click, Target: page.NavID(formSections[formID])}); err != nil {
		return err
	}

	for _, f := range page.Forms[formID] {
		var (
			v   string
			err error
		)
		if f.Secret {
			v, err = getPassword(s.reader, f.Label, s.out)
		} else {
			v, err = getSimpleText(s.reader, f.Label, s.out)
		}
		if err != nil {
			return err
		}
		s.app.SetValue(f.ID, v)
	}

	if err := s.app.Dispatch(ctx, app.Event{Type: app.Submit, Target: formID}); err != nil {
		s.logger.Debug(ctx, "form submission failed", "form", formID, "error", err)
	}
	s.print()
	return nil
}

// Logout clicks the logout button.
func (s *Shell) Logout(ctx context.Context) error {
	if err := s.app.Dispatch(ctx, app.Event{Type: app.Click, Target: page.LogoutBtn}); err != nil {
		return err
	}
	s.print()
	return nil
}
