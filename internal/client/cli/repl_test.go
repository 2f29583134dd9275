package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/rentaltracker/internal/client/app"
	"github.com/dmitrijs2005/rentaltracker/internal/client/page"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
	navErr   error
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) Navigate(_ context.Context, section string) error {
	f.calls = append(f.calls, "nav:"+section)
	return f.navErr
}

func (f *fakeExec) Submit(_ context.Context, formID string) error {
	f.calls = append(f.calls, "submit:"+formID)
	if formID == page.LoginForm {
		f.loggedIn = true
	}
	return nil
}

func (f *fakeExec) Logout(_ context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_Commands(t *testing.T) {
	out := captureOutput(t)

	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"",
		"properties",
		"add-property",
		"criteria",
		"nav register",
		"nav",
		"logout",
		"register",
		"foobar",
		"exit",
		"login",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, rdr(input))

	assert.Equal(t, []string{
		"submit:login-form",
		"nav:properties",
		"submit:property-form",
		"nav:criteria",
		"nav:register",
		"logout",
		"submit:register-form",
	}, exec.calls)

	assert.Contains(t, *out, "Available commands: login, register, nav <section>, exit")
	assert.Contains(t, *out, "Available commands: properties, add-property, criteria, nav <section>, logout, exit")
	assert.Contains(t, *out, "Usage: nav <section>")
	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Equal(t, "Bye!", (*out)[len(*out)-1])
}

func TestRunREPL_EndOfInput(t *testing.T) {
	captureOutput(t)
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("properties"))
	assert.Equal(t, []string{"nav:properties"}, exec.calls)
}

func TestRunREPL_ReportsUnavailableCommands(t *testing.T) {
	out := captureOutput(t)
	exec := &fakeExec{navErr: fmt.Errorf("%w: nav-criteria", app.ErrHiddenTarget)}

	runREPL(context.Background(), exec, func() string { return "" }, rdr("criteria\nexit\n"))
	assert.Contains(t, *out, "Not available now: criteria")
}
