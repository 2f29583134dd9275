package cli

import (
	"bufio"
	"context"
	"io"

	"github.com/dmitrijs2005/rentaltracker/internal/client/app"
	"github.com/dmitrijs2005/rentaltracker/internal/client/models"
	"github.com/dmitrijs2005/rentaltracker/internal/logging"
)

// controller is the part of app.App the shell drives.
type controller interface {
	Init(ctx context.Context) error
	Dispatch(ctx context.Context, e app.Event) error
	SetValue(id, value string)
	Section() string
	User() *models.User
	Visible(id string) bool
	Render() string
}

type Shell struct {
	app    controller
	reader *bufio.Reader
	out    io.Writer
	logger logging.Logger
}

func NewShell(c controller, in io.Reader, out io.Writer, logger logging.Logger) *Shell {
	return &Shell{app: c, reader: bufio.NewReader(in), out: out, logger: logger}
}

// Run initializes the controller and serves commands until exit or end of
// input.
func (s *Shell) Run(ctx context.Context) error {
	if err := s.app.Init(ctx); err != nil {
		return err
	}
	printlnFn("Rental tracker (type 'help' for commands)")
	s.print()
	runREPL(ctx, s, s.status, s.reader)
	return nil
}
