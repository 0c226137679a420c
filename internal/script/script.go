// Package script runs image commands read as whitespace-separated tokens,
// either from a file or interactively.
//
// Each command is an operation name followed by its positional arguments,
// for example:
//
//	load images/koala.ppm koala
//	brighten 10 koala koala-bright
//	save images/koala-bright.png koala-bright
//	quit
//
// A token starting with '#' comments out the rest of its line. Errors are
// reported on the output and never end the session.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/imgproc/internal/command"
	"github.com/ironsheep/imgproc/internal/imaging"
)

// Session messages.
const (
	MsgInvalidCommand = "Invalid command"
	MsgInvalidInputs  = "Inputs are invalid"
	MsgEnded          = "Program ended"
)

// Runner executes commands against a store and reports results on out.
type Runner struct {
	store  *imaging.Store
	out    io.Writer
	logger *logrus.Logger
}

// NewRunner returns a Runner. A nil logger discards log output.
func NewRunner(store *imaging.Store, out io.Writer, logger *logrus.Logger) *Runner {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &Runner{store: store, out: out, logger: logger}
}

// Run reads commands from in until it is exhausted or "quit" is read.
//
// The only error returned is a failure to write to the output.
func (r *Runner) Run(in io.Reader) error {
	tokens := newTokenizer(in)

	for {
		name, ok := tokens.next()
		if !ok {
			break
		}
		if name == "quit" {
			break
		}
		if err := r.execute(name, tokens); err != nil {
			return err
		}
	}
	if err := tokens.err(); err != nil {
		r.logger.WithError(err).Warn("input stream failed")
		if err := r.message(MsgInvalidInputs); err != nil {
			return err
		}
	}
	return r.message(MsgEnded)
}

func (r *Runner) execute(name string, tokens *tokenizer) error {
	arity, ok := command.Arity(name)
	if !ok {
		r.logger.WithField("command", name).Debug("unknown command")
		return r.message(MsgInvalidCommand)
	}

	args := make([]string, 0, arity)
	for len(args) < arity {
		tok, ok := tokens.next()
		if !ok {
			r.logger.WithField("command", name).Debug("input ended mid-command")
			return r.message(MsgInvalidInputs)
		}
		args = append(args, tok)
	}

	cmd, err := command.Build(name, args)
	if err != nil {
		return r.report(name, err)
	}
	img, err := cmd.Apply(r.store)
	if err != nil {
		return r.report(name, err)
	}

	r.logger.WithFields(logrus.Fields{
		"command": name,
		"dest":    cmd.Destination(),
		"width":   img.Width(),
		"height":  img.Height(),
	}).Debug("command applied")
	return r.message(fmt.Sprintf("Image of size (%d, %d) stored as %s", img.Width(), img.Height(), cmd.Destination()))
}

func (r *Runner) report(name string, err error) error {
	r.logger.WithFields(logrus.Fields{
		"command": name,
	}).WithError(err).Info("command failed")
	return r.message(Describe(err))
}

func (r *Runner) message(msg string) error {
	if _, err := fmt.Fprintln(r.out, msg); err != nil {
		return fmt.Errorf("output could not be transmitted: %w", err)
	}
	return nil
}

// Describe turns a command error into a one-line user message.
func Describe(err error) string {
	switch {
	case errors.Is(err, command.ErrUnknownCommand):
		return MsgInvalidCommand
	case errors.Is(err, command.ErrMissingArgument):
		return MsgInvalidInputs
	case errors.Is(err, imaging.ErrUnsupportedImageType):
		return "Image type must support at least 3 components"
	case errors.Is(err, imaging.ErrMissingExtension):
		return "File was not given"
	case errors.Is(err, imaging.ErrUnsupportedFileType):
		return "File type not supported"
	}
	msg := err.Error()
	if msg == "" {
		return MsgInvalidInputs
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

// tokenizer yields whitespace-separated tokens, dropping '#' comments.
type tokenizer struct {
	lines   *bufio.Scanner
	pending []string
}

func newTokenizer(in io.Reader) *tokenizer {
	return &tokenizer{lines: bufio.NewScanner(in)}
}

func (t *tokenizer) next() (string, bool) {
	for len(t.pending) == 0 {
		if !t.lines.Scan() {
			return "", false
		}
		for _, f := range strings.Fields(t.lines.Text()) {
			if strings.HasPrefix(f, "#") {
				break
			}
			t.pending = append(t.pending, f)
		}
	}
	tok := t.pending[0]
	t.pending = t.pending[1:]
	return tok, true
}

func (t *tokenizer) err() error { return t.lines.Err() }
