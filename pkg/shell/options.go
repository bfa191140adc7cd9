package shell

import (
	"io"
	"log/slog"
	"os"

	"github.com/YarynaFialko/notebook/pkg/core"
)

// options holds the internal configuration for the Shell.
type options struct {
	notebook *core.Notebook
	input    io.Reader
	output   io.Writer
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Shell.
type Option func(*options)

// defaultOptions returns the default configuration: a fresh notebook on
// stdin/stdout.
func defaultOptions() *options {
	return &options{
		input:  os.Stdin,
		output: os.Stdout,
	}
}

// WithNotebook binds the shell to an existing notebook.
func WithNotebook(b *core.Notebook) Option {
	return func(o *options) {
		o.notebook = b
	}
}

// WithInput sets where choices and prompt responses are read from.
func WithInput(r io.Reader) Option {
	return func(o *options) {
		o.input = r
	}
}

// WithOutput sets where the menu and notes are written.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// WithLogger sets the logger for the shell.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
