package notebook

import (
	"log/slog"

	"github.com/YarynaFialko/notebook/pkg/core"
	"github.com/YarynaFialko/notebook/pkg/shell"
)

// Version exposes the version of the library.
const Version = "0.1.0"

// --- Types ---

// Note is a public alias for the domain note.
type Note = core.Note

// Notebook is a public alias for the domain notebook.
type Notebook = core.Notebook

// Sequence is a public alias for the id sequence.
type Sequence = core.Sequence

// ErrNoteNotFound reports a lookup for an id that no note carries.
var ErrNoteNotFound = core.ErrNoteNotFound

// --- Configuration ---

// Option defines a functional option for configuring a Notebook.
type Option = core.NotebookOption

// ShellOption defines a functional option for configuring the Shell.
type ShellOption = shell.Option

// WithSequence injects a private id sequence (useful for testing).
func WithSequence(seq *Sequence) Option {
	return core.WithSequence(seq)
}

// WithLogger sets the logger for the notebook.
func WithLogger(logger *slog.Logger) Option {
	return core.WithLogger(logger)
}

// --- Factories ---

// New creates a new, empty Notebook.
func New(opts ...Option) *Notebook {
	return core.NewNotebook(opts...)
}

// NewSequence creates a fresh id sequence.
func NewSequence() *Sequence {
	return core.NewSequence()
}

// NewShell creates the interactive menu shell. Without options it drives a
// fresh notebook over stdin/stdout.
func NewShell(opts ...ShellOption) *shell.Shell {
	return shell.New(opts...)
}
