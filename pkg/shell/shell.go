// Package shell implements the interactive menu that drives a notebook over
// a terminal: show, search, add, modify, quit.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/YarynaFialko/notebook/pkg/core"
)

// command couples a menu label with its handler. Handlers return false to
// stop the loop.
type command struct {
	label string
	run   func() bool
}

// Shell reads menu choices line by line and dispatches them against a
// notebook until the quit choice or end of input. It is single-threaded:
// each handler runs to completion before the next prompt.
type Shell struct {
	notebook *core.Notebook
	in       *bufio.Scanner
	out      io.Writer
	log      *slog.Logger
	choices  []string
	commands map[string]command
}

// New returns a Shell bound to stdin/stdout unless overridden by options.
func New(opts ...Option) *Shell {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.notebook == nil {
		o.notebook = core.NewNotebook()
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	s := &Shell{
		notebook: o.notebook,
		in:       bufio.NewScanner(o.input),
		out:      o.output,
		log:      o.logger,
	}
	s.choices = []string{"1", "2", "3", "4", "5"}
	s.commands = map[string]command{
		"1": {"Show all Notes", s.showNotes},
		"2": {"Search Notes", s.searchNotes},
		"3": {"Add Note", s.addNote},
		"4": {"Modify Note", s.modifyNote},
		"5": {"Quit", s.quit},
	}
	return s
}

// Run displays the menu and responds to choices until the quit choice or end
// of input. Unrecognized choices are reported and the menu is shown again.
func (s *Shell) Run() {
	for {
		s.displayMenu()
		choice, ok := s.prompt("Enter an option: ")
		if !ok {
			return
		}
		cmd, known := s.commands[choice]
		if !known {
			fmt.Fprintf(s.out, "%s is not a valid choice\n", choice)
			continue
		}
		s.log.Debug("dispatching choice", "choice", choice)
		if !cmd.run() {
			return
		}
	}
}

func (s *Shell) displayMenu() {
	fmt.Fprintf(s.out, "\nNotebook Menu\n")
	for _, choice := range s.choices {
		fmt.Fprintf(s.out, "%s. %s\n", choice, s.commands[choice].label)
	}
}

// prompt writes the prompt text and reads one line. ok is false at end of
// input, which ends the surrounding loop cleanly.
func (s *Shell) prompt(text string) (line string, ok bool) {
	fmt.Fprint(s.out, text)
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Shell) showNotes() bool {
	s.render(s.notebook.Notes())
	return true
}

// render writes notes two lines each: "id: tags" then the memo.
func (s *Shell) render(notes []core.Note) {
	for _, n := range notes {
		fmt.Fprintf(s.out, "%d: %s\n%s\n", n.ID, strings.Join(n.Tags, " "), n.Memo)
	}
}

func (s *Shell) searchNotes() bool {
	filter, ok := s.prompt("Search for: ")
	if !ok {
		return false
	}
	s.render(s.notebook.Search(filter))
	return true
}

func (s *Shell) addNote() bool {
	memo, ok := s.prompt("Enter a memo: ")
	if !ok {
		return false
	}
	s.notebook.Add(memo)
	fmt.Fprintln(s.out, "Your note has been added.")
	return true
}

// modifyNote updates an existing note. An empty memo or tags response leaves
// that field unchanged; tags input is split on whitespace.
func (s *Shell) modifyNote() bool {
	id, ok := s.prompt("Enter a note id: ")
	if !ok {
		return false
	}
	memo, ok := s.prompt("Enter a memo: ")
	if !ok {
		return false
	}
	tags, ok := s.prompt("Enter tags: ")
	if !ok {
		return false
	}

	if memo != "" {
		if err := s.notebook.ModifyMemo(id, memo); err != nil {
			s.reportModifyError(id, err)
			return true
		}
	}
	if tags != "" {
		if err := s.notebook.ModifyTags(id, strings.Fields(tags)); err != nil {
			s.reportModifyError(id, err)
		}
	}
	return true
}

func (s *Shell) reportModifyError(id string, err error) {
	if errors.Is(err, core.ErrNoteNotFound) {
		fmt.Fprintf(s.out, "No note found with id %s\n", id)
		return
	}
	fmt.Fprintf(s.out, "Could not modify note %s: %v\n", id, err)
}

func (s *Shell) quit() bool {
	fmt.Fprintln(s.out, "Thank you for using your notebook today.")
	return false
}
