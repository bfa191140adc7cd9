// Package core holds the notebook domain: notes, the id sequence that names
// them, and the collection that owns them. It knows nothing about how it is
// driven (terminal, tests) and keeps all state in memory.
package core

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"
)

// Notebook owns an ordered collection of notes. Notes are appended by Add
// and mutated in place by the Modify methods; there is no delete, so ids are
// never reused. All methods are safe for concurrent use.
type Notebook struct {
	mu    sync.Mutex
	notes []Note
	seq   *Sequence
	log   *slog.Logger
}

// NotebookOption configures a Notebook.
type NotebookOption func(*Notebook)

// WithSequence injects a private id sequence. Without it, notebooks draw ids
// from a process-wide sequence shared by all of them.
func WithSequence(seq *Sequence) NotebookOption {
	return func(b *Notebook) {
		b.seq = seq
	}
}

// WithLogger sets the logger used for mutation events.
func WithLogger(logger *slog.Logger) NotebookOption {
	return func(b *Notebook) {
		b.log = logger
	}
}

// NewNotebook returns an empty Notebook.
func NewNotebook(opts ...NotebookOption) *Notebook {
	b := &Notebook{
		seq: defaultSequence,
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add creates a note with the given memo and optional tags, stamps it with
// the next id and the current time, and appends it. It returns a copy of the
// stored note; callers never hold references into the notebook.
func (b *Notebook) Add(memo string, tags ...string) Note {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := Note{
		ID:        b.seq.Next(),
		Memo:      memo,
		Tags:      append([]string(nil), tags...),
		CreatedAt: time.Now(),
	}
	b.notes = append(b.notes, n)
	b.log.Debug("note added", "id", n.ID)
	return n.clone()
}

// Search returns copies of every note matching the filter, in insertion
// order. No matches yields an empty result, not an error.
func (b *Notebook) Search(filter string) []Note {
	b.mu.Lock()
	defer b.mu.Unlock()

	var matched []Note
	for _, n := range b.notes {
		if n.Match(filter) {
			matched = append(matched, n.clone())
		}
	}
	return matched
}

// Notes returns copies of all notes in insertion order.
func (b *Notebook) Notes() []Note {
	b.mu.Lock()
	defer b.mu.Unlock()

	all := make([]Note, 0, len(b.notes))
	for _, n := range b.notes {
		all = append(all, n.clone())
	}
	return all
}

// Len reports the number of notes.
func (b *Notebook) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.notes)
}

// find returns the index of the note whose id renders to the given text, or
// -1. Ids compare by decimal representation, so any well-formed id string
// finds its note and malformed input simply never matches. Callers hold mu.
func (b *Notebook) find(id string) int {
	for i := range b.notes {
		if strconv.Itoa(b.notes[i].ID) == id {
			return i
		}
	}
	return -1
}

// ModifyMemo overwrites the memo of the note with the given id. It returns
// ErrNoteNotFound when no note carries the id; that is a normal outcome, and
// no note is altered.
func (b *Notebook) ModifyMemo(id, memo string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.find(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}
	b.notes[i].Memo = memo
	b.log.Debug("memo modified", "id", id)
	return nil
}

// ModifyTags overwrites the tags of the note with the given id. Same
// contract as ModifyMemo.
func (b *Notebook) ModifyTags(id string, tags []string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.find(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}
	b.notes[i].Tags = append([]string(nil), tags...)
	b.log.Debug("tags modified", "id", id)
	return nil
}
