package core

import (
	"strings"
	"time"
)

// Note is a single memo record. It is created through Notebook.Add, which
// assigns the id and creation time; both are immutable afterwards.
type Note struct {
	ID        int
	Memo      string
	Tags      []string
	CreatedAt time.Time
}

// Match reports whether the note matches the filter text. A note matches
// when the filter is a contiguous substring of the memo, or when it is equal
// to one of the tags. Matching is case-sensitive; there is no tokenization.
func (n Note) Match(filter string) bool {
	if strings.Contains(n.Memo, filter) {
		return true
	}
	for _, tag := range n.Tags {
		if tag == filter {
			return true
		}
	}
	return false
}

// clone returns a copy that shares no memory with the original.
func (n Note) clone() Note {
	n.Tags = append([]string(nil), n.Tags...)
	return n
}
