package core_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/YarynaFialko/notebook/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newNotebook builds a notebook with a private sequence so ids in every test
// start from 1, regardless of what other tests created.
func newNotebook() *core.Notebook {
	return core.NewNotebook(core.WithSequence(core.NewSequence()))
}

func TestAdd_AssignsIncreasingIDs(t *testing.T) {
	nb := newNotebook()

	for i := 1; i <= 5; i++ {
		n := nb.Add("memo")
		assert.Equal(t, i, n.ID)
	}
	assert.Equal(t, 5, nb.Len())
}

func TestAdd_SharedSequenceAcrossNotebooks(t *testing.T) {
	seq := core.NewSequence()
	first := core.NewNotebook(core.WithSequence(seq))
	second := core.NewNotebook(core.WithSequence(seq))

	a := first.Add("one")
	b := second.Add("two")
	c := first.Add("three")

	assert.Equal(t, []int{1, 2, 3}, []int{a.ID, b.ID, c.ID})
}

func TestSearch(t *testing.T) {
	nb := newNotebook()
	nb.Add("hello world")
	nb.Add("hello again")

	results := nb.Search("world")
	require.Len(t, results, 1)
	assert.Equal(t, "hello world", results[0].Memo)

	results = nb.Search("hello")
	require.Len(t, results, 2)
	assert.Equal(t, "hello world", results[0].Memo, "insertion order preserved")
	assert.Equal(t, "hello again", results[1].Memo)

	assert.Empty(t, nb.Search("second"))
}

func TestSearch_EmptyNotebook(t *testing.T) {
	assert.Empty(t, newNotebook().Search("anything"))
}

func TestSearch_ByTag(t *testing.T) {
	nb := newNotebook()
	nb.Add("buy milk", "errand")
	nb.Add("call home", "family")

	results := nb.Search("errand")
	require.Len(t, results, 1)
	assert.Equal(t, "buy milk", results[0].Memo)
}

func TestModifyMemo(t *testing.T) {
	nb := newNotebook()
	n := nb.Add("hello world")
	id := strconv.Itoa(n.ID)

	require.NoError(t, nb.ModifyMemo(id, "hi world"))
	assert.Equal(t, "hi world", nb.Notes()[0].Memo)
}

func TestModifyMemo_UnknownID(t *testing.T) {
	nb := newNotebook()
	nb.Add("hello world")

	err := nb.ModifyMemo("999", "changed")
	require.ErrorIs(t, err, core.ErrNoteNotFound)
	assert.Equal(t, "hello world", nb.Notes()[0].Memo, "no note altered on failure")
}

func TestModifyMemo_MalformedID(t *testing.T) {
	nb := newNotebook()
	nb.Add("hello world")

	// Non-numeric input never matches a note; it is not an input error.
	err := nb.ModifyMemo("not-a-number", "changed")
	require.ErrorIs(t, err, core.ErrNoteNotFound)
}

func TestModifyTags(t *testing.T) {
	nb := newNotebook()
	n := nb.Add("hello", "greet", "h")
	id := strconv.Itoa(n.ID)

	require.NoError(t, nb.ModifyTags(id, []string{"greetings", "h", "hi"}))
	assert.Equal(t, []string{"greetings", "h", "hi"}, nb.Notes()[0].Tags)

	err := nb.ModifyTags("999", []string{"x"})
	require.ErrorIs(t, err, core.ErrNoteNotFound)
}

func TestNotes_ReturnsCopies(t *testing.T) {
	nb := newNotebook()
	nb.Add("original", "tag")

	notes := nb.Notes()
	notes[0].Memo = "mutated"
	notes[0].Tags[0] = "mutated"

	kept := nb.Notes()[0]
	assert.Equal(t, "original", kept.Memo)
	assert.Equal(t, []string{"tag"}, kept.Tags)
}

func TestAdd_Concurrent(t *testing.T) {
	nb := newNotebook()

	const workers = 8
	const perWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				nb.Add("memo")
			}
		}()
	}
	wg.Wait()

	notes := nb.Notes()
	require.Len(t, notes, workers*perWorker)

	seen := make(map[int]bool, len(notes))
	for _, n := range notes {
		assert.False(t, seen[n.ID], "duplicate id %d", n.ID)
		seen[n.ID] = true
	}
}
