// Package notebook is the composition root for the notebook application.
//
// It connects the core domain (Note, Notebook, Sequence) with the
// interactive shell that drives it over a terminal.
//
// Philosophy:
//
// Notebook is deliberately small: a process-lifetime collection of memos
// with tags, a linear substring search, and in-place modification. All
// state lives in memory and dies with the process; there is no storage
// adapter and no concurrency beyond what the domain types already allow.
//
// Features:
//
//   - **Unique ids**: every note drawn from one strictly increasing sequence.
//   - **Linear search**: case-sensitive substring match on memos, exact
//     match on tags, insertion order preserved.
//   - **In-place modification**: memo and tags are mutable; ids and creation
//     times are not.
//   - **Interactive shell**: a fixed five-option menu over any
//     io.Reader/io.Writer pair.
//
// Usage:
//
//	nb := notebook.New()
//	nb.Add("hello world", "greeting")
//
//	for _, n := range nb.Search("world") {
//		fmt.Println(n.Memo)
//	}
package notebook
