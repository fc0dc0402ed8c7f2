// Package board holds the state of a Q&A board: the loaded items, the keyword
// sets, the active filter, the open card and the status banners. State is a
// value; every change goes through a transition method that returns the next
// state and leaves the receiver untouched.
package board

import (
	"fmt"
	"strings"

	"github.com/Paintersrp/qb/internal/accordion"
	"github.com/Paintersrp/qb/internal/keywords"
)

// Dataset is the result of a successful upload.
type Dataset struct {
	Items       []Item
	Keywords    []string
	HasKeywords bool
}

type State struct {
	items   []Item
	derived []string
	custom  []string
	hidden  map[string]struct{}
	filter  string
	open    accordion.State[ID]
	limit   int

	errMsg  string
	success string
}

// New returns a board showing items with nothing filtered or open. limit caps
// the number of derived keywords.
func New(items []Item, limit int) State {
	s := State{limit: limit}
	s.items = append([]Item(nil), items...)
	s.derived = keywords.Extract(Questions(s.items), limit)
	return s
}

// Questions returns the question text of every item.
func Questions(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Question
	}
	return out
}

func (s State) Items() []Item { return s.items }

func (s State) Filter() string { return s.filter }

func (s State) Error() string { return s.errMsg }

func (s State) Success() string { return s.success }

func (s State) Derived() []string { return s.derived }

func (s State) Custom() []string { return s.custom }

func (s State) IsHidden(word string) bool {
	_, ok := s.hidden[word]
	return ok
}

// Keywords is the display list: derived then custom, deduplicated, without
// hidden words.
func (s State) Keywords() []string {
	return keywords.Merge(s.derived, s.custom, s.hidden)
}

// Filtered returns the items whose question contains the active filter,
// ignoring case. With no filter every item is returned.
func (s State) Filtered() []Item {
	if s.filter == "" {
		return s.items
	}

	needle := strings.ToLower(s.filter)
	out := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		if strings.Contains(strings.ToLower(item.Question), needle) {
			out = append(out, item)
		}
	}
	return out
}

func (s State) OpenID() (ID, bool) { return s.open.Open() }

func (s State) IsOpen(id ID) bool { return s.open.IsOpen(id) }

// Toggle applies an open or close request from a card. See accordion.State.
func (s State) Toggle(id ID, wantOpen bool) State {
	s.open = s.open.Toggle(id, wantOpen)
	return s
}

// SetFilter makes word the active filter.
func (s State) SetFilter(word string) State {
	s.filter = word
	return s
}

func (s State) ResetFilter() State {
	s.filter = ""
	return s
}

// AddKeyword adds text to the custom keywords, unhiding it if it was hidden.
// Blank text is ignored.
func (s State) AddKeyword(text string) State {
	word := keywords.Normalize(text)
	if word == "" {
		return s
	}

	if s.IsHidden(word) {
		s.hidden = copyWithout(s.hidden, word)
	}

	for _, existing := range s.custom {
		if existing == word {
			return s
		}
	}
	s.custom = append(append([]string(nil), s.custom...), word)
	return s
}

// HideKeyword removes word from the display list without touching the list it
// came from. If word was the active filter the filter is cleared.
func (s State) HideKeyword(word string) State {
	if word == "" {
		return s
	}

	hidden := make(map[string]struct{}, len(s.hidden)+1)
	for k := range s.hidden {
		hidden[k] = struct{}{}
	}
	hidden[word] = struct{}{}
	s.hidden = hidden

	if s.filter == word {
		s.filter = ""
	}
	return s
}

// Load replaces the whole board with ds. Custom keywords become the uploaded
// list, or are cleared when the upload carried none. Filter, hidden words and
// the open card reset, any error is cleared and a success message is set.
func (s State) Load(ds Dataset) State {
	next := New(ds.Items, s.limit)
	if ds.HasKeywords {
		next.custom = append([]string(nil), ds.Keywords...)
	}
	next.success = fmt.Sprintf("Successfully loaded %d questions.", len(ds.Items))
	return next
}

// UploadFailed records a rejected upload. The loaded items are untouched.
func (s State) UploadFailed(err error) State {
	if err == nil {
		return s
	}
	s.errMsg = err.Error()
	s.success = ""
	return s
}

func (s State) DismissError() State {
	s.errMsg = ""
	return s
}

func (s State) ClearSuccess() State {
	s.success = ""
	return s
}

func copyWithout(set map[string]struct{}, word string) map[string]struct{} {
	out := make(map[string]struct{}, len(set))
	for k := range set {
		if k != word {
			out[k] = struct{}{}
		}
	}
	return out
}
