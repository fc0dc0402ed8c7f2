package fzf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/muesli/termenv"

	"github.com/Paintersrp/qb/internal/board"
)

var ErrNoSelection = errors.New("no question selected")

// FuzzyFinder picks a question with a rendered answer preview.
type FuzzyFinder struct {
	items  []board.Item
	Header string
	style  string
}

func NewFuzzyFinder(items []board.Item, header, style string) *FuzzyFinder {
	return &FuzzyFinder{items: items, Header: header, style: style}
}

func (f *FuzzyFinder) Run(query string) (board.Item, error) {
	if len(f.items) == 0 {
		return board.Item{}, ErrNoSelection
	}

	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderMarkdownPreview),
	}
	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}
	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	idx, err := fuzzyfinder.Find(f.items, f.Label, options...)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return board.Item{}, ErrNoSelection
		}
		return board.Item{}, fmt.Errorf("error selecting question: %w", err)
	}

	return f.items[idx], nil
}

// Label is the line shown for item i in the finder.
func (f *FuzzyFinder) Label(i int) string {
	item := f.items[i]
	return fmt.Sprintf("%s [%s]", item.Question, item.ID)
}

func (f *FuzzyFinder) renderMarkdownPreview(i, w, h int) string {
	if i == -1 {
		return ""
	}

	wrap := 100
	if w > 4 && w-4 < wrap {
		wrap = w - 4
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(f.style),
		glamour.WithWordWrap(wrap),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return "Error creating renderer"
	}

	item := f.items[i]
	markdown, err := r.Render("## " + item.Question + "\n\n" + item.Answer)
	if err != nil {
		return "Error rendering markdown"
	}

	return strings.TrimRight(markdown, "\n")
}
