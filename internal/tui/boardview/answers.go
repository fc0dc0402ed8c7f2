package boardview

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/qb/internal/board"
	"github.com/Paintersrp/qb/internal/cache"
)

const answerCacheSize = 256

type answerKey struct {
	id    string
	width int
}

// answerRenderer renders answers as Markdown, keeping one glamour renderer per
// wrap width and the most recent results.
type answerRenderer struct {
	style     string
	renderers map[int]*glamour.TermRenderer
	rendered  *cache.LRUCache[answerKey, string]
}

func newAnswerRenderer(style string) *answerRenderer {
	return &answerRenderer{
		style:     style,
		renderers: map[int]*glamour.TermRenderer{},
		rendered:  cache.NewLRUCache[answerKey, string](answerCacheSize),
	}
}

func (r *answerRenderer) render(item board.Item, width int) string {
	k := answerKey{id: item.ID.Key(), width: width}
	if out, ok := r.rendered.Get(k); ok {
		return out
	}

	out := item.Answer
	tr, err := r.renderer(width)
	if err == nil {
		var rendered string
		rendered, err = tr.Render(item.Answer)
		if err == nil {
			out = tidy(rendered)
		}
	}
	if err != nil {
		slog.Debug("answer rendered as plain text", "id", item.ID.String(), "err", err)
	}

	r.rendered.Put(k, out)
	return out
}

func (r *answerRenderer) renderer(width int) (*glamour.TermRenderer, error) {
	if tr, ok := r.renderers[width]; ok {
		return tr, nil
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(lipgloss.ColorProfile()),
	)
	if err != nil {
		return nil, err
	}
	r.renderers[width] = tr
	return tr, nil
}

func (r *answerRenderer) purge() {
	r.rendered.Purge()
}

// tidy drops the blank margins glamour puts around a document.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}
