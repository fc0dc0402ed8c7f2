// Package highlight marks keywords inside question text.
package highlight

import (
	"regexp"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Kind int

const (
	Plain Kind = iota
	Detected
	Active
)

type Segment struct {
	Text string
	Kind Kind
}

// Split cuts text into plain and keyword segments. Matches are whole words,
// case-insensitive, preferring the longest term. The active keyword wins over
// detected ones.
func Split(text, active string, detected []string) []Segment {
	active = strings.TrimSpace(active)

	terms := make([]string, 0, len(detected)+1)
	seen := map[string]struct{}{}
	for _, term := range append([]string{active}, detected...) {
		term = strings.TrimSpace(term)
		key := strings.ToLower(term)
		if term == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		terms = append(terms, regexp.QuoteMeta(term))
	}

	if len(terms) == 0 || text == "" {
		return []Segment{{Text: text, Kind: Plain}}
	}

	sort.SliceStable(terms, func(i, j int) bool {
		return len(terms[i]) > len(terms[j])
	})
	pattern := regexp.MustCompile(`(?i)\b(` + strings.Join(terms, "|") + `)\b`)

	segments := []Segment{}
	last := 0
	for _, loc := range pattern.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			segments = append(segments, Segment{Text: text[last:loc[0]], Kind: Plain})
		}
		match := text[loc[0]:loc[1]]
		segments = append(segments, Segment{Text: match, Kind: classify(match, active, detected)})
		last = loc[1]
	}
	if last < len(text) {
		segments = append(segments, Segment{Text: text[last:], Kind: Plain})
	}
	return segments
}

func classify(match, active string, detected []string) Kind {
	if active != "" && strings.EqualFold(match, active) {
		return Active
	}
	for _, d := range detected {
		if strings.EqualFold(match, strings.TrimSpace(d)) {
			return Detected
		}
	}
	return Plain
}

type Styles struct {
	Plain    lipgloss.Style
	Detected lipgloss.Style
	Active   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Plain: lipgloss.NewStyle(),
		Detected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6366F1")).
			Bold(true),
		Active: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0F172A")).
			Background(lipgloss.Color("#FDE047")).
			Bold(true),
	}
}

// Render joins the segments of text with their styles applied.
func Render(text, active string, detected []string, styles Styles) string {
	var b strings.Builder
	for _, seg := range Split(text, active, detected) {
		switch seg.Kind {
		case Active:
			b.WriteString(styles.Active.Render(seg.Text))
		case Detected:
			b.WriteString(styles.Detected.Render(seg.Text))
		default:
			b.WriteString(styles.Plain.Render(seg.Text))
		}
	}
	return b.String()
}
