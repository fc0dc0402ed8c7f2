package boardview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/qb/internal/board"
	"github.com/Paintersrp/qb/internal/highlight"
	"github.com/Paintersrp/qb/internal/layout"
	"github.com/Paintersrp/qb/internal/tui/hover"
)

const (
	defaultWidth = 80
	columnGap    = 1
)

// frame collects rendered lines and the zones inside them, in content
// coordinates.
type frame struct {
	lines []string
	zones []hover.Zone
}

func (f *frame) add(block string) int {
	y := len(f.lines)
	f.lines = append(f.lines, strings.Split(block, "\n")...)
	return y
}

func (f *frame) zone(key string, x, y, w, h int) {
	f.zones = append(f.zones, hover.Zone{Key: key, X0: x, Y0: y, X1: x + w, Y1: y + h})
}

type part struct {
	text string
	key  string
}

// flow lays out groups of parts left to right, wrapping a whole group to the
// next line when it does not fit.
type flow struct {
	width int
	lines []string
	zones []hover.Zone
	cur   strings.Builder
	x     int
}

func (r *flow) put(parts ...part) {
	w := 0
	for _, p := range parts {
		w += lipgloss.Width(p.text)
	}
	if r.x > 0 && r.x+w > r.width {
		r.newline()
	}

	y := len(r.lines)
	for _, p := range parts {
		pw := lipgloss.Width(p.text)
		if p.key != "" {
			r.zones = append(r.zones, hover.Zone{Key: p.key, X0: r.x, Y0: y, X1: r.x + pw, Y1: y + 1})
		}
		r.cur.WriteString(p.text)
		r.x += pw
	}
	r.cur.WriteString(" ")
	r.x++
}

func (r *flow) newline() {
	r.lines = append(r.lines, r.cur.String())
	r.cur.Reset()
	r.x = 0
}

func (r *flow) into(f *frame) {
	if r.x > 0 {
		r.newline()
	}
	y := len(f.lines)
	f.lines = append(f.lines, r.lines...)
	for _, z := range r.zones {
		z.Y0 += y
		z.Y1 += y
		f.zones = append(f.zones, z)
	}
}

func (m *Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	f := &frame{}
	m.renderHeader(f, width)
	m.renderBanners(f, width)
	m.renderKeywords(f, width)
	if m.prompt != promptNone {
		f.add(promptStyle.Width(max(width-4, 10)).Render(m.input.View()))
	}
	f.add("")
	m.renderCards(f, width)

	helpView := helpStyle.Render(m.help.View(m.keys))
	return m.clip(f, helpView)
}

// clip scrolls the content to fit above the help footer and publishes the
// visible zones.
func (m *Model) clip(f *frame, footer string) string {
	m.zones.Reset()

	lines := f.lines
	if m.height > 0 {
		room := max(m.height-lipgloss.Height(footer), 1)
		m.scroll = min(m.scroll, max(len(lines)-room, 0))
		end := min(m.scroll+room, len(lines))
		lines = lines[m.scroll:end]
	} else {
		m.scroll = 0
	}

	for _, z := range f.zones {
		z.Y0 -= m.scroll
		z.Y1 -= m.scroll
		if z.Y1 <= 0 || z.Y0 >= len(lines) {
			continue
		}
		m.zones.Add(z)
	}

	return strings.Join(append(lines, footer), "\n")
}

func (m *Model) renderHeader(f *frame, width int) {
	all, shown := len(m.state.Items()), len(m.state.Filtered())

	summary := fmt.Sprintf("%d questions", all)
	if filter := m.state.Filter(); filter != "" {
		summary = fmt.Sprintf("%d of %d questions • filter: %s", shown, all, filter)
	}
	if m.loading {
		summary += " • loading..."
	}

	r := &flow{width: width}
	r.put(part{text: titleStyle.Render("Q&A Board")}, part{text: subtitleStyle.Render(summary)})
	r.put(part{text: m.button(zoneUpload, "Upload"), key: zoneUpload})
	r.into(f)
}

func (m *Model) renderBanners(f *frame, width int) {
	if msg := m.state.Error(); msg != "" {
		r := &flow{width: width}
		r.put(part{text: errorStyle.Render("Upload failed: " + msg)})
		r.put(part{text: m.button(zoneDismiss, "Dismiss"), key: zoneDismiss})
		r.into(f)
	}
	if msg := m.state.Success(); msg != "" {
		f.add(successStyle.Render(msg))
	}
	if m.status != "" {
		f.add(statusStyle.Render(m.status))
	}
}

func (m *Model) renderKeywords(f *frame, width int) {
	r := &flow{width: width}
	r.put(part{text: labelStyle.Render("Keywords")})

	filter := m.state.Filter()
	for i, word := range m.state.Keywords() {
		label := word
		if i < 9 {
			label = fmt.Sprintf("%d %s", i+1, word)
		}

		style := chipStyle
		switch {
		case word == filter:
			style = activeChipStyle
		case m.buttons.Current() == zoneChip+word:
			style = hoverChipStyle
		}

		r.put(
			part{text: style.Render(label), key: zoneChip + word},
			part{text: removeStyle.Render(" ×"), key: zoneHide + word},
		)
	}

	r.put(part{text: m.button(zoneAdd, "+ Add"), key: zoneAdd})
	r.put(part{text: m.button(zoneReset, "Reset"), key: zoneReset})
	r.into(f)
}

func (m *Model) renderCards(f *frame, width int) {
	for k := range m.cardZones {
		delete(m.cardZones, k)
	}

	items := m.state.Filtered()
	if len(items) == 0 {
		f.add(emptyStyle.Render("No questions match your filters"))
		r := &flow{width: width}
		r.put(part{text: m.button(zoneReset, "Reset All Filters"), key: zoneReset})
		r.into(f)
		return
	}

	n := max(m.columns, 1)
	colWidth := max((width-columnGap*(n-1))/n, 12)

	indexes := make([]int, len(items))
	for i := range indexes {
		indexes[i] = i
	}

	top := len(f.lines)
	gap := strings.Repeat(" ", columnGap)
	blocks := make([]string, 0, 2*n)

	for c, column := range layout.Distribute(indexes, n) {
		x := c * (colWidth + columnGap)
		y := top
		cards := make([]string, 0, len(column))

		for _, i := range column {
			item := items[i]
			card := m.renderCard(item, i == m.focus, colWidth)
			h := lipgloss.Height(card)

			key := zoneCard + item.ID.Key()
			m.cardZones[key] = item.ID
			f.zone(key, x, y, colWidth, h)

			cards = append(cards, card)
			y += h
		}

		if c > 0 {
			blocks = append(blocks, gap)
		}
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, cards...))
	}

	f.add(lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
}

func (m *Model) renderCard(item board.Item, focused bool, width int) string {
	open := m.state.IsOpen(item.ID)

	style := cardStyle
	switch {
	case focused:
		style = focusedCardStyle
	case open:
		style = openCardStyle
	}

	inner := max(width-4, 8)
	marker := "▸ "
	if open {
		marker = "▾ "
	}

	question := highlight.Render(item.Question, m.state.Filter(), m.state.Keywords(), questionStyles)
	body := lipgloss.NewStyle().Width(inner).Render(marker + question)
	if open {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", m.answers.render(item, inner))
	}

	return style.Width(width - 2).Render(body)
}

func (m *Model) button(zone, label string) string {
	if m.buttons.Current() == zone {
		return hoverButtonStyle.Render(label)
	}
	return buttonStyle.Render(label)
}
