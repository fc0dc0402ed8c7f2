// Package printer writes boards and keyword rankings as plain terminal
// tables.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/Paintersrp/qb/internal/board"
	"github.com/Paintersrp/qb/internal/layout"
)

type Printer struct {
	Out      io.Writer
	MaxWidth uint
}

func New(out io.Writer) *Printer {
	return &Printer{Out: out, MaxWidth: 60}
}

// Title prints a bold underlined heading followed by a faint count.
func (p *Printer) Title(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(p.Out, title)
	if count == 1 {
		_, _ = c.Fprintf(p.Out, " - %d %s\n", count, noun)
		return
	}
	_, _ = c.Fprintf(p.Out, " - %d %ss\n", count, noun)
}

// Items prints items in board order with the column each lands in for an n
// column layout.
func (p *Printer) Items(items []board.Item, n int) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(p.Out, " none\n\n")
		return
	}

	bold := color.New(color.Bold)
	id := color.New(color.FgHiYellow, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = p.MaxWidth
	tbl.AddRow(bold.Sprint("Col"), bold.Sprint("ID"), bold.Sprint("Question"))
	for i, item := range items {
		col, _ := layout.Position(i, n)
		tbl.AddRow(col+1, id.Sprint(item.ID.String()), item.Question)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(p.Out, tbl)
}

// Keywords prints the ranked keywords with how many questions mention each.
func (p *Printer) Keywords(words []string, items []board.Item) {
	if len(words) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(p.Out, " none\n\n")
		return
	}

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("#"), bold.Sprint("Keyword"), bold.Sprint("Questions"))
	for i, word := range words {
		tbl.AddRow(i+1, word, Matches(word, items))
	}
	tbl.RightAlign(0)
	tbl.RightAlign(2)

	_, _ = fmt.Fprintln(p.Out, tbl)
}

// Matches counts the questions that contain word, ignoring case.
func Matches(word string, items []board.Item) int {
	needle := strings.ToLower(word)
	n := 0
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Question), needle) {
			n++
		}
	}
	return n
}
