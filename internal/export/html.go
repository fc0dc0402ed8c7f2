// Package export renders a board as a standalone HTML page.
package export

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/Paintersrp/qb/internal/board"
	"github.com/Paintersrp/qb/internal/layout"
)

type card struct {
	ID       string
	Question string
	Answer   template.HTML
}

type page struct {
	Title    string
	Filter   string
	Keywords []string
	Columns  [][]card
	Count    int
}

var pageTemplate = template.Must(template.New("board").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; margin: 2rem; background: #f8fafc; color: #0f172a; }
.keywords span { display: inline-block; margin: 0 .25rem .25rem 0; padding: .1rem .6rem; border-radius: 999px; background: #e0e7ff; color: #4338ca; }
.keywords span.active { background: #fde047; color: #0f172a; font-weight: 600; }
.board { display: grid; grid-template-columns: repeat({{len .Columns}}, 1fr); gap: 1rem; align-items: start; }
.column { display: flex; flex-direction: column; gap: 1rem; }
details { background: #fff; border: 1px solid #e2e8f0; border-radius: .75rem; padding: 1rem; }
summary { cursor: pointer; font-weight: 600; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p>{{.Count}} questions{{if .Filter}} matching “{{.Filter}}”{{end}}</p>
<div class="keywords">{{range .Keywords}}<span{{if eq . $.Filter}} class="active"{{end}}>{{.}}</span>{{end}}</div>
<div class="board">
{{- range .Columns}}
<div class="column">
{{- range .}}
<details id="q-{{.ID}}"><summary>{{.Question}}</summary>{{.Answer}}</details>
{{- end}}
</div>
{{- end}}
</div>
</body>
</html>
`))

// HTML writes the filtered items of st laid out in n columns. Answers are
// rendered as Markdown.
func HTML(w io.Writer, title string, st board.State, n int) error {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	items := st.Filtered()
	cards := make([]card, 0, len(items))
	for _, item := range items {
		var buf bytes.Buffer
		if err := md.Convert([]byte(item.Answer), &buf); err != nil {
			return fmt.Errorf("failed to render answer %s: %w", item.ID, err)
		}
		cards = append(cards, card{
			ID:       item.ID.String(),
			Question: item.Question,
			Answer:   template.HTML(buf.String()),
		})
	}

	return pageTemplate.Execute(w, page{
		Title:    title,
		Filter:   st.Filter(),
		Keywords: st.Keywords(),
		Columns:  layout.Distribute(cards, n),
		Count:    len(cards),
	})
}
