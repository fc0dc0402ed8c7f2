package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/Paintersrp/qb/internal/board"
)

func init() {
	color.NoColor = true
}

func items() []board.Item {
	return []board.Item{
		{ID: board.IntID(1), Question: "How does caching work?"},
		{ID: board.StringID("b"), Question: "Where is the cache?"},
		{ID: board.IntID(3), Question: "Can layout change?"},
	}
}

func TestItemsShowColumns(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Items(items(), 2)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header and three rows, got %d:\n%s", len(lines), buf.String())
	}

	want := []struct {
		col, id string
	}{{"1", "1"}, {"2", "b"}, {"1", "3"}}
	for i, w := range want {
		fields := strings.Fields(lines[i+1])
		if fields[0] != w.col || fields[1] != w.id {
			t.Fatalf("row %d: expected col %s id %s, got %v", i, w.col, w.id, fields)
		}
	}
}

func TestItemsEmpty(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Items(nil, 1)

	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("expected none marker, got %q", buf.String())
	}
}

func TestKeywordsCountMatches(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Keywords([]string{"cach", "layout"}, items())

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if got := strings.Fields(lines[1]); got[1] != "cach" || got[2] != "2" {
		t.Fatalf("unexpected first row %v", got)
	}
	if got := strings.Fields(lines[2]); got[1] != "layout" || got[2] != "1" {
		t.Fatalf("unexpected second row %v", got)
	}
}

func TestTitlePluralizes(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)
	p.Title("Board", 1, "question")
	p.Title("Board", 2, "question")

	out := buf.String()
	if !strings.Contains(out, "1 question\n") || !strings.Contains(out, "2 questions\n") {
		t.Fatalf("unexpected titles %q", out)
	}
}
