package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Paintersrp/qb/internal/board"
)

func testBoard() board.State {
	return board.New([]board.Item{
		{ID: board.IntID(1), Question: "What is <b>caching</b>?", Answer: "It keeps **hot** data close."},
		{ID: board.StringID("two"), Question: "Where is the cache stored?", Answer: "- on disk\n- in memory"},
		{ID: board.IntID(3), Question: "Can layout change?", Answer: "Yes."},
	}, 12)
}

func TestHTMLRendersMarkdownAnswers(t *testing.T) {
	var buf bytes.Buffer
	if err := HTML(&buf, "FAQ", testBoard(), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<strong>hot</strong>",
		"<li>on disk</li>",
		`id="q-two"`,
		"repeat(2, 1fr)",
		"3 questions",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestHTMLEscapesQuestions(t *testing.T) {
	var buf bytes.Buffer
	if err := HTML(&buf, "FAQ", testBoard(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(buf.String(), "<b>caching</b>") {
		t.Fatalf("expected question markup to be escaped")
	}
}

func TestHTMLHonoursFilter(t *testing.T) {
	var buf bytes.Buffer
	st := testBoard().SetFilter("layout")
	if err := HTML(&buf, "FAQ", st, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	if strings.Contains(out, "Where is the cache stored?") {
		t.Fatalf("expected filtered items to be left out")
	}
	if !strings.Contains(out, `class="active">layout`) {
		t.Fatalf("expected the active keyword to be marked")
	}
}
