package layout

import (
	"reflect"
	"testing"
)

func TestColumnsBreakpoints(t *testing.T) {
	cases := []struct {
		width int
		want  int
	}{
		{0, 1},
		{767, 1},
		{768, 2},
		{1535, 2},
		{1536, 3},
		{4000, 3},
	}

	for _, tc := range cases {
		if got := Columns(tc.width, DefaultBreakpoints); got != tc.want {
			t.Fatalf("width %d: expected %d columns, got %d", tc.width, tc.want, got)
		}
	}
}

func TestColumnsFallsBackOnBadBreakpoints(t *testing.T) {
	if got := Columns(800, []int{900}); got != 2 {
		t.Fatalf("expected default breakpoints to apply, got %d", got)
	}
	if got := Columns(800, []int{1000, 500}); got != 2 {
		t.Fatalf("expected default breakpoints to apply, got %d", got)
	}
}

func TestCellColumns(t *testing.T) {
	if got := CellColumns(80, 8, DefaultBreakpoints); got != 1 {
		t.Fatalf("expected 80 cells to give 1 column, got %d", got)
	}
	if got := CellColumns(96, 8, DefaultBreakpoints); got != 2 {
		t.Fatalf("expected 96 cells to give 2 columns, got %d", got)
	}
	if got := CellColumns(192, 8, DefaultBreakpoints); got != 3 {
		t.Fatalf("expected 192 cells to give 3 columns, got %d", got)
	}
}

func TestDistributeRoundRobin(t *testing.T) {
	got := Distribute([]int{0, 1, 2, 3, 4, 5, 6}, 3)
	want := [][]int{{0, 3, 6}, {1, 4}, {2, 5}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	single := Distribute([]int{1, 2}, 0)
	if len(single) != 1 || len(single[0]) != 2 {
		t.Fatalf("expected a single column, got %v", single)
	}

	empty := Distribute([]int{}, 2)
	if len(empty) != 2 || len(empty[0]) != 0 || len(empty[1]) != 0 {
		t.Fatalf("expected two empty columns, got %v", empty)
	}
}

func TestPositionAndIndex(t *testing.T) {
	for i := 0; i < 7; i++ {
		col, row := Position(i, 3)
		if got := Index(col, row, 3, 7); got != i {
			t.Fatalf("expected index %d back, got %d", i, got)
		}
	}
	if got := Index(1, 2, 3, 7); got != -1 {
		t.Fatalf("expected empty cell, got %d", got)
	}
}
