package board

import (
	"errors"
	"reflect"
	"testing"
)

func sampleItems() []Item {
	return []Item{
		{ID: IntID(1), Question: "How do I reset the cache?", Answer: "Run reset."},
		{ID: IntID(2), Question: "Where does the cache live?", Answer: "On disk."},
		{ID: StringID("x"), Question: "Can I change the layout?", Answer: "Resize."},
	}
}

func TestNewDerivesKeywords(t *testing.T) {
	s := New(sampleItems(), 0)

	kw := s.Keywords()
	if len(kw) == 0 || kw[0] != "cache" {
		t.Fatalf("expected cache to lead the keywords, got %v", kw)
	}
	if _, open := s.OpenID(); open {
		t.Fatalf("expected nothing open initially")
	}
}

func TestFilterIsCaseInsensitiveSubstringOnQuestion(t *testing.T) {
	s := New(sampleItems(), 0).SetFilter("CACH")

	got := s.Filtered()
	if len(got) != 2 {
		t.Fatalf("expected 2 matching items, got %d", len(got))
	}

	s = s.SetFilter("disk")
	if got := s.Filtered(); len(got) != 0 {
		t.Fatalf("expected answers not to be searched, got %v", got)
	}

	s = s.ResetFilter()
	if got := s.Filtered(); len(got) != 3 {
		t.Fatalf("expected all items after reset, got %d", len(got))
	}
}

func TestToggleKeepsSingleOpenCard(t *testing.T) {
	s := New(sampleItems(), 0)
	s = s.Toggle(IntID(2), true)
	s = s.Toggle(IntID(1), true)

	if !s.IsOpen(IntID(1)) || s.IsOpen(IntID(2)) {
		t.Fatalf("expected exactly card 1 open")
	}

	s = s.Toggle(IntID(2), false)
	if !s.IsOpen(IntID(1)) {
		t.Fatalf("expected stale close for card 2 to be ignored")
	}
}

func TestStringAndIntegerIDsAreDistinct(t *testing.T) {
	s := New(nil, 0).Toggle(IntID(1), true)
	if s.IsOpen(StringID("1")) {
		t.Fatalf("expected string id \"1\" to differ from integer id 1")
	}
}

func TestHideKeywordClearsActiveFilter(t *testing.T) {
	s := New(sampleItems(), 0).SetFilter("cache")
	s = s.HideKeyword("cache")

	if s.Filter() != "" {
		t.Fatalf("expected filter to clear, got %q", s.Filter())
	}
	for _, kw := range s.Keywords() {
		if kw == "cache" {
			t.Fatalf("expected cache to be hidden, got %v", s.Keywords())
		}
	}

	s = s.AddKeyword("  Cache ")
	found := false
	for _, kw := range s.Keywords() {
		if kw == "cache" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected re-adding to unhide cache, got %v", s.Keywords())
	}
}

func TestHideKeywordLeavesOtherFilter(t *testing.T) {
	s := New(sampleItems(), 0).SetFilter("layout").HideKeyword("cache")
	if s.Filter() != "layout" {
		t.Fatalf("expected filter to stay, got %q", s.Filter())
	}
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	before := New(sampleItems(), 0).HideKeyword("reset")
	after := before.HideKeyword("layout").AddKeyword("reset").AddKeyword("extra")

	if !before.IsHidden("reset") || before.IsHidden("layout") {
		t.Fatalf("expected earlier state to keep its hidden set")
	}
	if len(before.Custom()) != 0 {
		t.Fatalf("expected earlier state to keep its custom keywords, got %v", before.Custom())
	}
	if after.IsHidden("reset") || !after.IsHidden("layout") {
		t.Fatalf("unexpected hidden set on new state")
	}
}

func TestAddKeywordIgnoresBlankAndDuplicates(t *testing.T) {
	s := New(nil, 0).AddKeyword("   ").AddKeyword("go").AddKeyword("GO")
	if !reflect.DeepEqual(s.Custom(), []string{"go"}) {
		t.Fatalf("expected a single custom keyword, got %v", s.Custom())
	}
}

func TestLoadResetsDerivedState(t *testing.T) {
	s := New(sampleItems(), 0).
		Toggle(IntID(1), true).
		SetFilter("cache").
		HideKeyword("layout").
		AddKeyword("custom").
		UploadFailed(errors.New("boom"))

	s = s.Load(Dataset{Items: []Item{{ID: IntID(1), Question: "Q", Answer: "A"}}})

	if len(s.Items()) != 1 {
		t.Fatalf("expected exactly one item, got %d", len(s.Items()))
	}
	if s.Filter() != "" || s.IsHidden("layout") {
		t.Fatalf("expected filter and hidden set to reset")
	}
	if _, open := s.OpenID(); open {
		t.Fatalf("expected nothing open after load")
	}
	if len(s.Custom()) != 0 {
		t.Fatalf("expected custom keywords to clear, got %v", s.Custom())
	}
	if s.Error() != "" {
		t.Fatalf("expected error to clear, got %q", s.Error())
	}
	if s.Success() != "Successfully loaded 1 questions." {
		t.Fatalf("unexpected success message %q", s.Success())
	}
}

func TestLoadAdoptsUploadedKeywords(t *testing.T) {
	s := New(sampleItems(), 0).AddKeyword("old")
	s = s.Load(Dataset{Items: sampleItems(), Keywords: []string{"fresh"}, HasKeywords: true})

	if !reflect.DeepEqual(s.Custom(), []string{"fresh"}) {
		t.Fatalf("expected uploaded keywords to replace custom ones, got %v", s.Custom())
	}
}

func TestUploadFailedKeepsDataset(t *testing.T) {
	s := New(sampleItems(), 0).Load(Dataset{Items: sampleItems()})
	s = s.UploadFailed(errors.New("item missing required fields"))

	if len(s.Items()) != 3 {
		t.Fatalf("expected dataset to be untouched, got %d items", len(s.Items()))
	}
	if s.Error() != "item missing required fields" {
		t.Fatalf("unexpected error %q", s.Error())
	}
	if s.Success() != "" {
		t.Fatalf("expected success banner to clear on failure")
	}

	s = s.DismissError()
	if s.Error() != "" {
		t.Fatalf("expected error to be dismissed")
	}
}
