package testutil

import "testing"

func TestSortedStrings(t *testing.T) {
	t.Parallel()
	in := []string{"e2e4", "a2a3", "g1f3"}
	got := SortedStrings(in)
	AssertEqual(t, got, []string{"a2a3", "e2e4", "g1f3"})
	AssertEqual(t, in, []string{"e2e4", "a2a3", "g1f3"})
	if SortedStrings(nil) != nil {
		t.Error("unexpected non-nil result for nil input")
	}
}
