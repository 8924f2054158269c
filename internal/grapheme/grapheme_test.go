package grapheme

import "testing"

const family = "\U0001F468\u200d\U0001F469\u200d\U0001F467\u200d\U0001F466"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "é" + family + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "é" {
		t.Fatalf("split[1]=%q, want %q", got[1], "é")
	}
	if got[2] != family {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if Split("") != nil || Count("") != 0 {
		t.Fatalf("expected empty results for empty text")
	}
}

func TestWidth(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{text: "", want: 0},
		{text: "abc", want: 3},
		{text: "世界", want: 4},
	}
	for _, tc := range cases {
		if got := Width(tc.text); got != tc.want {
			t.Fatalf("Width(%q)=%d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		text  string
		cells int
		want  string
	}{
		{text: "abc", cells: 5, want: "abc  "},
		{text: "abcdef", cells: 3, want: "abc"},
		{text: "世界", cells: 3, want: "世 "},
		{text: "x", cells: 0, want: ""},
	}
	for _, tc := range cases {
		if got := Truncate(tc.text, tc.cells); got != tc.want {
			t.Fatalf("Truncate(%q,%d)=%q, want %q", tc.text, tc.cells, got, tc.want)
		}
	}
}
