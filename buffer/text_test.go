package buffer

import "testing"

func TestDoc_LinesAndLength(t *testing.T) {
	d := NewDoc("ab\n\ncdé")

	if got, want := d.Len(), 7; got != want {
		t.Fatalf("Len()=%d, want %d", got, want)
	}
	if got, want := d.Lines(), 3; got != want {
		t.Fatalf("Lines()=%d, want %d", got, want)
	}
	if got, want := d.String(), "ab\n\ncdé"; got != want {
		t.Fatalf("String()=%q, want %q", got, want)
	}

	cases := []struct {
		row  int
		want Line
	}{
		{row: 0, want: Line{Row: 0, From: 0, To: 2, Text: "ab"}},
		{row: 1, want: Line{Row: 1, From: 3, To: 3, Text: ""}},
		{row: 2, want: Line{Row: 2, From: 4, To: 7, Text: "cdé"}},
		{row: 99, want: Line{Row: 2, From: 4, To: 7, Text: "cdé"}},
		{row: -1, want: Line{Row: 0, From: 0, To: 2, Text: "ab"}},
	}
	for _, tc := range cases {
		if got := d.Line(tc.row); got != tc.want {
			t.Fatalf("Line(%d)=%+v, want %+v", tc.row, got, tc.want)
		}
	}
}

func TestDoc_ZeroValueIsEmptyDocument(t *testing.T) {
	var d Doc
	if got, want := d.Lines(), 1; got != want {
		t.Fatalf("Lines()=%d, want %d", got, want)
	}
	if got := d.Line(0); got != (Line{}) {
		t.Fatalf("Line(0)=%+v, want zero line", got)
	}
	if got := d.String(); got != "" {
		t.Fatalf("String()=%q, want empty", got)
	}
}

func TestDoc_LineAt(t *testing.T) {
	d := NewDoc("ab\ncd\n")

	cases := []struct {
		off     int
		wantRow int
	}{
		{off: -5, wantRow: 0},
		{off: 0, wantRow: 0},
		{off: 2, wantRow: 0}, // line break belongs to the line it ends
		{off: 3, wantRow: 1},
		{off: 5, wantRow: 1},
		{off: 6, wantRow: 2},
		{off: 100, wantRow: 2},
	}
	for _, tc := range cases {
		if got := d.LineAt(tc.off).Row; got != tc.wantRow {
			t.Fatalf("LineAt(%d).Row=%d, want %d", tc.off, got, tc.wantRow)
		}
	}
}

func TestDoc_Slice(t *testing.T) {
	d := NewDoc("hello\nwörld\n!")

	cases := []struct {
		from, to int
		want     string
	}{
		{from: 0, to: 5, want: "hello"},
		{from: 3, to: 8, want: "lo\nwö"},
		{from: 0, to: 13, want: "hello\nwörld\n!"},
		{from: 8, to: 3, want: "lo\nwö"},
		{from: 4, to: 4, want: ""},
		{from: -3, to: 2, want: "he"},
		{from: 12, to: 99, want: "!"},
	}
	for _, tc := range cases {
		if got := d.Slice(tc.from, tc.to); got != tc.want {
			t.Fatalf("Slice(%d,%d)=%q, want %q", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestDoc_PosOffsetConversion(t *testing.T) {
	d := NewDoc("ab\ncd")

	cases := []struct {
		name string
		off  int
		mode OffsetClampMode
		want Pos
		ok   bool
	}{
		{name: "bof", off: 0, mode: OffsetError, want: Pos{Row: 0, Col: 0}, ok: true},
		{name: "line-0-end", off: 2, mode: OffsetError, want: Pos{Row: 0, Col: 2}, ok: true},
		{name: "after-newline", off: 3, mode: OffsetError, want: Pos{Row: 1, Col: 0}, ok: true},
		{name: "eof", off: 5, mode: OffsetError, want: Pos{Row: 1, Col: 2}, ok: true},
		{name: "below-range-error", off: -1, mode: OffsetError, ok: false},
		{name: "above-range-error", off: 6, mode: OffsetError, ok: false},
		{name: "below-range-clamp", off: -1, mode: OffsetClamp, want: Pos{Row: 0, Col: 0}, ok: true},
		{name: "above-range-clamp", off: 6, mode: OffsetClamp, want: Pos{Row: 1, Col: 2}, ok: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := d.PosFromOffset(tc.off, tc.mode)
			if ok != tc.ok {
				t.Fatalf("ok=%v, want %v", ok, tc.ok)
			}
			if !ok {
				return
			}
			if got != tc.want {
				t.Fatalf("pos=%v, want %v", got, tc.want)
			}
			back, ok := d.OffsetFromPos(got, OffsetError)
			if !ok {
				t.Fatalf("OffsetFromPos(%v) failed", got)
			}
			if want := clampInt(tc.off, 0, d.Len()); back != want {
				t.Fatalf("round trip offset=%d, want %d", back, want)
			}
		})
	}

	if _, ok := d.OffsetFromPos(Pos{Row: 0, Col: 9}, OffsetError); ok {
		t.Fatalf("expected out-of-line column to fail in error mode")
	}
	if got, ok := d.OffsetFromPos(Pos{Row: 0, Col: 9}, OffsetClamp); !ok || got != 2 {
		t.Fatalf("clamped OffsetFromPos=(%d,%v), want (2,true)", got, ok)
	}
}
