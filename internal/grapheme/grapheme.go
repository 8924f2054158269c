// Package grapheme measures text for terminal rendering.
package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Width returns the terminal cell width of text. Clusters that runewidth
// reports as zero-width fall back to uniseg's estimate.
func Width(text string) int {
	total := 0
	for _, cluster := range Split(text) {
		total += clusterWidth(cluster)
	}
	return total
}

func clusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	return w
}

// Truncate cuts text to at most cells terminal cells without splitting a
// cluster, then pads with spaces to exactly cells.
func Truncate(text string, cells int) string {
	if cells <= 0 {
		return ""
	}
	var sb strings.Builder
	used := 0
	for _, cluster := range Split(text) {
		w := clusterWidth(cluster)
		if used+w > cells {
			break
		}
		sb.WriteString(cluster)
		used += w
	}
	if used < cells {
		sb.WriteString(strings.Repeat(" ", cells-used))
	}
	return sb.String()
}
