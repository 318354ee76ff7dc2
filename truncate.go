package uniscan

import "github.com/clipperhouse/uniscan/internal/codepoints"

// cluster is one grapheme cluster found while truncating: its byte span
// in the original buffer and its display width.
type cluster struct {
	start, end int
	width      int
}

// clusters groups cps into grapheme clusters using [Breakable] and the
// VS15/VS16 width-forcing rule from spec §4.5/§6, the same rule
// [uniscan/line.LineSegmenter] applies incrementally. This one-shot
// version trades resumability for simplicity, since [TruncateString] and
// [TruncateBytes] always see a complete buffer.
func clusters(cps []codepoints.Codepoint, o Options) []cluster {
	if len(cps) == 0 {
		return nil
	}

	var out []cluster
	var ri RegionalIndicatorCounter
	start := cps[0].Start
	end := cps[0].End
	width := o.Width(cps[0].Rune)
	hint := cps[0].Rune
	ri.Observe(Lookup(hint).GraphemeClusterBreak)

	for i := 1; i < len(cps); i++ {
		cp := cps[i]
		if Breakable(&ri, hint, cp.Rune) {
			out = append(out, cluster{start, end, width})
			start = cp.Start
			end = cp.End
			width = o.Width(cp.Rune)
		} else {
			switch cp.Rune {
			case 0xFE0F: // VS16
				width = 2
			case 0xFE0E: // VS15
				// never narrows
			}
			end = cp.End
		}
		hint = cp.Rune
		ri.Observe(Lookup(cp.Rune).GraphemeClusterBreak)
	}
	out = append(out, cluster{start, end, width})
	return out
}

// TruncateString truncates s to maxWidth display columns, appending tail
// if truncation occurred. The result's width, including tail, is at most
// maxWidth; s is never split mid-cluster.
func (o Options) TruncateString(s string, maxWidth int, tail string) string {
	return string(o.TruncateBytes([]byte(s), maxWidth, []byte(tail)))
}

// TruncateString truncates s to maxWidth using [DefaultOptions].
func TruncateString(s string, maxWidth int, tail string) string {
	return DefaultOptions.TruncateString(s, maxWidth, tail)
}

// TruncateBytes truncates b to maxWidth display columns, appending tail if
// truncation occurred. The result's width, including tail, is at most
// maxWidth; b is never split mid-cluster.
func (o Options) TruncateBytes(b []byte, maxWidth int, tail []byte) []byte {
	budget := maxWidth - o.bytesWidth(tail)

	var pos, total int
	for _, c := range clusters(codepoints.Decode(b), o) {
		if total+c.width <= budget {
			pos = c.end
		}
		total += c.width
		if total > maxWidth {
			result := make([]byte, 0, pos+len(tail))
			result = append(result, b[:pos]...)
			result = append(result, tail...)
			return result
		}
	}
	return b
}

// TruncateBytes truncates b to maxWidth using [DefaultOptions].
func TruncateBytes(b []byte, maxWidth int, tail []byte) []byte {
	return DefaultOptions.TruncateBytes(b, maxWidth, tail)
}

// bytesWidth sums the display width of every grapheme cluster in b.
func (o Options) bytesWidth(b []byte) int {
	total := 0
	for _, c := range clusters(codepoints.Decode(b), o) {
		total += c.width
	}
	return total
}
