/*
Package uniscan implements the low-level Unicode text-scanning primitives
that terminal emulators and similar renderers build on: codepoint property
lookup, incremental UTF-8 decoding, grapheme-cluster boundary detection, and
an ASCII fast path. Higher-level, width-bounded and multi-codepoint
segmenters live in the sibling packages:

  - [uniscan/line] — width-bounded grapheme-cluster scanning over a
    streamed, possibly mid-codepoint, byte buffer.
  - [uniscan/script] — Unicode script segmentation (UAX #24).
  - [uniscan/emoji] — emoji-presentation segmentation (UTS #51).
  - [uniscan/run] — script and emoji segmentation combined into shaping
    runs.

# Property lookup

[Lookup] resolves a rune to its [CodepointProperties] in O(1) via a
three-stage compressed table (see [PropertyTables]). The tables are built
once, from curated Unicode range data, at package initialization; see
internal/gen for the offline tool that derives comparable range lists from
the real UCD text files.

# Display width

[Width] and [Options.Width] compute the column width of a single rune,
honoring East Asian Width and emoji-presentation rules. For whole strings,
[String] and [Bytes] sum widths grapheme cluster by grapheme cluster, since
a grapheme cluster's width is not simply the sum of its codepoints' widths
(variation selectors can change it); the [uniscan/line] package does the
same incrementally over a width budget.

# UTF-8 decoding

[DecoderState] and [Feed] implement a resumable, byte-at-a-time UTF-8
decoder suitable for streaming input that may be split at arbitrary byte
boundaries, including mid-codepoint.

# Grapheme boundaries

[Breakable] implements the per-pair rules of UAX #29 (GB1-GB999). Rules
GB12/GB13, which require tracking a run of Regional_Indicator codepoints,
need the stateful [RegionalIndicatorCounter] companion.
*/
package uniscan
