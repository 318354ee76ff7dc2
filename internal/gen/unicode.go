// This file handles parsing of Unicode data files for string width calculation
package main

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
)

// UnicodeData contains all the parsed Unicode character properties
type UnicodeData struct {
	EastAsianWidth       map[rune]string // From EastAsianWidth.txt
	ExtendedPictographic map[rune]bool   // From emoji-data.txt (Extended_Pictographic property)
	EmojiPresentation    map[rune]bool   // From emoji-data.txt (Emoji_Presentation property)
	RegionalIndicator    map[rune]bool   // From emoji-data.txt (Regional Indicator symbols, range 1F1E6..1F1FF)
	ControlChars         map[rune]bool   // From Go stdlib
	CombiningMarks       map[rune]bool   // From Go stdlib (Mn, Me only - Mc excluded for proper width)
	ZeroWidthChars       map[rune]bool   // Special zero-width characters
}

// ParseUnicodeData downloads and parses all required Unicode data files
func ParseUnicodeData() (*UnicodeData, error) {
	data := &UnicodeData{
		EastAsianWidth:       make(map[rune]string),
		ExtendedPictographic: make(map[rune]bool),
		EmojiPresentation:    make(map[rune]bool),
		RegionalIndicator:    make(map[rune]bool),
		ControlChars:         make(map[rune]bool),
		CombiningMarks:       make(map[rune]bool),
		ZeroWidthChars:       make(map[rune]bool),
	}

	// Create data directory
	dataDir := "data"
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %v", err)
	}

	// Download and parse EastAsianWidth.txt
	eawFile := filepath.Join(dataDir, "EastAsianWidth.txt")
	if err := downloadFile("https://unicode.org/Public/16.0.0/ucd/EastAsianWidth.txt", eawFile); err != nil {
		return nil, fmt.Errorf("failed to download EastAsianWidth.txt: %v", err)
	}
	if err := parseEastAsianWidth(eawFile, data); err != nil {
		return nil, fmt.Errorf("failed to parse EastAsianWidth.txt: %v", err)
	}

	// Download and parse emoji-data.txt (Unicode 16.0.0 / Emoji 16.0)
	emojiFile := filepath.Join(dataDir, "emoji-data.txt")
	if err := downloadFile("https://unicode.org/Public/16.0.0/ucd/emoji/emoji-data.txt", emojiFile); err != nil {
		fmt.Printf("Warning: failed to download emoji-data.txt: %v\n", err)
		fmt.Println("Continuing with basic emoji detection from Go stdlib...")
	} else {
		if err := parseEmojiData(emojiFile, data); err != nil {
			fmt.Printf("Warning: failed to parse emoji-data.txt: %v\n", err)
			fmt.Println("Continuing with basic emoji detection from Go stdlib...")
		}
	}

	extractStdlibData(data)

	return data, nil
}

// downloadFile downloads a file from URL to local path
func downloadFile(url, filepath string) error {
	// Check if file already exists
	if _, err := os.Stat(filepath); err == nil {
		fmt.Printf("File %s already exists, skipping download\n", filepath)
		return nil
	}

	fmt.Printf("Downloading %s...\n", url)
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad status: %s", resp.Status)
	}

	out, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	if err != nil {
		return err
	}

	fmt.Printf("Downloaded %s\n", filepath)
	return nil
}

// parseEastAsianWidth parses the EastAsianWidth.txt file
func parseEastAsianWidth(filename string, data *UnicodeData) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ";")
		if len(parts) < 2 {
			continue
		}

		rangeStr := strings.TrimSpace(parts[0])
		widthStr := strings.TrimSpace(parts[1])

		// Remove comments from width string
		if commentIndex := strings.Index(widthStr, "#"); commentIndex != -1 {
			widthStr = strings.TrimSpace(widthStr[:commentIndex])
		}

		// Parse range
		if strings.Contains(rangeStr, "..") {
			// Range of codepoints
			rangeParts := strings.Split(rangeStr, "..")
			if len(rangeParts) != 2 {
				continue
			}
			start, err1 := strconv.ParseInt(rangeParts[0], 16, 32)
			end, err2 := strconv.ParseInt(rangeParts[1], 16, 32)
			if err1 != nil || err2 != nil {
				continue
			}
			for r := rune(start); r <= rune(end); r++ {
				data.EastAsianWidth[r] = widthStr
			}
		} else {
			// Single codepoint
			codepoint, err := strconv.ParseInt(rangeStr, 16, 32)
			if err != nil {
				continue
			}
			data.EastAsianWidth[rune(codepoint)] = widthStr
		}
	}

	return scanner.Err()
}

// parseEmojiData parses the emoji-data.txt file for Extended_Pictographic and Emoji_Presentation
func parseEmojiData(filename string, data *UnicodeData) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse line format: <codepoint(s)> ; <property> # <comments>
		parts := strings.Split(line, ";")
		if len(parts) < 2 {
			continue
		}

		rangeStr := strings.TrimSpace(parts[0])
		propertyStr := strings.TrimSpace(parts[1])

		// Remove comments from property string
		if commentIndex := strings.Index(propertyStr, "#"); commentIndex != -1 {
			propertyStr = strings.TrimSpace(propertyStr[:commentIndex])
		}

		var r1, r2 rune

		// Parse range
		if strings.Contains(rangeStr, "..") {
			// Range of codepoints
			rangeParts := strings.Split(rangeStr, "..")
			if len(rangeParts) != 2 {
				continue
			}
			start, err1 := strconv.ParseInt(rangeParts[0], 16, 32)
			end, err2 := strconv.ParseInt(rangeParts[1], 16, 32)
			if err1 != nil || err2 != nil {
				continue
			}
			r1, r2 = rune(start), rune(end)
		} else {
			// Single codepoint
			codepoint, err := strconv.ParseInt(rangeStr, 16, 32)
			if err != nil {
				continue
			}
			r1, r2 = rune(codepoint), rune(codepoint)
		}

		// Skip characters below 0xFF (ASCII range is handled specially)
		if r2 < 0xFF {
			continue
		}

		// Check if this is a Regional Indicator character (range 1F1E6..1F1FF)
		// Regional Indicator characters can appear with any property, but we identify them by range
		const regionalIndicatorStart = 0x1F1E6
		const regionalIndicatorEnd = 0x1F1FF
		if r1 >= regionalIndicatorStart && r2 <= regionalIndicatorEnd {
			// Add all Regional Indicator characters to the RegionalIndicator map
			for r := r1; r <= r2; r++ {
				data.RegionalIndicator[r] = true
			}
			// Don't add them to ExtendedPictographic or EmojiPresentation maps
			continue
		}

		// We're only interested in Extended_Pictographic and Emoji_Presentation for non-Regional Indicator characters
		if propertyStr != "Extended_Pictographic" && propertyStr != "Emoji_Presentation" {
			continue
		}

		// Add to the appropriate map
		for r := r1; r <= r2; r++ {
			switch propertyStr {
			case "Extended_Pictographic":
				data.ExtendedPictographic[r] = true
			case "Emoji_Presentation":
				data.EmojiPresentation[r] = true
			}
		}
	}

	return scanner.Err()
}

// extractStdlibData extracts character properties from Go's unicode package
func extractStdlibData(data *UnicodeData) {
	// Extract control characters
	// Skip 0x00-0x1F and 0x7F, which the runtime's curated tables already classify as Cc
	// Only add C1 controls (0x80-0x9F) which are multi-byte in UTF-8
	for r := rune(0x80); r <= 0x9F; r++ {
		data.ControlChars[r] = true // C1 controls
	}

	// Extract combining marks using range tables for efficiency
	// Mn: Nonspacing_Mark, Me: Enclosing_Mark
	// Note: Mc (Spacing Mark) characters are excluded so they get default width 1
	extractRunesFromRangeTable(unicode.Mn, data.CombiningMarks)
	extractRunesFromRangeTable(unicode.Me, data.CombiningMarks)

	// Cf (Other, format) is the official Unicode category for format characters
	// which are generally invisible and have zero width.
	extractRunesFromRangeTable(unicode.Cf, data.ZeroWidthChars)

	// Zl (Other, line separator) is the official Unicode category for line separator characters
	// which are generally invisible and have zero width.
	extractRunesFromRangeTable(unicode.Zl, data.ZeroWidthChars)

	// Zp (Other, paragraph separator) is the official Unicode category for paragraph separator characters
	// which are generally invisible and have zero width.
	extractRunesFromRangeTable(unicode.Zp, data.ZeroWidthChars)

	// Noncharacters (U+nFFFE and U+nFFFF)
	data.ZeroWidthChars[0xFFFE] = true
	data.ZeroWidthChars[0xFFFF] = true
}

// extractRunesFromRangeTable efficiently extracts all runes from a Unicode range table
func extractRunesFromRangeTable(table *unicode.RangeTable, target map[rune]bool) {
	// Iterate over 16-bit ranges
	for _, r16 := range table.R16 {
		for r := rune(r16.Lo); r <= rune(r16.Hi); r += rune(r16.Stride) {
			target[r] = true
		}
	}

	// Iterate over 32-bit ranges
	for _, r32 := range table.R32 {
		for r := rune(r32.Lo); r <= rune(r32.Hi); r += rune(r32.Stride) {
			target[r] = true
		}
	}
}

// codeRange is a contiguous [Lo, Hi] span sharing one classification,
// the shape the runtime's rangetables.go curated tables and tables.go's
// block compressor both expect.
type codeRange struct {
	Lo, Hi rune
}

// coalesce turns a set of runes into the minimal sorted
// list of contiguous ranges, the same reduction rangetables.go's curated
// entries perform by hand.
func coalesce(runes map[rune]bool) []codeRange {
	if len(runes) == 0 {
		return nil
	}
	sorted := make([]rune, 0, len(runes))
	for r := range runes {
		sorted = append(sorted, r)
	}
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}

	var out []codeRange
	lo, hi := sorted[0], sorted[0]
	for _, r := range sorted[1:] {
		if r == hi+1 {
			hi = r
			continue
		}
		out = append(out, codeRange{lo, hi})
		lo, hi = r, r
	}
	out = append(out, codeRange{lo, hi})
	return out
}

// eawRangesByClass buckets EastAsianWidth.txt assignments into four
// buckets: Fullwidth, Wide, Ambiguous and Halfwidth; Narrow and Neutral
// assignments are left out.
func eawRangesByClass(data *UnicodeData) map[string][]codeRange {
	byClass := map[string]map[rune]bool{"F": {}, "W": {}, "A": {}, "H": {}}
	for r, class := range data.EastAsianWidth {
		if set, ok := byClass[class]; ok {
			set[r] = true
		}
	}
	result := make(map[string][]codeRange, len(byClass))
	for class, set := range byClass {
		result[class] = coalesce(set)
	}
	return result
}

// emojiPresentationRangesFrom coalesces the Extended_Pictographic +
// Emoji_Presentation intersection, the set tables.go's FlagEmojiPresentation
// derives from at runtime (see dense[c].Flags |= FlagEmojiPresentation).
func emojiPresentationRangesFrom(data *UnicodeData) []codeRange {
	set := map[rune]bool{}
	for r := range data.ExtendedPictographic {
		if data.EmojiPresentation[r] {
			set[r] = true
		}
	}
	return coalesce(set)
}

// zeroWidthGeneralCategoryRanges coalesces the codepoints the generator
// treats as zero columns: Mn, Me, Cf, and the line/paragraph separators
// and noncharacters folded in alongside them (CombiningMarks plus
// ZeroWidthChars).
func zeroWidthGeneralCategoryRanges(data *UnicodeData) []codeRange {
	set := map[rune]bool{}
	for r := range data.CombiningMarks {
		set[r] = true
	}
	for r := range data.ZeroWidthChars {
		set[r] = true
	}
	return coalesce(set)
}

// GeneratedTables is the offline-derived counterpart of rangetables.go's
// hand-curated var blocks, built from the live UCD text files instead of
// a maintainer's judgment call about test coverage.
type GeneratedTables struct {
	EastAsianWidth    map[string][]codeRange // "F", "W", "A", "H"
	EmojiPresentation []codeRange
	ZeroWidth         []codeRange
}

// GenerateRangeTables reduces a parsed UnicodeData into the range lists
// WriteRangeTablesGo renders as Go source.
func GenerateRangeTables(data *UnicodeData) *GeneratedTables {
	return &GeneratedTables{
		EastAsianWidth:    eawRangesByClass(data),
		EmojiPresentation: emojiPresentationRangesFrom(data),
		ZeroWidth:         zeroWidthGeneralCategoryRanges(data),
	}
}

// WriteRangeTablesGo renders t as a Go source file declaring
// generatedEawRanges, generatedEmojiPresentationRanges, and
// generatedZeroWidthRanges — inputs a maintainer can diff against
// rangetables.go's curated entries when widening coverage.
func WriteRangeTablesGo(t *GeneratedTables, outputPath string) error {
	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	fmt.Fprintln(w, "// Code generated by internal/gen from the Unicode Character Database. DO NOT EDIT.")
	fmt.Fprintln(w, "package uniscan")
	fmt.Fprintln(w)

	writeClass := func(name string, class string) {
		fmt.Fprintf(w, "var %s = []runeRange{\n", name)
		for _, r := range t.EastAsianWidth[class] {
			fmt.Fprintf(w, "\t{0x%X, 0x%X},\n", r.Lo, r.Hi)
		}
		fmt.Fprintln(w, "}")
		fmt.Fprintln(w)
	}
	writeClass("generatedEawFullwidthRanges", "F")
	writeClass("generatedEawWideRanges", "W")
	writeClass("generatedEawAmbiguousRanges", "A")
	writeClass("generatedEawHalfwidthRanges", "H")

	fmt.Fprintln(w, "var generatedEmojiPresentationRanges = []runeRange{")
	for _, r := range t.EmojiPresentation {
		fmt.Fprintf(w, "\t{0x%X, 0x%X},\n", r.Lo, r.Hi)
	}
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "var generatedZeroWidthRanges = []runeRange{")
	for _, r := range t.ZeroWidth {
		fmt.Fprintf(w, "\t{0x%X, 0x%X},\n", r.Lo, r.Hi)
	}
	fmt.Fprintln(w, "}")

	return w.Flush()
}
