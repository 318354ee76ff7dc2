// Package main derives the offline Unicode range tables that
// rangetables.go's curated data approximates, by downloading and parsing
// the current UCD text files (EastAsianWidth.txt, emoji-data.txt) plus
// Go's own unicode package range tables for general-category classes.
//
// It is not wired into `go generate` here: the module ships with
// rangetables.go's hand-curated subset rather than this tool's full
// UCD-derived output, so a maintainer runs this deliberately when
// widening coverage, then reconciles the two by hand; no test compares
// them.
package main

import (
	"fmt"
	"log"
	"path/filepath"
)

func main() {
	fmt.Println("Deriving Unicode range tables from the UCD...")

	data, err := ParseUnicodeData()
	if err != nil {
		log.Fatalf("failed to parse Unicode data: %v", err)
	}

	tables := GenerateRangeTables(data)

	outputPath := filepath.Join("..", "..", "generated_rangetables.go")
	if err := WriteRangeTablesGo(tables, outputPath); err != nil {
		log.Fatalf("failed to write generated range tables: %v", err)
	}

	fmt.Println("done")
}
