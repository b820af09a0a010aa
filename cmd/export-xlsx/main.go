package main

import (
	"flag"
	"log"
	"strings"

	"rte-collector/internal/export"
)

var (
	in  = flag.String("in", "", "CSV snapshot to convert (required)")
	out = flag.String("out", "", "output .xlsx path (default: input with .xlsx extension)")
)

// export-xlsx converts a CSV snapshot into a spreadsheet for manual analysis.
func main() {
	flag.Parse()

	if *in == "" {
		log.Fatal("-in is required")
	}

	target := *out
	if target == "" {
		target = strings.TrimSuffix(*in, ".csv") + ".xlsx"
	}

	records, err := export.ReadCSV(*in)
	if err != nil {
		log.Fatal("Failed to read snapshot: ", err)
	}

	if err := export.WriteXLSX(records, target); err != nil {
		log.Fatal("Failed to write spreadsheet: ", err)
	}

	log.Printf("Saved %s (%d rows)", target, len(records))
}
