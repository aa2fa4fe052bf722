package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"text/template"
)

type currency struct {
	Name  string
	Code  string
	Num   string
	Scale int
}

var (
	codeRe = regexp.MustCompile(`^[A-Z]{3}$`)
	numRe  = regexp.MustCompile(`^[0-9]{3}$`)
)

func main() {
	recs, err := readCsvFile(filepath.Join("scripts", "currency", "currency_data.csv"))
	if err != nil {
		panic(fmt.Errorf("reading CSV file: %w", err))
	}

	currs, err := convertRecords(recs)
	if err != nil {
		panic(fmt.Errorf("converting records: %w", err))
	}

	code, err := generateGoCode(filepath.Join("scripts", "currency", "currency_data.tmpl"), currs)
	if err != nil {
		panic(fmt.Errorf("generating Go code: %w", err))
	}

	if err := os.WriteFile("currency_data.go", code, 0o644); err != nil { //nolint:gosec
		panic(fmt.Errorf("writing Go code: %w", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	reader := csv.NewReader(in)
	reader.FieldsPerRecord = 4
	if _, err := reader.Read(); err != nil { // header
		return nil, err
	}
	return reader.ReadAll()
}

// convertRecords validates the records and orders them by code.
// XXX always comes first: it is the descriptor of the zero value.
func convertRecords(recs [][]string) ([]currency, error) {
	codes := make(map[string]bool, len(recs))
	nums := make(map[string]bool, len(recs))
	currs := make([]currency, 0, len(recs))
	for i, rec := range recs {
		curr := currency{Name: rec[0], Code: rec[1], Num: rec[2]}
		switch {
		case !codeRe.MatchString(curr.Code):
			return nil, fmt.Errorf("line %d: invalid code %q", i+2, curr.Code)
		case !numRe.MatchString(curr.Num):
			return nil, fmt.Errorf("line %d: invalid numeric code %q", i+2, curr.Num)
		case codes[curr.Code]:
			return nil, fmt.Errorf("line %d: duplicate code %q", i+2, curr.Code)
		case nums[curr.Num]:
			return nil, fmt.Errorf("line %d: duplicate numeric code %q", i+2, curr.Num)
		}
		scale, err := strconv.Atoi(rec[3])
		if err != nil || scale < 0 || scale > 18 {
			return nil, fmt.Errorf("line %d: invalid scale %q", i+2, rec[3])
		}
		curr.Scale = scale
		codes[curr.Code] = true
		nums[curr.Num] = true
		currs = append(currs, curr)
	}
	slices.SortFunc(currs, func(a, b currency) int {
		switch {
		case a.Code == b.Code:
			return 0
		case a.Code == "XXX":
			return -1
		case b.Code == "XXX":
			return 1
		case a.Code < b.Code:
			return -1
		}
		return 1
	})
	return currs, nil
}

func generateGoCode(filename string, currs []currency) ([]byte, error) {
	tmpl, err := template.New(filepath.Base(filename)).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	if err := tmpl.Execute(&output, currs); err != nil {
		return nil, err
	}

	return format.Source(output.Bytes())
}
