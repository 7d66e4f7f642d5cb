package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"
)

type currency struct {
	Name      string
	Code      string
	Num       string
	Subunits  string
	Precision string
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join("scripts", "currency", "currency_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	// Convert the CSV records to a list of Currency objects
	currs, err := convertDataToCurrencies(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %v", err))
	}

	// Generate Go code from the Currency objects using a template
	code, err := generateGoCode(filepath.Join("scripts", "currency", "currency_data.tmpl"), currs)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("currency_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	// Open the CSV file
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	// Read the CSV records
	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	recs, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return recs, nil
}

func convertDataToCurrencies(data [][]string) ([]currency, error) {
	// Sort the CSV records by currency code, XXX and XTS go first
	rank := func(code string) int {
		switch code {
		case "XXX":
			return 0
		case "XTS":
			return 1
		}
		return 2
	}
	less := func(i, j int) bool {
		a, b := data[i][1], data[j][1]
		if rank(a) != rank(b) {
			return rank(a) < rank(b)
		}
		return a < b
	}
	sort.Slice(data, less)

	// Convert the CSV records to Currency objects
	currs := []currency{}
	for _, rec := range data {
		if len(rec) != 5 {
			return nil, fmt.Errorf("record %v: want 5 fields, got %v", rec, len(rec))
		}
		if err := checkRegistryFacts(rec[3], rec[4]); err != nil {
			return nil, fmt.Errorf("currency %v: %w", rec[1], err)
		}
		curr := currency{
			Name:      rec[0],
			Code:      rec[1],
			Num:       rec[2],
			Subunits:  rec[3],
			Precision: rec[4],
		}
		currs = append(currs, curr)
	}
	if len(currs) > 256 {
		return nil, fmt.Errorf("too many currencies: %v", len(currs))
	}
	return currs, nil
}

// checkRegistryFacts verifies that the number of sub-units is a positive power
// of ten and that the display precision is a small non-negative number.
func checkRegistryFacts(subunits, precision string) error {
	n, err := strconv.ParseInt(subunits, 10, 64)
	if err != nil {
		return err
	}
	if n < 1 {
		return fmt.Errorf("sub-units must be positive, got %v", n)
	}
	for n%10 == 0 {
		n /= 10
	}
	if n != 1 {
		return fmt.Errorf("sub-units must be a power of ten, got %v", subunits)
	}
	p, err := strconv.Atoi(precision)
	if err != nil {
		return err
	}
	if p < 0 || p > 9 {
		return fmt.Errorf("precision must be within [0, 9], got %v", p)
	}
	return nil
}

func generateGoCode(filename string, currs []currency) ([]byte, error) {
	// Create a new template object from the template file
	fmap := template.FuncMap{
		"lower": strings.ToLower,
	}
	tmpl, err := template.New(filepath.Base(filename)).Funcs(fmap).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	// Execute the template
	var output bytes.Buffer
	err = tmpl.Execute(&output, currs)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeToFile(filename string, content []byte) error {
	// Write the content to a file
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	err = writer.Flush()
	if err != nil {
		return err
	}
	return nil
}
