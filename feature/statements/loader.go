package statements

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"mini-reconcile/core/table"
	"mini-reconcile/core/utils"
)

// ParseCSV reads a statement CSV into a dataset. The first record is the
// header; cells are inferred into scalar kinds (int64, float64, bool,
// string; empty cells become nil). The label names the dataset in errors,
// e.g. "Internal System Export" or "Provider Statement".
func ParseCSV(r io.Reader, label string) (*table.Dataset, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: file is empty", label)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read header: %w", label, err)
	}

	dataset := table.New(header...)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: failed to parse CSV: %w", label, err)
		}

		row := make(table.Row, len(header))
		for i, name := range header {
			row[name] = utils.InferScalar(record[i])
		}
		dataset.Append(row)
	}

	return dataset, nil
}

// LoadCSVFile reads a statement CSV from disk.
func LoadCSVFile(path, label string) (*table.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open %s: %w", label, path, err)
	}
	defer f.Close()

	return ParseCSV(f, label)
}
