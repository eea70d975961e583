package leads

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// sampleRows is how many data rows a preview keeps for display.
const sampleRows = 5

// nameColumns are the header names that satisfy the name requirement.
// The backend accepts either a single full_name column or a
// first_name/last_name pair.
var nameColumns = []string{"full_name", "first_name"}

// Preview summarizes a CSV file before it is uploaded, so the user
// sees what they are about to import and obvious format problems are
// caught locally instead of as a 422 from the backend.
type Preview struct {
	// Headers is the first row, normalized to lower case.
	Headers []string

	// RowCount is the number of data rows (header excluded).
	RowCount int

	// Sample holds the first few data rows.
	Sample [][]string
}

// PreviewCSV parses the CSV from r and validates its header. The file
// must have a header row with a name column; ragged rows fail the
// whole preview.
func PreviewCSV(r io.Reader) (*Preview, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("CSV file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	headers := make([]string, len(header))
	for i, h := range header {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}
	if !hasNameColumn(headers) {
		return nil, fmt.Errorf("CSV header %v has no name column: expected %s",
			headers, strings.Join(nameColumns, " or "))
	}

	preview := &Preview{Headers: headers}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", preview.RowCount+2, err)
		}
		preview.RowCount++
		if len(preview.Sample) < sampleRows {
			preview.Sample = append(preview.Sample, row)
		}
	}

	if preview.RowCount == 0 {
		return nil, fmt.Errorf("CSV file has a header but no data rows")
	}
	return preview, nil
}

func hasNameColumn(headers []string) bool {
	for _, h := range headers {
		for _, want := range nameColumns {
			if h == want {
				return true
			}
		}
	}
	return false
}
