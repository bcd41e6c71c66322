package bank

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Columns required in the upload format, in no particular order.
var requiredColumns = []string{
	"year", "category", "question",
	"option1", "option2", "option3", "option4", "option5",
	"answer",
}

// Load decodes a question bank from CSV. The first record is a header naming
// at least the required columns; extra columns are ignored. Undecodable bytes
// are replaced rather than rejected, so the bank always receives best-effort
// text.
func Load(r io.Reader) (*Bank, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("bank is empty: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(sanitize(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("bank header is missing column %q", name)
		}
	}

	field := func(record []string, name string) string {
		i := col[name]
		if i >= len(record) {
			return ""
		}
		return sanitize(record[i])
	}

	var rows []QuestionRow
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read bank line %d: %w", line, err)
		}
		row := QuestionRow{
			Sitting:  field(record, "year"),
			Category: field(record, "category"),
			Question: field(record, "question"),
			Answer:   field(record, "answer"),
		}
		for i := range row.Options {
			row.Options[i] = field(record, fmt.Sprintf("option%d", i+1))
		}
		rows = append(rows, row)
	}

	return New(rows), nil
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bank: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// sanitize replaces undecodable bytes so downstream display never sees
// invalid UTF-8.
func sanitize(s string) string {
	return strings.ToValidUTF8(s, "�")
}
