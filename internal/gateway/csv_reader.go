package gateway

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"streetimport/internal/domain"
)

const utf8BOM = "\ufeff"

// CSVRecordSource reads street import CSV files. The first row is the header.
type CSVRecordSource struct {
	delimiter rune
}

// NewCSVRecordSource creates a reader using the first rune of delimiter as
// field separator, ";" when empty.
func NewCSVRecordSource(delimiter string) *CSVRecordSource {
	r, _ := utf8.DecodeRuneInString(delimiter)
	if r == utf8.RuneError {
		r = ';'
	}
	return &CSVRecordSource{delimiter: r}
}

// ReadRecords reads and parses the file. Rows without any value are skipped.
func (s *CSVRecordSource) ReadRecords(ctx context.Context, path string) ([]domain.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = s.delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}
	header = cleanHeader(header)

	source := filepath.Base(path)
	var records []domain.Record
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}
		if isBlank(row) {
			continue
		}
		// physical line, quoted fields may span several
		line, _ := reader.FieldPos(0)
		records = append(records, domain.NewRecord(source, line, header, row))
	}
	return records, nil
}

func cleanHeader(header []string) []string {
	cleaned := make([]string, len(header))
	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, utf8BOM)
		}
		cleaned[i] = strings.TrimSpace(col)
	}
	return cleaned
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
