package gateway

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"streetimport/internal/domain"
)

// XLSXRecordSource reads the first sheet of a workbook. The first row is the
// header.
type XLSXRecordSource struct{}

// NewXLSXRecordSource creates a workbook reader.
func NewXLSXRecordSource() *XLSXRecordSource {
	return &XLSXRecordSource{}
}

// ReadRecords reads every non blank row of the first sheet.
func (s *XLSXRecordSource) ReadRecords(ctx context.Context, path string) ([]domain.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook %s has no sheet", path)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s of %s: %w", sheet, path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := cleanHeader(rows[0])
	source := filepath.Base(path)
	var records []domain.Record
	for i, row := range rows[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if isBlank(row) {
			continue
		}
		records = append(records, domain.NewRecord(source, i+2, header, row))
	}
	return records, nil
}

// FileRecordSource picks the reader from the file extension.
type FileRecordSource struct {
	csv  *CSVRecordSource
	xlsx *XLSXRecordSource
}

// NewFileRecordSource creates a reader for .csv, .txt and .xlsx files.
func NewFileRecordSource(delimiter string) *FileRecordSource {
	return &FileRecordSource{csv: NewCSVRecordSource(delimiter), xlsx: NewXLSXRecordSource()}
}

// ReadRecords dispatches on the extension of path.
func (s *FileRecordSource) ReadRecords(ctx context.Context, path string) ([]domain.Record, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		return s.xlsx.ReadRecords(ctx, path)
	case ".csv", ".txt", "":
		return s.csv.ReadRecords(ctx, path)
	default:
		return nil, fmt.Errorf("unsupported input file type %s", ext)
	}
}
