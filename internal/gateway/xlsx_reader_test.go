package gateway

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"streetimport/internal/domain"
)

func createTempXLSX(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "import.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestXLSXRecordSource_ReadRecords(t *testing.T) {
	path := createTempXLSX(t, [][]any{
		{"Donor ID", " First Name ", "Amount"},
		{"D-1", "Jan", "15,00"},
		{"", "", ""},
		{"D-2", "Els"},
	})

	got, err := NewXLSXRecordSource().ReadRecords(context.Background(), path)
	require.NoError(t, err)

	header := []string{"Donor ID", "First Name", "Amount"}
	assert.Equal(t, []domain.Record{
		{
			Line:    2,
			Source:  "import.xlsx",
			Columns: header,
			Values:  map[string]string{"Donor ID": "D-1", "First Name": "Jan", "Amount": "15,00"},
		},
		{
			Line:    4,
			Source:  "import.xlsx",
			Columns: header,
			Values:  map[string]string{"Donor ID": "D-2", "First Name": "Els", "Amount": ""},
		},
	}, got)
}

func TestXLSXRecordSource_MissingFile(t *testing.T) {
	_, err := NewXLSXRecordSource().ReadRecords(context.Background(), filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
}

func TestFileRecordSource_DispatchesOnExtension(t *testing.T) {
	source := NewFileRecordSource(";")
	ctx := context.Background()

	csvPath := writeTempFile(t, "import.CSV", "Donor ID;Amount\nD-1;5\n")
	records, err := source.ReadRecords(ctx, csvPath)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "5", records[0].Get("Amount"))

	xlsxPath := createTempXLSX(t, [][]any{{"Donor ID"}, {"D-7"}})
	records, err = source.ReadRecords(ctx, xlsxPath)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "D-7", records[0].Get("Donor ID"))

	_, err = source.ReadRecords(ctx, "import.pdf")
	assert.ErrorContains(t, err, "unsupported input file type .pdf")
}
