package gateway

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streetimport/internal/domain"
)

func TestCSVRecordSource_ReadRecords(t *testing.T) {
	tests := []struct {
		name      string
		delimiter string
		lines     []string
		expected  []domain.Record
	}{
		{
			name:      "semicolon separated with header",
			delimiter: ";",
			lines: []string{
				"Donor ID;First Name;Last Name",
				"D-1;Jan;Peeters",
				"D-2;Els;Wouters",
			},
			expected: []domain.Record{
				{
					Line:    2,
					Source:  "import.csv",
					Columns: []string{"Donor ID", "First Name", "Last Name"},
					Values:  map[string]string{"Donor ID": "D-1", "First Name": "Jan", "Last Name": "Peeters"},
				},
				{
					Line:    3,
					Source:  "import.csv",
					Columns: []string{"Donor ID", "First Name", "Last Name"},
					Values:  map[string]string{"Donor ID": "D-2", "First Name": "Els", "Last Name": "Wouters"},
				},
			},
		},
		{
			name:      "byte order mark and padded header",
			delimiter: ",",
			lines: []string{
				"\ufeffDonor ID , Amount",
				"D-1,\"1.234,56\"",
			},
			expected: []domain.Record{
				{
					Line:    2,
					Source:  "import.csv",
					Columns: []string{"Donor ID", "Amount"},
					Values:  map[string]string{"Donor ID": "D-1", "Amount": "1.234,56"},
				},
			},
		},
		{
			name:      "blank rows are skipped but keep line numbers",
			delimiter: ";",
			lines: []string{
				"Donor ID;Amount",
				";",
				"D-3;10",
			},
			expected: []domain.Record{
				{
					Line:    3,
					Source:  "import.csv",
					Columns: []string{"Donor ID", "Amount"},
					Values:  map[string]string{"Donor ID": "D-3", "Amount": "10"},
				},
			},
		},
		{
			name:      "quoted line breaks keep physical line numbers",
			delimiter: ";",
			lines: []string{
				"Donor ID;Notes",
				"D-1;\"first",
				"second\"",
				"",
				"D-2;x",
			},
			expected: []domain.Record{
				{
					Line:    2,
					Source:  "import.csv",
					Columns: []string{"Donor ID", "Notes"},
					Values:  map[string]string{"Donor ID": "D-1", "Notes": "first\nsecond"},
				},
				{
					Line:    5,
					Source:  "import.csv",
					Columns: []string{"Donor ID", "Notes"},
					Values:  map[string]string{"Donor ID": "D-2", "Notes": "x"},
				},
			},
		},
		{
			name:      "short rows are padded",
			delimiter: ";",
			lines: []string{
				"Donor ID;Amount;IBAN",
				"D-4;5",
			},
			expected: []domain.Record{
				{
					Line:    2,
					Source:  "import.csv",
					Columns: []string{"Donor ID", "Amount", "IBAN"},
					Values:  map[string]string{"Donor ID": "D-4", "Amount": "5", "IBAN": ""},
				},
			},
		},
		{
			name:      "header only",
			delimiter: ";",
			lines:     []string{"Donor ID;Amount"},
			expected:  nil,
		},
		{
			name:      "empty delimiter defaults to semicolon",
			delimiter: "",
			lines: []string{
				"Donor ID;Amount",
				"D-5;7",
			},
			expected: []domain.Record{
				{
					Line:    2,
					Source:  "import.csv",
					Columns: []string{"Donor ID", "Amount"},
					Values:  map[string]string{"Donor ID": "D-5", "Amount": "7"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, "import.csv", strings.Join(tt.lines, "\n")+"\n")

			got, err := NewCSVRecordSource(tt.delimiter).ReadRecords(context.Background(), path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCSVRecordSource_FileErrors(t *testing.T) {
	source := NewCSVRecordSource(";")

	t.Run("file not found", func(t *testing.T) {
		_, err := source.ReadRecords(context.Background(), "nonexistent_file.csv")
		assert.Error(t, err)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeTempFile(t, "empty.csv", "")
		got, err := source.ReadRecords(context.Background(), path)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("cancelled context", func(t *testing.T) {
		path := writeTempFile(t, "import.csv", "Donor ID\nD-1\n")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := source.ReadRecords(ctx, path)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
