package excelify

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2024, time.March, 5, 7, 8, 9, 0, time.UTC)

func TestTimestamp(t *testing.T) {
	assert.Equal(t, "20240305-070809", Timestamp(fixedNow))
}

func TestDeriveSheetName(t *testing.T) {
	tests := []struct {
		name        string
		requested   string
		basis       string
		expected    string
		truncated   bool
		originalLen int
	}{
		{"default from short basis", "", "df", "df_20240305-070809", false, 18},
		{"default basis of exactly 15", "", strings.Repeat("b", 15), strings.Repeat("b", 15) + "_20240305-070809", false, 31},
		{"default basis of 16 is cut", "", strings.Repeat("b", 16), strings.Repeat("b", 15) + "_20240305-070809", true, 32},
		{"requested verbatim", "Summary", "df", "Summary", false, 7},
		{"requested of exactly 31", strings.Repeat("s", 31), "df", strings.Repeat("s", 31), false, 31},
		{"requested of 32 is cut", strings.Repeat("s", 32), "df", strings.Repeat("s", 31), true, 32},
		{"requested counts code points", strings.Repeat("表", 32), "df", strings.Repeat("表", 31), true, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveSheetName(tt.requested, tt.basis, fixedNow)
			assert.Equal(t, tt.expected, got.Name)
			assert.Equal(t, tt.truncated, got.Truncated)
			assert.Equal(t, tt.originalLen, got.OriginalLen)
			assert.LessOrEqual(t, len([]rune(got.Name)), MaxSheetNameLen)
		})
	}
}

func TestDeriveSheetNameIsIdempotent(t *testing.T) {
	for n := 1; n <= MaxSheetNameLen; n++ {
		name := strings.Repeat("x", n)
		got := DeriveSheetName(name, "ignored", fixedNow)
		assert.Equal(t, name, got.Name)
		assert.False(t, got.Truncated)

		again := DeriveSheetName(got.Name, "ignored", fixedNow)
		assert.Equal(t, got, again)
	}
}

func TestTargetPath(t *testing.T) {
	tests := []struct {
		filepath string
		basis    string
		expected string
	}{
		{"", "series", "series_20240305-070809.xlsx"},
		{"", "all_data", "all_data_20240305-070809.xlsx"},
		{"out", "df", "out.xlsx"},
		{"out.xlsx", "df", "out.xlsx"},
		{"dir/report.xlsx", "df", "dir/report.xlsx"},
		{"out.XLSX", "df", "out.XLSX.xlsx"},
		{"out.xlsx.bak", "df", "out.xlsx.bak.xlsx"},
	}

	for _, tt := range tests {
		result := TargetPath(tt.filepath, tt.basis, fixedNow)
		if result != tt.expected {
			t.Errorf("TargetPath(%q, %q) = %q, expected %q", tt.filepath, tt.basis, result, tt.expected)
		}
	}
}

func TestNameTruncationWarningString(t *testing.T) {
	single := NameTruncationWarning{Original: "a_very_long_name", Truncated: "a_very", Count: 1}
	assert.Contains(t, single.String(), `"a_very_long_name"`)
	assert.Contains(t, single.String(), `"a_very"`)

	bulk := NameTruncationWarning{Count: 3}
	assert.Equal(t, "3 sheet names exceed 31 characters and were truncated", bulk.String())
}
