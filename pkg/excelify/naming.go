package excelify

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/lestrrat-go/strftime"
	"github.com/xuri/excelize/v2"
)

const (
	// MaxSheetNameLen is the longest sheet name a workbook accepts.
	MaxSheetNameLen = 31
	// maxBasisLen leaves room for the "_YYYYMMDD-HHMMSS" suffix of default names.
	maxBasisLen = MaxSheetNameLen - 16

	// Extension is appended to workbook paths that lack it.
	Extension = ".xlsx"
)

var timestampFormat = mustStrftime("%Y%m%d-%H%M%S")

func mustStrftime(pattern string) *strftime.Strftime {
	f, err := strftime.New(pattern)
	if err != nil {
		panic(err)
	}
	return f
}

// Timestamp formats t as YYYYMMDD-HHMMSS.
func Timestamp(t time.Time) string {
	return timestampFormat.FormatString(t)
}

// SheetName is the result of deriving a sheet name.
type SheetName struct {
	Name      string
	Truncated bool
	// OriginalLen is the length in characters of the candidate before truncation.
	OriginalLen int
}

// DeriveSheetName picks the sheet name for an export. An empty requested name
// means "not given": the name becomes "{fallbackBasis}_{timestamp}", with the
// basis cut to 15 characters. Any candidate longer than MaxSheetNameLen is cut.
// Lengths are counted in Unicode code points.
func DeriveSheetName(requested, fallbackBasis string, now time.Time) SheetName {
	if requested == "" {
		basis, truncated := truncateName(fallbackBasis, maxBasisLen)
		stamp := Timestamp(now)
		return SheetName{
			Name:        basis + "_" + stamp,
			Truncated:   truncated,
			OriginalLen: utf8.RuneCountInString(fallbackBasis) + 1 + len(stamp),
		}
	}

	name, truncated := truncateName(requested, MaxSheetNameLen)
	return SheetName{
		Name:        name,
		Truncated:   truncated,
		OriginalLen: utf8.RuneCountInString(requested),
	}
}

// ValidateSheetName rejects names a workbook cannot hold: blank names, names
// over MaxSheetNameLen, names containing any of : \ / ? * [ ] and names that
// start or end with a single quote.
func ValidateSheetName(name string) error {
	var err error
	switch {
	case name == "":
		err = excelize.ErrSheetNameBlank
	case utf8.RuneCountInString(name) > MaxSheetNameLen:
		err = excelize.ErrSheetNameLength
	case strings.ContainsAny(name, `:\/?*[]`):
		err = excelize.ErrSheetNameInvalid
	case strings.HasPrefix(name, "'") || strings.HasSuffix(name, "'"):
		err = excelize.ErrSheetNameSingleQuote
	}
	if err != nil {
		return &InvalidSheetNameError{SheetName: name, Err: err}
	}
	return nil
}

// truncateName cuts s to its first limit characters and reports whether it did.
func truncateName(s string, limit int) (string, bool) {
	if utf8.RuneCountInString(s) <= limit {
		return s, false
	}
	return string([]rune(s)[:limit]), true
}

// TargetPath resolves the workbook path. An empty filepath becomes
// "{basis}_{timestamp}.xlsx"; otherwise Extension is appended unless the path
// already ends with it (case-sensitive).
func TargetPath(filepath, basis string, now time.Time) string {
	if filepath == "" {
		return basis + "_" + Timestamp(now) + Extension
	}
	if !strings.HasSuffix(filepath, Extension) {
		return filepath + Extension
	}
	return filepath
}
