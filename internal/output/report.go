package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/planwise/nestegg/internal/domain"
)

// ErrUnsupportedFormat is returned for format names no formatter claims.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// WriteReport formats the comparison and writes it to w.
func WriteReport(w io.Writer, comparison *domain.PlanComparison, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "))
	}
	data, err := f.Format(comparison)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// GenerateReport writes the comparison to a timestamped file in the chosen
// format and returns the filename.
func GenerateReport(comparison *domain.PlanComparison, format string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return "", fmt.Errorf("%w: %q. Try one of: %s", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "))
	}
	ext := f.Name()
	if ext == "console" {
		ext = "txt"
	}
	return WriteFormatted(f, comparison, ext)
}

// SaveReport writes the formatted comparison to an explicit path, or to
// stdout when path is empty.
func SaveReport(comparison *domain.PlanComparison, format, path string) error {
	if path == "" {
		return WriteReport(os.Stdout, comparison, format)
	}
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "))
	}
	data, err := f.Format(comparison)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
