// Package export writes accepted profiles to the run's output dataset.
package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/okian/scout/internal/domain/model"
)

// header is the fixed column order of the dataset.
var header = []string{"name", "email", "profile_link", "role_type"}

// CSVWriter streams accepted profiles into a UTF-8 CSV file with a header
// row. One file per run: the target is truncated on open, never appended.
type CSVWriter struct {
	file  *os.File
	w     *csv.Writer
	count int
}

// NewCSVWriter opens (or overwrites) path and writes the header row.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}

	return &CSVWriter{file: f, w: w}, nil
}

// Write appends one accepted profile.
func (c *CSVWriter) Write(p model.Profile) error {
	if err := c.w.Write([]string{p.Name, p.Email, p.ProfileLink, string(p.Role)}); err != nil {
		return fmt.Errorf("write profile row: %w", err)
	}
	c.count++
	return nil
}

// Count returns the number of profiles written so far.
func (c *CSVWriter) Count() int {
	return c.count
}

// Close flushes buffered rows and closes the file.
func (c *CSVWriter) Close() error {
	c.w.Flush()
	flushErr := c.w.Error()
	closeErr := c.file.Close()
	if flushErr != nil {
		return fmt.Errorf("flush output: %w", flushErr)
	}
	return closeErr
}
