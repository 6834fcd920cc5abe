// Package export renders transaction collections to CSV. This is a
// formatting layer over the aggregator's sorted output, not part of the
// computation core.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/budget-planner/internal/logging"
	"fjacquet/budget-planner/internal/models"

	"github.com/gocarina/gocsv"
)

// Row is the CSV projection of a transaction. gocsv quotes fields as needed,
// which covers descriptions containing delimiters or quotes.
type Row struct {
	Date        string `csv:"Date"`
	Type        string `csv:"Type"`
	Category    string `csv:"Category"`
	Amount      string `csv:"Amount"`
	Description string `csv:"Description"`
}

// Writer writes transactions as CSV with a configurable delimiter.
type Writer struct {
	delimiter rune
	logger    logging.Logger
}

// NewWriter creates a Writer. A zero delimiter falls back to a comma.
func NewWriter(delimiter rune, logger logging.Logger) *Writer {
	if delimiter == 0 {
		delimiter = ','
	}
	return &Writer{delimiter: delimiter, logger: logger}
}

// Write renders the transactions to w in their given order. Callers that
// want the conventional date-descending report should sort first.
func (wr *Writer) Write(w io.Writer, transactions []models.Transaction) error {
	rows := make([]Row, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, Row{
			Date:        t.Date,
			Type:        string(t.Type),
			Category:    t.Category,
			Amount:      t.Amount.StringFixed(2),
			Description: t.Description,
		})
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = wr.delimiter

	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteFile writes the transactions to a CSV file, creating parent
// directories as needed.
func (wr *Writer) WriteFile(csvFile string, transactions []models.Transaction) error {
	wr.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Info("Writing transactions to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			wr.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	return wr.Write(file, transactions)
}
