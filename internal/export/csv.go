// Package export renders transaction lists as downloadable documents.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/samiti-app/backend/internal/models"
)

// csvDateFormat renders dates the way the finance table shows them.
const csvDateFormat = "02/01/2006"

// CSVHeader is the header row of a transaction export.
var CSVHeader = []string{"Date", "Type", "Category", "Amount", "Mode", "Description"}

// TransactionsCSV writes the given transactions as CSV. Fields containing
// commas or quotes are quoted properly by the encoder.
func TransactionsCSV(w io.Writer, transactions []models.Transaction) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(CSVHeader); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, transaction := range transactions {
		record := []string{
			transaction.Date.Format(csvDateFormat),
			string(transaction.Type),
			transaction.Category,
			transaction.Amount.String(),
			string(transaction.PaymentMode),
			transaction.Description,
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
