package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/segmental-dev/segmental/internal/model"
)

// TransactionsHeader is the CSV header for transactions.csv.
const TransactionsHeader = "transaction_id,customer_id,transaction_date,items,total_amount,payment_method,tip_amount"

const (
	txnNumFields  = 7
	txnColID      = 0
	txnColCust    = 1
	txnColDate    = 2
	txnColItems   = 3
	txnColTotal   = 4
	txnColPayment = 5
	txnColTip     = 6
)

// ReadTransactions reads all transactions from a transactions.csv reader.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = txnNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// WriteTransactions writes transactions to a transactions.csv writer
// (including header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(TransactionsHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		row, err := MarshalTransaction(txn)
		if err != nil {
			return fmt.Errorf("marshaling row %d: %w", i+2, err)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row. Items are
// serialized as a JSON column; total_amount is derived from items.
func MarshalTransaction(txn model.Transaction) ([]string, error) {
	items, err := json.Marshal(txn.Items)
	if err != nil {
		return nil, fmt.Errorf("marshaling items: %w", err)
	}

	row := make([]string, txnNumFields)
	row[txnColID] = txn.ID
	row[txnColCust] = txn.CustomerID
	row[txnColDate] = txn.Date.Format(timestampFormat)
	row[txnColItems] = string(items)
	row[txnColTotal] = txn.TotalAmount().StringFixed(2)
	row[txnColPayment] = string(txn.PaymentMethod)
	row[txnColTip] = txn.TipAmount.StringFixed(2)
	return row, nil
}

// UnmarshalTransaction converts a CSV row to a Transaction. The
// total_amount column is ignored: the total is always derived from items.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != txnNumFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", txnNumFields, len(record))
	}

	txnDate, err := time.Parse(timestampFormat, record[txnColDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing transaction_date %q: %w", record[txnColDate], err)
	}

	var items []model.LineItem
	if err := json.Unmarshal([]byte(record[txnColItems]), &items); err != nil {
		return model.Transaction{}, fmt.Errorf("parsing items: %w", err)
	}

	tip := decimal.Zero
	if record[txnColTip] != "" {
		tip, err = decimal.NewFromString(record[txnColTip])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing tip_amount %q: %w", record[txnColTip], err)
		}
	}

	return model.Transaction{
		ID:            record[txnColID],
		CustomerID:    record[txnColCust],
		Date:          txnDate,
		Items:         items,
		PaymentMethod: model.PaymentMethod(record[txnColPayment]),
		TipAmount:     tip,
	}, nil
}
