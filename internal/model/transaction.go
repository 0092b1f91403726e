package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod classifies how a transaction was settled.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentMobile PaymentMethod = "mobile"
	PaymentTab    PaymentMethod = "tab"
)

// PaymentMethods lists every accepted payment method.
var PaymentMethods = []PaymentMethod{PaymentCash, PaymentCard, PaymentMobile, PaymentTab}

// ValidPaymentMethod reports whether m is an accepted payment method.
func ValidPaymentMethod(m PaymentMethod) bool {
	for _, v := range PaymentMethods {
		if m == v {
			return true
		}
	}
	return false
}

// LineItem is a single purchased item on a transaction.
type LineItem struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Transaction represents a row in transactions.csv.
type Transaction struct {
	ID             string
	CustomerID     string
	Date           time.Time
	Items          []LineItem
	PaymentMethod  PaymentMethod
	TipAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	Notes          string
}

// TotalAmount sums quantity x unit price over all items.
func (t Transaction) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range t.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// TotalWithTip returns the item total plus tip.
func (t Transaction) TotalWithTip() decimal.Decimal {
	return t.TotalAmount().Add(t.TipAmount)
}

// ItemCount returns the sum of item quantities.
func (t Transaction) ItemCount() int {
	count := 0
	for _, item := range t.Items {
		count += item.Quantity
	}
	return count
}

// Validate checks required fields, items, and the payment method.
func (t Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("transaction ID is required")
	}
	if t.CustomerID == "" {
		return fmt.Errorf("customer ID is required")
	}
	if t.Date.IsZero() {
		return fmt.Errorf("transaction date is required")
	}
	if len(t.Items) == 0 {
		return fmt.Errorf("transaction must have at least one item")
	}
	for i, item := range t.Items {
		if item.Quantity < 1 {
			return fmt.Errorf("item %d: quantity must be at least 1", i)
		}
		if item.UnitPrice.IsNegative() {
			return fmt.Errorf("item %d: unit price must not be negative", i)
		}
	}
	if !ValidPaymentMethod(t.PaymentMethod) {
		methods := make([]string, len(PaymentMethods))
		for i, m := range PaymentMethods {
			methods[i] = string(m)
		}
		return fmt.Errorf("invalid payment method %q, must be one of: %s", t.PaymentMethod, strings.Join(methods, ", "))
	}
	if t.TipAmount.IsNegative() {
		return fmt.Errorf("tip amount must not be negative")
	}
	if t.DiscountAmount.IsNegative() {
		return fmt.Errorf("discount amount must not be negative")
	}
	return nil
}

// PurchaseRecord projects the transaction onto the minimal view the
// scoring engine consumes.
func (t Transaction) PurchaseRecord() PurchaseRecord {
	return PurchaseRecord{
		CustomerID: t.CustomerID,
		Date:       t.Date,
		Amount:     t.TotalAmount(),
	}
}

// PurchaseRecords projects a transaction slice onto purchase records.
func PurchaseRecords(txns []Transaction) []PurchaseRecord {
	records := make([]PurchaseRecord, len(txns))
	for i, t := range txns {
		records[i] = t.PurchaseRecord()
	}
	return records
}

// PurchaseRecord is one purchase event: who, when, and how much.
// Inputs are assumed validated upstream by the Transaction model.
type PurchaseRecord struct {
	CustomerID string          `json:"customer_id"`
	Date       time.Time       `json:"transaction_date"`
	Amount     decimal.Decimal `json:"total_amount"`
}
