package id

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	customerPrefix    = "CUST"
	transactionPrefix = "TXN"
)

// FormatCustomerID returns a customer ID like "CUST00042".
func FormatCustomerID(seq int) string {
	return fmt.Sprintf("%s%05d", customerPrefix, seq)
}

// FormatTransactionID returns a transaction ID like "TXN000317".
func FormatTransactionID(seq int) string {
	return fmt.Sprintf("%s%06d", transactionPrefix, seq)
}

// ParseCustomerID parses "CUST00042" into its sequence number.
func ParseCustomerID(id string) (int, error) {
	return parse(id, customerPrefix)
}

// ParseTransactionID parses "TXN000317" into its sequence number.
func ParseTransactionID(id string) (int, error) {
	return parse(id, transactionPrefix)
}

func parse(id, prefix string) (int, error) {
	if !strings.HasPrefix(id, prefix) {
		return 0, fmt.Errorf("invalid ID format: %q", id)
	}
	seq, err := strconv.Atoi(id[len(prefix):])
	if err != nil {
		return 0, fmt.Errorf("invalid sequence in ID %q: %w", id, err)
	}
	return seq, nil
}
