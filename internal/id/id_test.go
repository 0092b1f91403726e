package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCustomerID(t *testing.T) {
	assert.Equal(t, "CUST00001", FormatCustomerID(1))
	assert.Equal(t, "CUST00042", FormatCustomerID(42))
	assert.Equal(t, "CUST12345", FormatCustomerID(12345))
}

func TestFormatTransactionID(t *testing.T) {
	assert.Equal(t, "TXN000001", FormatTransactionID(1))
	assert.Equal(t, "TXN000317", FormatTransactionID(317))
}

func TestParseCustomerID(t *testing.T) {
	seq, err := ParseCustomerID("CUST00042")
	require.NoError(t, err)
	assert.Equal(t, 42, seq)
}

func TestParseTransactionID(t *testing.T) {
	seq, err := ParseTransactionID("TXN000317")
	require.NoError(t, err)
	assert.Equal(t, 317, seq)
}

func TestParseInvalid(t *testing.T) {
	_, err := ParseCustomerID("TXN000317")
	assert.Error(t, err)

	_, err = ParseCustomerID("CUSTXYZ")
	assert.Error(t, err)

	_, err = ParseTransactionID("")
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	for _, seq := range []int{1, 99, 100000} {
		got, err := ParseCustomerID(FormatCustomerID(seq))
		require.NoError(t, err)
		assert.Equal(t, seq, got)
	}
}
