package dataset

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmental-dev/segmental/internal/model"
	"github.com/segmental-dev/segmental/internal/rfm"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func sampleCustomer() model.Customer {
	return model.Customer{
		ID:               "CUST00001",
		FirstName:        "Somchai",
		LastName:         "Srisuk",
		Email:            "somchai.srisuk@example.com",
		Phone:            "+66812345678",
		DateOfBirth:      date(1990, 5, 15),
		RegistrationDate: date(2024, 1, 15),
		City:             "Bangkok",
		Country:          "Thailand",
		MarketingOptIn:   true,
	}
}

func sampleTransaction() model.Transaction {
	return model.Transaction{
		ID:         "TXN000001",
		CustomerID: "CUST00001",
		Date:       date(2025, 5, 30),
		Items: []model.LineItem{
			{Name: "Singha Beer", Quantity: 2, UnitPrice: dec("80")},
			{Name: "Gyoza", Quantity: 1, UnitPrice: dec("120")},
		},
		PaymentMethod: model.PaymentMobile,
		TipAmount:     dec("28.00"),
	}
}

func TestCustomersRoundTrip(t *testing.T) {
	customers := []model.Customer{sampleCustomer()}

	var buf bytes.Buffer
	require.NoError(t, WriteCustomers(&buf, customers))
	assert.True(t, strings.HasPrefix(buf.String(), "customer_id,"))

	got, err := ReadCustomers(&buf)
	require.NoError(t, err)
	require.Len(t, got, 1)

	want := customers[0]
	assert.Equal(t, want.ID, got[0].ID)
	assert.Equal(t, want.FirstName, got[0].FirstName)
	assert.Equal(t, want.LastName, got[0].LastName)
	assert.Equal(t, want.Email, got[0].Email)
	assert.Equal(t, want.Phone, got[0].Phone)
	assert.True(t, want.DateOfBirth.Equal(got[0].DateOfBirth))
	assert.True(t, want.RegistrationDate.Equal(got[0].RegistrationDate))
	assert.Equal(t, want.City, got[0].City)
	assert.Equal(t, want.Country, got[0].Country)
	assert.Equal(t, want.MarketingOptIn, got[0].MarketingOptIn)
}

func TestCustomerEmptyDateOfBirth(t *testing.T) {
	c := sampleCustomer()
	c.DateOfBirth = time.Time{}

	row := MarshalCustomer(c)
	assert.Empty(t, row[custColDOB])

	got, err := UnmarshalCustomer(row)
	require.NoError(t, err)
	assert.True(t, got.DateOfBirth.IsZero())
}

func TestTransactionsRoundTrip(t *testing.T) {
	txns := []model.Transaction{sampleTransaction()}

	var buf bytes.Buffer
	require.NoError(t, WriteTransactions(&buf, txns))
	assert.True(t, strings.HasPrefix(buf.String(), "transaction_id,"))

	got, err := ReadTransactions(&buf)
	require.NoError(t, err)
	require.Len(t, got, 1)

	want := txns[0]
	assert.Equal(t, want.ID, got[0].ID)
	assert.Equal(t, want.CustomerID, got[0].CustomerID)
	assert.True(t, want.Date.Equal(got[0].Date))
	require.Len(t, got[0].Items, 2)
	assert.Equal(t, "Singha Beer", got[0].Items[0].Name)
	assert.Equal(t, 2, got[0].Items[0].Quantity)
	assert.True(t, got[0].Items[0].UnitPrice.Equal(dec("80")))
	assert.Equal(t, want.PaymentMethod, got[0].PaymentMethod)
	assert.True(t, want.TipAmount.Equal(got[0].TipAmount))

	// Derived total survives the round trip.
	assert.True(t, got[0].TotalAmount().Equal(dec("280")), "got %s", got[0].TotalAmount())
}

func TestTransactionTotalColumn(t *testing.T) {
	row, err := MarshalTransaction(sampleTransaction())
	require.NoError(t, err)
	assert.Equal(t, "280.00", row[txnColTotal])
	assert.Equal(t, "28.00", row[txnColTip])
}

func TestTransactionSpecialCharactersInItems(t *testing.T) {
	txn := sampleTransaction()
	txn.Items = []model.LineItem{
		{Name: `Sake "Premium", 300ml & more`, Quantity: 1, UnitPrice: dec("280")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTransactions(&buf, []model.Transaction{txn}))

	got, err := ReadTransactions(&buf)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0].Items, 1)
	assert.Equal(t, txn.Items[0].Name, got[0].Items[0].Name)
}

func TestReadEmptyInput(t *testing.T) {
	customers, err := ReadCustomers(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, customers)

	txns, err := ReadTransactions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestReadBadRow(t *testing.T) {
	in := TransactionsHeader + "\n" +
		"TXN000001,CUST00001,not-a-date,[],0.00,cash,0.00\n"
	_, err := ReadTransactions(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestWriteScores(t *testing.T) {
	scores := []rfm.Score{
		{CustomerID: "CUST00001", Recency: 2, Frequency: 12, Monetary: dec("1520.50"), RScore: 5, FScore: 5, MScore: 5},
		{CustomerID: "CUST00002", Recency: 210, Frequency: 1, Monetary: dec("60.00"), RScore: 1, FScore: 1, MScore: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteScores(&buf, scores))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, ScoresHeader, lines[0])
	assert.Equal(t, "CUST00001,2,12,1520.50,5,5,5,555,Champions", lines[1])
	assert.Equal(t, "CUST00002,210,1,60.00,1,1,1,111,Lost", lines[2])
}
