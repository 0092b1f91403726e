// Package dataset reads and writes the project's CSV files: customers,
// transactions, and exported RFM scores.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/segmental-dev/segmental/internal/model"
)

// CustomersHeader is the CSV header for customers.csv.
const CustomersHeader = "customer_id,first_name,last_name,email,phone,date_of_birth,registration_date,city,country,marketing_opt_in"

const (
	custNumFields   = 10
	custColID       = 0
	custColFirst    = 1
	custColLast     = 2
	custColEmail    = 3
	custColPhone    = 4
	custColDOB      = 5
	custColRegDate  = 6
	custColCity     = 7
	custColCountry  = 8
	custColMktOptIn = 9
)

const timestampFormat = time.RFC3339

// ReadCustomers reads all customers from a customers.csv reader.
func ReadCustomers(r io.Reader) ([]model.Customer, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = custNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading customers CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var customers []model.Customer
	for i, rec := range records[1:] {
		c, err := UnmarshalCustomer(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		customers = append(customers, c)
	}
	return customers, nil
}

// WriteCustomers writes customers to a customers.csv writer (including header).
func WriteCustomers(w io.Writer, customers []model.Customer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(CustomersHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, c := range customers {
		if err := cw.Write(MarshalCustomer(c)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalCustomer converts a Customer to a CSV row.
func MarshalCustomer(c model.Customer) []string {
	row := make([]string, custNumFields)
	row[custColID] = c.ID
	row[custColFirst] = c.FirstName
	row[custColLast] = c.LastName
	row[custColEmail] = c.Email
	row[custColPhone] = c.Phone
	if !c.DateOfBirth.IsZero() {
		row[custColDOB] = c.DateOfBirth.Format(timestampFormat)
	}
	row[custColRegDate] = c.RegistrationDate.Format(timestampFormat)
	row[custColCity] = c.City
	row[custColCountry] = c.Country
	row[custColMktOptIn] = strconv.FormatBool(c.MarketingOptIn)
	return row
}

// UnmarshalCustomer converts a CSV row to a Customer.
func UnmarshalCustomer(record []string) (model.Customer, error) {
	if len(record) != custNumFields {
		return model.Customer{}, fmt.Errorf("expected %d fields, got %d", custNumFields, len(record))
	}

	var dob time.Time
	var err error
	if record[custColDOB] != "" {
		dob, err = time.Parse(timestampFormat, record[custColDOB])
		if err != nil {
			return model.Customer{}, fmt.Errorf("parsing date_of_birth %q: %w", record[custColDOB], err)
		}
	}

	regDate, err := time.Parse(timestampFormat, record[custColRegDate])
	if err != nil {
		return model.Customer{}, fmt.Errorf("parsing registration_date %q: %w", record[custColRegDate], err)
	}

	optIn, err := strconv.ParseBool(record[custColMktOptIn])
	if err != nil {
		return model.Customer{}, fmt.Errorf("parsing marketing_opt_in %q: %w", record[custColMktOptIn], err)
	}

	return model.Customer{
		ID:               record[custColID],
		FirstName:        record[custColFirst],
		LastName:         record[custColLast],
		Email:            record[custColEmail],
		Phone:            record[custColPhone],
		DateOfBirth:      dob,
		RegistrationDate: regDate,
		City:             record[custColCity],
		Country:          record[custColCountry],
		MarketingOptIn:   optIn,
	}, nil
}
