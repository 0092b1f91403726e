package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func validCustomer() Customer {
	return Customer{
		ID:               "CUST00001",
		FirstName:        "John",
		LastName:         "Doe",
		Email:            "john.doe@example.com",
		Phone:            "+1234567890",
		DateOfBirth:      date(1990, 5, 15),
		RegistrationDate: date(2024, 1, 15),
	}
}

func TestCustomerValidate(t *testing.T) {
	require.NoError(t, validCustomer().Validate())
}

func TestCustomerValidateMissingID(t *testing.T) {
	c := validCustomer()
	c.ID = ""
	assert.ErrorContains(t, c.Validate(), "customer ID is required")
}

func TestCustomerValidateEmail(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"john.doe@example.com", true},
		{"a.b+tag@sub.domain.co", true},
		{"", true}, // optional
		{"not-an-email", false},
		{"missing@tld", false},
		{"@example.com", false},
	}

	for _, c := range cases {
		cust := validCustomer()
		cust.Email = c.email
		err := cust.Validate()
		if c.valid {
			assert.NoError(t, err, "email %q", c.email)
		} else {
			assert.Error(t, err, "email %q", c.email)
		}
	}
}

func TestCustomerFullName(t *testing.T) {
	assert.Equal(t, "John Doe", validCustomer().FullName())
}

func TestCustomerAge(t *testing.T) {
	c := validCustomer()

	// Birthday already passed this year.
	age, ok := c.Age(date(2025, 6, 1))
	require.True(t, ok)
	assert.Equal(t, 35, age)

	// Birthday not yet reached this year.
	age, ok = c.Age(date(2025, 5, 14))
	require.True(t, ok)
	assert.Equal(t, 34, age)

	// Exactly on the birthday.
	age, ok = c.Age(date(2025, 5, 15))
	require.True(t, ok)
	assert.Equal(t, 35, age)
}

func TestCustomerAgeUnknown(t *testing.T) {
	c := validCustomer()
	c.DateOfBirth = time.Time{}

	_, ok := c.Age(date(2025, 6, 1))
	assert.False(t, ok)
}
