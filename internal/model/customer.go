package model

import (
	"fmt"
	"regexp"
	"time"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ContactMethod is a customer's preferred contact channel.
type ContactMethod string

const (
	ContactEmail ContactMethod = "email"
	ContactPhone ContactMethod = "phone"
)

// Customer represents a row in customers.csv.
type Customer struct {
	ID               string
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	DateOfBirth      time.Time // zero = unknown
	RegistrationDate time.Time
	Address          string
	City             string
	Country          string
	PreferredContact ContactMethod
	MarketingOptIn   bool
}

// FullName returns the customer's display name.
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Age returns the customer's age in whole years at the given time.
// Returns false when the date of birth is unknown.
func (c Customer) Age(now time.Time) (int, bool) {
	if c.DateOfBirth.IsZero() {
		return 0, false
	}

	age := now.Year() - c.DateOfBirth.Year()
	// Not yet reached this year's birthday.
	if now.Month() < c.DateOfBirth.Month() ||
		(now.Month() == c.DateOfBirth.Month() && now.Day() < c.DateOfBirth.Day()) {
		age--
	}
	return age, true
}

// Validate checks required fields and formats.
func (c Customer) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("customer ID is required")
	}
	if c.Email != "" && !emailPattern.MatchString(c.Email) {
		return fmt.Errorf("invalid email format: %q", c.Email)
	}
	return nil
}
