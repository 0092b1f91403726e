package generate

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/segmental-dev/segmental/internal/id"
	"github.com/segmental-dev/segmental/internal/model"
)

// Name pools for the Bangkok venue: a Thai majority with an expat mix.
var (
	thaiFirstNames = []string{
		"Somchai", "Somsak", "Niran", "Kittisak", "Anan", "Prasert",
		"Malee", "Siriporn", "Kanya", "Pimchanok", "Apinya", "Chanida",
		"Thanawat", "Natthapong", "Arthit", "Kamon", "Pranee", "Sunisa",
	}
	expatFirstNames = []string{
		"James", "Oliver", "Lucas", "Henry", "Daniel", "Thomas",
		"Emma", "Sophie", "Hannah", "Julia", "Claire", "Naomi",
	}
	thaiLastNames = []string{
		"Srisuk", "Chaiyasit", "Wattana", "Boonmee", "Rattanakorn",
		"Saetang", "Phromma", "Thongdee", "Suwannarat", "Kaewkla",
	}
	expatLastNames = []string{
		"Smith", "Johnson", "Walker", "Murphy", "Fischer", "Tanaka",
		"Larsen", "Dubois", "Novak", "Petrov",
	}
	emailDomains = []string{"gmail.com", "hotmail.com", "yahoo.com", "outlook.com"}
)

// Customer ages skew 25-40, drinking venue demographics.
var (
	agePopulation = []int{21, 25, 30, 35, 40, 45, 50, 55, 60, 65}
	ageWeights    = []float64{5, 20, 25, 20, 15, 8, 4, 2, 0.5, 0.5}
)

// expatShare is the fraction of customers drawn from the expat name pools.
const expatShare = 0.3

// CustomerGenerator produces synthetic customers.
type CustomerGenerator struct {
	rng *rand.Rand
	now time.Time
}

// NewCustomerGenerator creates a generator. Seed 0 means time-based.
func NewCustomerGenerator(seed int64) *CustomerGenerator {
	return &CustomerGenerator{rng: newRand(seed), now: time.Now()}
}

// Customer generates a single customer with the given id.
func (g *CustomerGenerator) Customer(customerID string) model.Customer {
	var first, last string
	if g.rng.Float64() < expatShare {
		first = expatFirstNames[g.rng.Intn(len(expatFirstNames))]
		last = expatLastNames[g.rng.Intn(len(expatLastNames))]
	} else {
		first = thaiFirstNames[g.rng.Intn(len(thaiFirstNames))]
		last = thaiLastNames[g.rng.Intn(len(thaiLastNames))]
	}

	age := agePopulation[weightedIndex(g.rng, ageWeights)]
	dob := g.now.AddDate(0, 0, -age*365)

	// Registered sometime within the last two years.
	registered := g.now.AddDate(0, 0, -g.rng.Intn(2*365+1))

	return model.Customer{
		ID:               customerID,
		FirstName:        first,
		LastName:         last,
		Email:            g.email(first, last),
		Phone:            fmt.Sprintf("+668%08d", g.rng.Intn(100000000)),
		DateOfBirth:      dob,
		RegistrationDate: registered,
		City:             "Bangkok",
		Country:          "Thailand",
		PreferredContact: model.ContactEmail,
		MarketingOptIn:   g.rng.Intn(2) == 0,
	}
}

// Customers generates count customers with sequential ids.
func (g *CustomerGenerator) Customers(count int) []model.Customer {
	customers := make([]model.Customer, count)
	for i := range customers {
		customers[i] = g.Customer(id.FormatCustomerID(i + 1))
	}
	return customers
}

func (g *CustomerGenerator) email(first, last string) string {
	f := sanitizeForEmail(first)
	l := sanitizeForEmail(last)
	domain := emailDomains[g.rng.Intn(len(emailDomains))]
	if len(f) < 2 || len(l) < 2 {
		return fmt.Sprintf("user%04d@%s", g.rng.Intn(10000), domain)
	}
	return fmt.Sprintf("%s.%s@%s", f, l, domain)
}

// sanitizeForEmail keeps only ASCII alphanumerics, lowercased.
func sanitizeForEmail(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}
