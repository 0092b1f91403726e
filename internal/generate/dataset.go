package generate

import (
	"math/rand"
	"time"

	"github.com/segmental-dev/segmental/internal/id"
	"github.com/segmental-dev/segmental/internal/model"
)

// behavior drives how many transactions a customer makes and how recently
// their last purchase falls.
type behavior struct {
	name       string
	weight     float64
	minTxns    int
	maxTxns    int
	minRecency int // days before the end of the range
	maxRecency int
}

// behaviors approximate the segment mix of a real venue population.
var behaviors = []behavior{
	{"champion", 0.15, 15, 30, 1, 7},
	{"loyal", 0.20, 10, 20, 7, 30},
	{"potential", 0.15, 5, 10, 1, 14},
	{"new", 0.20, 1, 3, 1, 30},
	{"at_risk", 0.10, 8, 15, 60, 120},
	{"lost", 0.10, 3, 8, 150, 300},
	{"hibernating", 0.10, 2, 5, 120, 200},
}

// Params controls dataset generation.
type Params struct {
	Customers    int
	Transactions int
	Start        time.Time // zero = one year before End
	End          time.Time // zero = now
	// Progress, when set, is called once per generated customer.
	Progress func()
}

// Dataset is a generated population.
type Dataset struct {
	Customers    []model.Customer
	Transactions []model.Transaction
	// Behaviors maps customer id to the behavior pattern it was generated
	// from, for inspection in tests and reports.
	Behaviors map[string]string
}

// DatasetGenerator produces full customer+transaction datasets.
type DatasetGenerator struct {
	rng          *rand.Rand
	customers    *CustomerGenerator
	transactions *TransactionGenerator
}

// NewDatasetGenerator creates a generator. Seed 0 means time-based;
// a fixed seed makes the whole dataset reproducible.
func NewDatasetGenerator(seed int64) *DatasetGenerator {
	return &DatasetGenerator{
		rng:          newRand(seed),
		customers:    NewCustomerGenerator(seed),
		transactions: NewTransactionGenerator(seed),
	}
}

// Generate builds a dataset of up to params.Transactions transactions
// across params.Customers customers, each following an assigned behavior
// pattern: the most recent purchase lands in the pattern's recency window
// and earlier purchases spread over the rest of the date range.
func (g *DatasetGenerator) Generate(params Params) Dataset {
	end := params.End
	if end.IsZero() {
		end = time.Now()
	}
	start := params.Start
	if start.IsZero() {
		start = end.AddDate(0, 0, -365)
	}

	totalDays := int(end.Sub(start).Hours() / 24)
	if totalDays < 1 {
		totalDays = 1
	}

	customers := g.customers.Customers(params.Customers)

	weights := make([]float64, len(behaviors))
	for i, b := range behaviors {
		weights[i] = b.weight
	}

	ds := Dataset{
		Customers: customers,
		Behaviors: make(map[string]string, len(customers)),
	}

	txnCount := 0
	for _, customer := range customers {
		b := behaviors[weightedIndex(g.rng, weights)]
		ds.Behaviors[customer.ID] = b.name

		numTxns := randIntInclusive(g.rng, b.minTxns, b.maxTxns)
		recencyDays := randIntInclusive(g.rng, b.minRecency, b.maxRecency)
		if recencyDays > totalDays {
			recencyDays = totalDays
		}

		for i := 0; i < numTxns && txnCount < params.Transactions; i++ {
			var daysAgo int
			if i == 0 {
				// The most recent purchase pins the customer's recency.
				daysAgo = recencyDays
			} else {
				minDays := recencyDays + 1
				if minDays > totalDays {
					minDays = totalDays
				}
				daysAgo = randIntInclusive(g.rng, minDays, totalDays)
			}

			txnDate := end.AddDate(0, 0, -daysAgo)
			if txnDate.Before(start) {
				txnDate = start
			}

			txnCount++
			txn := g.transactions.Transaction(id.FormatTransactionID(txnCount), customer.ID, txnDate)
			ds.Transactions = append(ds.Transactions, txn)
		}

		if params.Progress != nil {
			params.Progress()
		}

		if txnCount >= params.Transactions {
			break
		}
	}

	return ds
}
