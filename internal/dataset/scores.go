package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/segmental-dev/segmental/internal/rfm"
)

// ScoresHeader is the CSV header for rfm-scores.csv.
const ScoresHeader = "customer_id,recency,frequency,monetary,r_score,f_score,m_score,rfm_score,segment"

const (
	scoreNumFields = 9
	scoreColID     = 0
	scoreColRec    = 1
	scoreColFreq   = 2
	scoreColMon    = 3
	scoreColR      = 4
	scoreColF      = 5
	scoreColM      = 6
	scoreColRFM    = 7
	scoreColSeg    = 8
)

// WriteScores writes scored customers to an rfm-scores.csv writer
// (including header).
func WriteScores(w io.Writer, scores []rfm.Score) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(ScoresHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, s := range scores {
		if err := cw.Write(MarshalScore(s)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalScore converts a Score to a CSV row.
func MarshalScore(s rfm.Score) []string {
	row := make([]string, scoreNumFields)
	row[scoreColID] = s.CustomerID
	row[scoreColRec] = strconv.Itoa(s.Recency)
	row[scoreColFreq] = strconv.Itoa(s.Frequency)
	row[scoreColMon] = s.Monetary.StringFixed(2)
	row[scoreColR] = strconv.Itoa(s.RScore)
	row[scoreColF] = strconv.Itoa(s.FScore)
	row[scoreColM] = strconv.Itoa(s.MScore)
	row[scoreColRFM] = s.RFM()
	row[scoreColSeg] = s.Segment()
	return row
}
