// Package scoring implements the TF-IDF term contribution and the
// page/date boost composition of spec.md §4.7, grounded in
// query_processing.py's QueryProcessor base-score term and written in the
// register of the teacher's internal/query/ranking.go scorer family
// (kept to plain arithmetic; no BM25 saturation — see DESIGN.md).
package scoring

import "math"

// epoch is the date spec.md §4.7 measures days_since from: 2000-01-01.
const epoch = 20000101

// Scorer holds the configuration and collection statistics needed to
// score a posting: the boost weights, the collection's max_page, and its
// size |D|. A Scorer is read-only once built and is shared by every term
// and every candidate document of a query (serve mode shares one Scorer
// across all its queries).
type Scorer struct {
	WP    float64 // page-penalty weight
	WDate float64 // date-boost weight
	CDate float64 // additive date constant

	MaxPage        int
	CollectionSize int
}

// IDF returns log(|D|/df(t)).
func (s *Scorer) IDF(df int) float64 {
	if df <= 0 {
		return 0
	}
	return math.Log(float64(s.CollectionSize) / float64(df))
}

// PageBoost returns 1 - W_P*(page/max_page), clamped into [0,1] as
// spec.md §4.7 requires. With page <= max_page and W_P <= 1 the value is
// already in range; the clamp covers other inputs. A max_page of 0 or
// less yields 1.
func (s *Scorer) PageBoost(page int) float64 {
	if s.MaxPage <= 0 {
		return 1
	}
	b := 1 - s.WP*(float64(page)/float64(s.MaxPage))
	if b < 0 {
		return 0
	}
	if b > 1 {
		return 1
	}
	return b
}

// DateBoost returns ((days_since(2000-01-01, date)/366) + C_DATE) * W_DATE.
func (s *Scorer) DateBoost(date int) float64 {
	days := daysSinceEpoch(date)
	return (days/366 + s.CDate) * s.WDate
}

// Boost returns the composite page_boost(d)*date_boost(d).
func (s *Scorer) Boost(page, date int) float64 {
	return s.PageBoost(page) * s.DateBoost(date)
}

// Contribution returns one posting's contribution to S(d):
// tf(d,t) * log(|D|/df(t)) * boost(d), per spec.md §4.7.
func (s *Scorer) Contribution(weight float64, df int, page, date int) float64 {
	return weight * s.IDF(df) * s.Boost(page, date)
}

// TermUpperBound returns ub(t)*log(|D|/df(t)), the per-term score upper
// bound the WAND pivot-selection scan sums, memoised once per query per
// term by the caller (termlist.Entry.UpperBound).
func (s *Scorer) TermUpperBound(ub float64, df int) float64 {
	return ub * s.IDF(df)
}

// daysSinceEpoch returns the number of days between 2000-01-01 and a
// YYYYMMDD-encoded date, using the proleptic Gregorian calendar via
// civil-to-Julian-day-number arithmetic (no time.Time parsing needed
// since the corpus never encodes a time-of-day component).
func daysSinceEpoch(date int) float64 {
	return float64(julianDayNumber(date) - julianDayNumber(epoch))
}

// julianDayNumber converts a YYYYMMDD integer to a Julian day number
// using the standard civil calendar formula (Fliegel & Van Flandern).
func julianDayNumber(date int) int {
	y := date / 10000
	m := (date / 100) % 100
	d := date % 100
	a := (14 - m) / 12
	y2 := y + 4800 - a
	m2 := m + 12*a - 3
	return d + (153*m2+2)/5 + 365*y2 + y2/4 - y2/100 + y2/400 - 32045
}
