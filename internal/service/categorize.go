package service

import (
	"sort"
	"time"

	"FestivalSync/internal/model"
)

const dateLayout = "20060102"

type dateBucket int

const (
	bucketUnknown dateBucket = iota
	bucketCurrent
	bucketUpcoming
	bucketPast
)

// bucketFor classifies a start date against now. Membership in the current
// bucket compares year and month only — a festival that started on the 1st is
// still "current" on the 30th. Anything that is not an 8-digit calendar date
// is unknown.
func bucketFor(start string, now time.Time) dateBucket {
	if len(start) != len(dateLayout) {
		return bucketUnknown
	}
	t, err := time.Parse(dateLayout, start)
	if err != nil {
		return bucketUnknown
	}
	startYM := t.Year()*12 + int(t.Month())
	nowYM := now.Year()*12 + int(now.Month())
	switch {
	case startYM == nowYM:
		return bucketCurrent
	case startYM > nowYM:
		return bucketUpcoming
	default:
		return bucketPast
	}
}

// CategorizeRecords partitions records by start date relative to now and
// returns one merged ordering: festivals running this month first (soonest
// first), then upcoming ones ascending, then past ones with the most recent
// first. Records whose start date is missing or malformed are dropped;
// callers that need them must run enrichment beforehand.
func CategorizeRecords(records []model.FestivalRecord, now time.Time) []model.FestivalRecord {
	var current, upcoming, past []model.FestivalRecord
	for _, r := range records {
		switch bucketFor(r.EventStartDate, now) {
		case bucketCurrent:
			current = append(current, r)
		case bucketUpcoming:
			upcoming = append(upcoming, r)
		case bucketPast:
			past = append(past, r)
		}
	}

	// Lexicographic order on YYYYMMDD strings is chronological order.
	byStartAsc := func(s []model.FestivalRecord) func(i, j int) bool {
		return func(i, j int) bool { return s[i].EventStartDate < s[j].EventStartDate }
	}
	sort.SliceStable(current, byStartAsc(current))
	sort.SliceStable(upcoming, byStartAsc(upcoming))
	sort.SliceStable(past, func(i, j int) bool { return past[i].EventStartDate > past[j].EventStartDate })

	out := make([]model.FestivalRecord, 0, len(current)+len(upcoming)+len(past))
	out = append(out, current...)
	out = append(out, upcoming...)
	out = append(out, past...)
	return out
}
