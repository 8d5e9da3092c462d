// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Palmcar Rentals

package service

import (
	"math"
	"time"
)

// isoDateLayout is the wire format for all booking dates. Lexicographic
// order on these strings matches chronological order, which the overlap
// check relies on.
const isoDateLayout = "2006-01-02"

func parseISODate(s string) (time.Time, error) {
	return time.Parse(isoDateLayout, s)
}

// rentalDays returns the number of billable days between two dates,
// rounded up and never negative. Same-day pickup and return counts as
// zero days.
func rentalDays(pickup, ret time.Time) int {
	days := math.Ceil(ret.Sub(pickup).Hours() / 24)
	if days < 0 {
		return 0
	}
	return int(days)
}

// rangesOverlap reports whether two closed date ranges share at least one
// day. Both ranges are inclusive on both ends: a booking returning on the
// 5th still blocks a pickup on the 5th.
func rangesOverlap(aStart, aEnd, bStart, bEnd string) bool {
	return aStart <= bEnd && bStart <= aEnd
}
