// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package view

import (
	"math"
	"strconv"
)

// denominators are the kitchen fractions quantities are shown in, smallest
// first so the reduced form is found.
var denominators = []int{1, 2, 3, 4, 8, 16}

// FormatQuantity renders q as a mixed fraction ("1 1/2", "3/4", "2") when it
// is a whole number of halves, thirds, quarters, eighths or sixteenths, and
// as a decimal rounded to two places otherwise. Nil renders as the empty string.
func FormatQuantity(q *float64) string {
	if q == nil {
		return ""
	}
	v := *q
	if v < 0 {
		return "-" + FormatQuantity(ptr(-v))
	}

	whole := math.Floor(v)
	frac := v - whole
	for _, den := range denominators {
		num := math.Round(frac * float64(den))
		if math.Abs(frac-num/float64(den)) > 1e-9 {
			continue
		}
		w, n := int64(whole), int64(num)
		if n == int64(den) {
			w, n = w+1, 0
		}
		switch {
		case n == 0:
			return strconv.FormatInt(w, 10)
		case w == 0:
			return strconv.FormatInt(n, 10) + "/" + strconv.Itoa(den)
		default:
			return strconv.FormatInt(w, 10) + " " + strconv.FormatInt(n, 10) + "/" + strconv.Itoa(den)
		}
	}
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func ptr(v float64) *float64 { return &v }
