package xdi

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var numberRegexp = regexp.MustCompile(`^[-+_0-9.eE]+$`)

// asNumber converts the raw text of a datum token into a numeric value.
//
// Only strings made entirely of number characters (digits, signs, '_',
// '.', 'e'/'E') are evaluated; digit-group underscores are accepted, as
// is exponent notation. Anything else degrades to NaN instead of
// failing: malformed individual data cells must not abort the whole
// parse.
func asNumber(value string) float64 {
	if !numberRegexp.MatchString(value) {
		return math.NaN()
	}

	num, err := strconv.ParseFloat(strings.ReplaceAll(value, "_", ""), 64)
	if err != nil {
		return math.NaN()
	}

	return num
}
