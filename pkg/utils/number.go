package utils

import (
	"math"
	"strconv"

	"github.com/sirupsen/logrus"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseFloatOrZero converts a numeric string from the Graph API to a float64.
// Absent fields arrive as empty strings and default to zero; anything else that
// fails to parse is logged and also defaults to zero.
func ParseFloatOrZero(field, value string) float64 {
	if value == "" {
		return 0
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("utils: error converting value to float")
		return 0
	}

	return f
}

// ParseIntOrZero converts a numeric string to an int with the same defaulting
// policy as ParseFloatOrZero. Fractional strings are truncated, not rounded.
func ParseIntOrZero(field, value string) int {
	if value == "" {
		return 0
	}

	if i, err := strconv.Atoi(value); err == nil {
		return i
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("utils: error converting value to integer")
		return 0
	}

	return int(f)
}
