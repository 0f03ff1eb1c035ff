package services

import (
	"errors"
	"math"
)

// ErrResultOutOfRange is returned when a calculation overflows float64.
var ErrResultOutOfRange = errors.New("result out of range")

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}
