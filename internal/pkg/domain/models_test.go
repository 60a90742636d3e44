package domain

import (
	"testing"

	"github.com/matryer/is"
)

func TestToBillionsRoundsToOneDecimal(t *testing.T) {
	is := is.New(t)

	is.Equal(ToBillions(2655086000), 2.7)
	is.Equal(ToBillions(2512620000), 2.5)
	is.Equal(ToBillions(49303056), 0.0)
	is.Equal(ToBillions(0), 0.0)
}
