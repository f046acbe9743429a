package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	assert.Equal(t, "1500.00 Kz", Currency(1500, "Kz"))
	assert.Equal(t, "0.00 Kz", Currency(0, "Kz"))
	assert.Equal(t, "12.35 Kz", Currency(12.345, "Kz"))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "2", Number(2))
	assert.Equal(t, "2.5", Number(2.5))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "14%", Percent(14))
	assert.Equal(t, "2.5%", Percent(2.5))
}

func TestDate(t *testing.T) {
	issued := time.Date(2026, time.March, 7, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "07/03/2026", Date(issued))
}
