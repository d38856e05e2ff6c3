package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetStockStatus(t *testing.T) {
	cases := []struct {
		stock    int
		expected StockStatus
	}{
		{0, StatusLow},
		{19, StatusLow},
		{20, StatusMonitor},
		{35, StatusMonitor},
		{50, StatusMonitor},
		{51, StatusHealthy},
		{1000, StatusHealthy},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, GetStockStatus(c.stock), "stock=%d", c.stock)
	}
}
