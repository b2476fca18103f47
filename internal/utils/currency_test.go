package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "Rp0"},
		{500, "Rp500"},
		{5000, "Rp5.000"},
		{55000, "Rp55.000"},
		{110000, "Rp110.000"},
		{1250000, "Rp1.250.000"},
		{-55000, "-Rp55.000"},
	}

	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			assert.Equal(t, c.want, FormatRupiah(decimal.NewFromInt(c.amount)))
		})
	}
}

func TestFormatRupiah_RoundsFractions(t *testing.T) {
	assert.Equal(t, "Rp55.000", FormatRupiah(decimal.NewFromFloat(54999.6)))
}
