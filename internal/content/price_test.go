package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceFormat(t *testing.T) {
	tests := []struct {
		name  string
		price Price
		want  string
	}{
		{name: "dollars", price: Price{Cents: 600, Currency: "USD"}, want: "$6.00"},
		{name: "larger amount", price: Price{Cents: 12000, Currency: "USD"}, want: "$120.00"},
		{name: "zero", price: Price{Cents: 0, Currency: "USD"}, want: "$0.00"},
		{name: "unknown currency falls back", price: Price{Cents: 150, Currency: "ZZZ"}, want: "ZZZ 1.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.price.Format())
		})
	}
}

func TestPriceFree(t *testing.T) {
	assert.True(t, Price{Cents: 0, Currency: "USD"}.Free())
	assert.False(t, Price{Cents: 1, Currency: "USD"}.Free())
}
