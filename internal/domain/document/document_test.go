package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []Material
		want []Material
	}{
		{
			name: "DropsEmptyNames",
			in: []Material{
				{ItemName: "Copper pipe", Quantity: 2, UnitPrice: 10},
				{ItemName: "", Quantity: 3, UnitPrice: 99},
				{ItemName: "   ", Quantity: 1, UnitPrice: 5},
			},
			want: []Material{
				{ItemName: "Copper pipe", Quantity: 2, UnitPrice: 10},
			},
		},
		{
			name: "ClampsQuantityAndPrice",
			in: []Material{
				{ItemName: "Solder", Quantity: 0, UnitPrice: -3},
			},
			want: []Material{
				{ItemName: "Solder", Quantity: 1, UnitPrice: 0},
			},
		},
		{
			name: "Empty",
			in:   nil,
			want: []Material{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestTotal(t *testing.T) {
	materials := []Material{
		{ItemName: "Copper pipe", Quantity: 2, UnitPrice: 10.00},
		{ItemName: "P-trap", Quantity: 1, UnitPrice: 5.00},
	}

	assert.Equal(t, 45.00, Total(materials, 20))
	assert.Equal(t, 25.00, Total(materials, 0))
	assert.Equal(t, 20.00, Total(nil, 20))
}

func TestLineTotal(t *testing.T) {
	m := Material{ItemName: "Fitting", Quantity: 4, UnitPrice: 2.5}
	assert.Equal(t, 10.0, m.LineTotal())
}

func TestDisclaimerMentionsApprentice(t *testing.T) {
	require.Contains(t, Disclaimer, "apprentice")
}
