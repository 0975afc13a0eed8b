package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCostExVAT(t *testing.T) {
	tests := []struct {
		name     string
		raw      float64
		expected int64
	}{
		{name: "valor exato", raw: 1100, expected: 1000},
		{name: "arredonda para cima", raw: 110.6, expected: 101},
		{name: "zero", raw: 0, expected: 0},
		{name: "negativo vira zero", raw: -500, expected: 0},
		{name: "valor pequeno", raw: 1, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CostExVAT(tt.raw))
		})
	}
}

func TestRoas(t *testing.T) {
	tests := []struct {
		name     string
		sales    int64
		cost     int64
		expected float64
	}{
		{name: "vendas iguais ao custo", sales: 1000, cost: 1000, expected: 100},
		{name: "vendas cinco vezes o custo", sales: 5000, cost: 1000, expected: 500},
		{name: "arredonda em duas casas", sales: 1000, cost: 3000, expected: 33.33},
		{name: "custo zero retorna exatamente zero", sales: 5000, cost: 0, expected: 0},
		{name: "custo negativo retorna exatamente zero", sales: 5000, cost: -1, expected: 0},
		{name: "sem vendas", sales: 0, cost: 1000, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Roas(tt.sales, tt.cost))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 1.23, RoundWithTwoDecimalPlace(1.2345))
	assert.Equal(t, 1.24, RoundWithTwoDecimalPlace(1.235))
	assert.Equal(t, float64(0), RoundWithTwoDecimalPlace(0))
}
