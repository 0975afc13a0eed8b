package utils

import "math"

// vatRate é a alíquota fixa de IVA embutida no gasto reportado pela API.
const vatRate = 1.1

// CostExVAT remove o IVA do custo bruto reportado pela API. Deve ser aplicado
// exatamente uma vez por pipeline, sempre sobre o valor bruto.
func CostExVAT(raw float64) int64 {
	if raw <= 0 {
		return 0
	}
	return int64(math.Round(raw / vatRate))
}

// Roas calcula vendas/custo em percentual, com duas casas decimais. Nunca
// NaN/Inf: retorna exatamente 0 quando o custo é zero.
func Roas(sales, cost int64) float64 {
	if cost <= 0 {
		return 0
	}
	return RoundWithTwoDecimalPlace(float64(sales) / float64(cost) * 100.0)
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
