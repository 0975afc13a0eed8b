package domain

import "time"

// FactRow é uma linha de fato diária por entidade (campanha, palavra-chave ou
// anúncio). Custo sempre sem IVA; roas exatamente 0 quando cost == 0.
type FactRow struct {
	Dt         time.Time
	CustomerID int64
	EntityID   string
	Imp        int64
	Clk        int64
	Cost       int64
	Conv       float64
	Sales      int64
	Roas       float64
}

// FactSet agrupa as três granularidades produzidas por um mesmo run.
type FactSet struct {
	Campaigns []FactRow
	Keywords  []FactRow
	Ads       []FactRow
}

func (f *FactSet) Total() int {
	return len(f.Campaigns) + len(f.Keywords) + len(f.Ads)
}

// BalanceFact é o saldo de bizmoney de uma conta em um dia.
type BalanceFact struct {
	Dt         time.Time
	CustomerID int64
	Balance    int64
}
