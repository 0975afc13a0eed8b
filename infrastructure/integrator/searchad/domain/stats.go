package domain

// StatFields são os campos solicitados ao endpoint /stats.
var StatFields = []string{"impCnt", "clkCnt", "salesAmt", "ccnt", "convAmt"}

type StatsResponse struct {
	Data []StatEntry `json:"data"`
}

// StatEntry é a métrica diária de uma entidade retornada por /stats.
// salesAmt é o gasto com IVA incluso; convAmt é a receita de conversão.
type StatEntry struct {
	ID       string  `json:"id"`
	ImpCnt   int64   `json:"impCnt"`
	ClkCnt   int64   `json:"clkCnt"`
	SalesAmt float64 `json:"salesAmt"`
	Ccnt     float64 `json:"ccnt"`
	ConvAmt  float64 `json:"convAmt"`
}

type TimeRange struct {
	Since string `json:"since"`
	Until string `json:"until"`
}
