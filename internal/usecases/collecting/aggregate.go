package collecting

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/searchad-collector/internal/domain"
	"github.com/vfg2006/searchad-collector/pkg/utils"
)

// Sinônimos por coluna lógica do relatório TSV. Os cabeçalhos variam por
// idioma e versão do relatório; o primeiro cabeçalho que contiver qualquer
// sinônimo como substring (normalizado) resolve a coluna.
var (
	campaignIDSynonyms = []string{"캠페인id", "campaignid", "ncccampaignid"}
	keywordIDSynonyms  = []string{"키워드id", "keywordid", "ncckeywordid"}
	adIDSynonyms       = []string{"광고id", "소재id", "adid", "nccadid", "creativeid"}
	impSynonyms        = []string{"노출", "imp"}
	clkSynonyms        = []string{"클릭", "clk", "click"}
	costSynonyms       = []string{"총비용", "비용", "cost", "salesamt"}
	convSynonyms       = []string{"전환수", "전환", "conv", "ccnt"}
	salesSynonyms      = []string{"전환매출", "convamt", "salesamount"}
)

// reportColumns guarda o índice de cada coluna lógica resolvida; -1 indica
// coluna ausente neste tipo de relatório.
type reportColumns struct {
	campaignID int
	keywordID  int
	adID       int
	imp        int
	clk        int
	cost       int
	conv       int
	sales      int
}

func resolveColumns(headers []string) reportColumns {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = normalizeHeader(h)
	}

	return reportColumns{
		campaignID: findColumn(normalized, campaignIDSynonyms),
		keywordID:  findColumn(normalized, keywordIDSynonyms),
		adID:       findColumn(normalized, adIDSynonyms),
		imp:        findColumn(normalized, impSynonyms),
		clk:        findColumn(normalized, clkSynonyms),
		cost:       findColumn(normalized, costSynonyms),
		conv:       findColumn(normalized, convSynonyms),
		sales:      findColumn(normalized, salesSynonyms),
	}
}

func normalizeHeader(header string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(header), " ", ""))
}

func findColumn(normalized []string, synonyms []string) int {
	for i, header := range normalized {
		for _, synonym := range synonyms {
			if strings.Contains(header, synonym) {
				return i
			}
		}
	}
	return -1
}

// metricAcc acumula as métricas de um grupo. O custo chega aqui já sem IVA:
// a normalização é por linha de origem, antes do agrupamento.
type metricAcc struct {
	imp   int64
	clk   int64
	cost  int64
	conv  float64
	sales float64
}

type grouping struct {
	accs  map[string]*metricAcc
	order []string
}

func newGrouping() *grouping {
	return &grouping{accs: make(map[string]*metricAcc)}
}

func (g *grouping) add(id string, imp, clk, cost int64, conv, sales float64) {
	if id == "" {
		return
	}
	acc, ok := g.accs[id]
	if !ok {
		acc = &metricAcc{}
		g.accs[id] = acc
		g.order = append(g.order, id)
	}
	acc.imp += imp
	acc.clk += clk
	acc.cost += cost
	acc.conv += conv
	acc.sales += sales
}

func (g *grouping) rows(customerID int64, dt time.Time) []domain.FactRow {
	rows := make([]domain.FactRow, 0, len(g.order))
	for _, id := range g.order {
		acc := g.accs[id]
		cost := acc.cost
		sales := int64(math.Floor(acc.sales))
		rows = append(rows, domain.FactRow{
			Dt:         dt,
			CustomerID: customerID,
			EntityID:   id,
			Imp:        acc.imp,
			Clk:        acc.clk,
			Cost:       cost,
			Conv:       acc.conv,
			Sales:      sales,
			Roas:       utils.Roas(sales, cost),
		})
	}
	return rows
}

// AggregateReport converte o TSV bruto do relatório em fatos diários nas três
// granularidades. São três group-bys independentes sobre as mesmas linhas de
// origem; linhas com id em branco ficam fora do agrupamento daquela entidade.
// Texto vazio ou só com cabeçalho produz um FactSet vazio, nunca erro.
func AggregateReport(tsvText string, customerID int64, dt time.Time) *domain.FactSet {
	facts := &domain.FactSet{}

	lines := strings.Split(strings.ReplaceAll(tsvText, "\r\n", "\n"), "\n")
	if len(lines) < 2 {
		return facts
	}

	columns := resolveColumns(strings.Split(lines[0], "\t"))

	byCampaign := newGrouping()
	byKeyword := newGrouping()
	byAd := newGrouping()

	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells := strings.Split(line, "\t")

		imp := int64(cellFloat(cells, columns.imp))
		clk := int64(cellFloat(cells, columns.clk))
		// IVA removido linha a linha, antes de somar por grupo
		cost := utils.CostExVAT(cellFloat(cells, columns.cost))
		conv := cellFloat(cells, columns.conv)
		sales := cellFloat(cells, columns.sales)

		byCampaign.add(cellString(cells, columns.campaignID), imp, clk, cost, conv, sales)
		byKeyword.add(cellString(cells, columns.keywordID), imp, clk, cost, conv, sales)
		byAd.add(cellString(cells, columns.adID), imp, clk, cost, conv, sales)
	}

	facts.Campaigns = byCampaign.rows(customerID, dt)
	facts.Keywords = byKeyword.rows(customerID, dt)
	facts.Ads = byAd.rows(customerID, dt)

	return facts
}

func cellString(cells []string, index int) string {
	if index < 0 || index >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[index])
}

// cellFloat coage células numéricas: vazio ou não numérico vira 0, nunca NaN.
func cellFloat(cells []string, index int) float64 {
	raw := cellString(cells, index)
	if raw == "" {
		return 0
	}
	raw = strings.ReplaceAll(raw, ",", "")
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}
