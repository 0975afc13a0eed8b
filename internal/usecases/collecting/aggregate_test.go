package collecting

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var aggregateDate = time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

func TestAggregateReport_CabecalhoCoreano(t *testing.T) {
	tsv := strings.Join([]string{
		"캠페인ID\t키워드ID\t광고ID\t노출수\t클릭수\t총비용\t전환수\t전환매출",
		"cmp-1\tkwd-1\tad-1\t100\t10\t1100\t1\t5000",
		"cmp-1\tkwd-2\tad-1\t200\t20\t2200\t2\t10000",
		"cmp-2\tkwd-3\tad-2\t50\t5\t550\t0\t0",
	}, "\n")

	facts := AggregateReport(tsv, 123, aggregateDate)

	require.Len(t, facts.Campaigns, 2)
	require.Len(t, facts.Keywords, 3)
	require.Len(t, facts.Ads, 2)

	// cmp-1 soma as duas primeiras linhas; IVA removido linha a linha:
	// round(1100/1.1) + round(2200/1.1) = 3000
	cmp1 := facts.Campaigns[0]
	assert.Equal(t, "cmp-1", cmp1.EntityID)
	assert.Equal(t, int64(300), cmp1.Imp)
	assert.Equal(t, int64(30), cmp1.Clk)
	assert.Equal(t, int64(3000), cmp1.Cost)
	assert.Equal(t, float64(3), cmp1.Conv)
	assert.Equal(t, int64(15000), cmp1.Sales)
	assert.Equal(t, int64(123), cmp1.CustomerID)
	assert.Equal(t, aggregateDate, cmp1.Dt)
	assert.InDelta(t, 500.0, cmp1.Roas, 0.001)

	// Ordem de primeira ocorrência preservada
	assert.Equal(t, "cmp-2", facts.Campaigns[1].EntityID)
	assert.Equal(t, "kwd-1", facts.Keywords[0].EntityID)
	assert.Equal(t, "ad-1", facts.Ads[0].EntityID)
}

func TestAggregateReport_IVAPorLinhaAntesDaSoma(t *testing.T) {
	// round(17/1.1) = 15 por linha; somar antes de normalizar daria
	// round(34/1.1) = 31 em vez de 30
	tsv := strings.Join([]string{
		"캠페인ID\t노출수\t클릭수\t총비용\t전환수\t전환매출",
		"cmp-1\t10\t1\t17\t0\t0",
		"cmp-1\t10\t1\t17\t0\t0",
	}, "\n")

	facts := AggregateReport(tsv, 123, aggregateDate)

	require.Len(t, facts.Campaigns, 1)
	assert.Equal(t, int64(30), facts.Campaigns[0].Cost)
}

func TestAggregateReport_SinonimosEmIngles(t *testing.T) {
	tsv := strings.Join([]string{
		"nccCampaignId\tnccKeywordId\tnccAdId\timpCnt\tclkCnt\tsalesAmt\tccnt\tconvAmt",
		"cmp-1\tkwd-1\tad-1\t100\t10\t1100\t1\t5000",
	}, "\n")

	facts := AggregateReport(tsv, 123, aggregateDate)

	require.Len(t, facts.Campaigns, 1)
	assert.Equal(t, int64(100), facts.Campaigns[0].Imp)
	assert.Equal(t, int64(1000), facts.Campaigns[0].Cost)
	assert.Equal(t, int64(5000), facts.Campaigns[0].Sales)
}

func TestAggregateReport_IdEmBrancoFicaForaDoGrupo(t *testing.T) {
	tsv := strings.Join([]string{
		"캠페인ID\t키워드ID\t노출수\t클릭수\t총비용\t전환수\t전환매출",
		"cmp-1\t\t100\t10\t1100\t0\t0",
		"cmp-1\tkwd-1\t50\t5\t550\t0\t0",
	}, "\n")

	facts := AggregateReport(tsv, 123, aggregateDate)

	// Custo de campanha inclui a linha sem keyword id
	require.Len(t, facts.Campaigns, 1)
	assert.Equal(t, int64(150), facts.Campaigns[0].Imp)

	require.Len(t, facts.Keywords, 1)
	assert.Equal(t, int64(50), facts.Keywords[0].Imp)

	assert.Empty(t, facts.Ads)
}

func TestAggregateReport_CoercaoNumerica(t *testing.T) {
	tsv := strings.Join([]string{
		"campaignId\timpCnt\tclkCnt\tcost\tccnt\tconvAmt",
		"cmp-1\t1,234\tabc\t\tNaN\t99.9",
	}, "\n")

	facts := AggregateReport(tsv, 123, aggregateDate)

	require.Len(t, facts.Campaigns, 1)
	row := facts.Campaigns[0]
	assert.Equal(t, int64(1234), row.Imp)
	assert.Equal(t, int64(0), row.Clk)
	assert.Equal(t, int64(0), row.Cost)
	assert.Equal(t, float64(0), row.Conv)
	assert.Equal(t, int64(99), row.Sales)
	// Custo zero: ROAS é exatamente zero, nunca NaN/Inf
	assert.Equal(t, float64(0), row.Roas)
}

func TestAggregateReport_QuebrasDeLinhaWindows(t *testing.T) {
	tsv := "campaignId\timpCnt\tclkCnt\tcost\tccnt\tconvAmt\r\n" +
		"cmp-1\t10\t1\t110\t0\t0\r\n"

	facts := AggregateReport(tsv, 123, aggregateDate)

	require.Len(t, facts.Campaigns, 1)
	assert.Equal(t, int64(100), facts.Campaigns[0].Cost)
}

func TestAggregateReport_TextoVazio(t *testing.T) {
	for _, tsv := range []string{"", "캠페인ID\t노출수"} {
		facts := AggregateReport(tsv, 123, aggregateDate)
		assert.Empty(t, facts.Campaigns)
		assert.Empty(t, facts.Keywords)
		assert.Empty(t, facts.Ads)
	}
}
