package collecting

import (
	"math"
	"time"

	searchaddomain "github.com/vfg2006/searchad-collector/infrastructure/integrator/searchad/domain"
	"github.com/vfg2006/searchad-collector/internal/domain"
	"github.com/vfg2006/searchad-collector/pkg/utils"
)

// parseStats converte as entradas do /stats em fatos diários. salesAmt chega
// com IVA incluso; a normalização acontece aqui, uma única vez por linha.
func parseStats(entries []searchaddomain.StatEntry, customerID int64, dt time.Time) []domain.FactRow {
	rows := make([]domain.FactRow, 0, len(entries))
	for _, entry := range entries {
		cost := utils.CostExVAT(entry.SalesAmt)
		sales := int64(math.Floor(entry.ConvAmt))
		rows = append(rows, domain.FactRow{
			Dt:         dt,
			CustomerID: customerID,
			EntityID:   entry.ID,
			Imp:        entry.ImpCnt,
			Clk:        entry.ClkCnt,
			Cost:       cost,
			Conv:       entry.Ccnt,
			Sales:      sales,
			Roas:       utils.Roas(sales, cost),
		})
	}
	return rows
}

// splitStatsByEntity separa as linhas do snapshot em tempo real por
// granularidade, usando os conjuntos de ids do catálogo recém-sincronizado.
func splitStatsByEntity(rows []domain.FactRow, catalog *domain.Catalog) *domain.FactSet {
	campaignIDs := toSet(catalog.CampaignIDs())
	keywordIDs := toSet(catalog.KeywordIDs())
	adIDs := toSet(catalog.AdIDs())

	facts := &domain.FactSet{}
	for _, row := range rows {
		switch {
		case campaignIDs[row.EntityID]:
			facts.Campaigns = append(facts.Campaigns, row)
		case keywordIDs[row.EntityID]:
			facts.Keywords = append(facts.Keywords, row)
		case adIDs[row.EntityID]:
			facts.Ads = append(facts.Ads, row)
		}
	}
	return facts
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
