package domain

import "strings"

// Entidades do catálogo hierárquico (dimensões). Chave primária composta
// (customer_id, entity_id); atualizadas por upsert, nunca removidas pelo core.

type CampaignDim struct {
	CustomerID      int64
	CampaignID      string
	CampaignName    string
	CampaignTp      string
	CampaignTpLabel string
	Status          string
}

type AdGroupDim struct {
	CustomerID  int64
	AdgroupID   string
	CampaignID  string
	AdgroupName string
	Status      string
}

type KeywordDim struct {
	CustomerID int64
	KeywordID  string
	AdgroupID  string
	Keyword    string
	Status     string
}

type AdDim struct {
	CustomerID       int64
	AdID             string
	AdgroupID        string
	AdName           string
	Status           string
	AdTitle          string
	AdDesc           string
	PCLandingURL     string
	MobileLandingURL string
	CreativeText     string
}

// Catalog é o resultado da varredura completa da hierarquia de uma conta:
// campanha -> grupo de anúncio -> {palavra-chave, anúncio}.
type Catalog struct {
	Campaigns []CampaignDim
	AdGroups  []AdGroupDim
	Keywords  []KeywordDim
	Ads       []AdDim
}

func (c *Catalog) CampaignIDs() []string {
	ids := make([]string, 0, len(c.Campaigns))
	for _, cp := range c.Campaigns {
		ids = append(ids, cp.CampaignID)
	}
	return ids
}

func (c *Catalog) KeywordIDs() []string {
	ids := make([]string, 0, len(c.Keywords))
	for _, k := range c.Keywords {
		ids = append(ids, k.KeywordID)
	}
	return ids
}

func (c *Catalog) AdIDs() []string {
	ids := make([]string, 0, len(c.Ads))
	for _, a := range c.Ads {
		ids = append(ids, a.AdID)
	}
	return ids
}

// campaignTpLabels mapeia o campaignTp da API para o rótulo exibido pela
// plataforma. Valores desconhecidos passam adiante sem tradução.
var campaignTpLabels = map[string]string{
	"web_site":        "파워링크",
	"website":         "파워링크",
	"power_link":      "파워링크",
	"shopping":        "쇼핑검색",
	"shopping_search": "쇼핑검색",
	"power_content":   "파워콘텐츠",
	"power_contents":  "파워콘텐츠",
	"powercontent":    "파워콘텐츠",
	"place":           "플레이스",
	"place_search":    "플레이스",
	"brand_search":    "브랜드검색",
	"brandsearch":     "브랜드검색",
}

func CampaignTpLabel(tp string) string {
	t := strings.TrimSpace(tp)
	if t == "" {
		return ""
	}
	if label, ok := campaignTpLabels[strings.ToLower(t)]; ok {
		return label
	}
	return t
}
