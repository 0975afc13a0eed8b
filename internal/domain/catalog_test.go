package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCampaignTpLabel(t *testing.T) {
	tests := []struct {
		name     string
		tp       string
		expected string
	}{
		{"web_site", "WEB_SITE", "파워링크"},
		{"shopping", "SHOPPING", "쇼핑검색"},
		{"power_content", "POWER_CONTENT", "파워콘텐츠"},
		{"brand_search", "BRAND_SEARCH", "브랜드검색"},
		{"desconhecido passa adiante", "NEW_TYPE", "NEW_TYPE"},
		{"vazio", "", ""},
		{"com espaços", "  place  ", "플레이스"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CampaignTpLabel(tt.tp))
		})
	}
}

func TestCatalogIDs(t *testing.T) {
	catalog := &Catalog{
		Campaigns: []CampaignDim{{CampaignID: "cmp-1"}, {CampaignID: "cmp-2"}},
		Keywords:  []KeywordDim{{KeywordID: "kwd-1"}},
		Ads:       []AdDim{{AdID: "ad-1"}},
	}

	assert.Equal(t, []string{"cmp-1", "cmp-2"}, catalog.CampaignIDs())
	assert.Equal(t, []string{"kwd-1"}, catalog.KeywordIDs())
	assert.Equal(t, []string{"ad-1"}, catalog.AdIDs())
}
