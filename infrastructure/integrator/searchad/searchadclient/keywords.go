package searchadclient

import (
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/vfg2006/searchad-collector/infrastructure/integrator/searchad/domain"
)

func (c *SearchAdClient) ListKeywords(customerID int64, adgroupID string) ([]domain.AdKeyword, error) {
	query := url.Values{}
	query.Set("nccAdgroupId", adgroupID)

	body, err := c.request(http.MethodGet, "/ncc/keywords", customerID, query, nil)
	if err != nil {
		return nil, err
	}

	var keywords []domain.AdKeyword
	if err := json.Unmarshal(body, &keywords); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a lista de palavras-chave")
	}

	return keywords, nil
}
