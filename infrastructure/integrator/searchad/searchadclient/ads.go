package searchadclient

import (
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/vfg2006/searchad-collector/infrastructure/integrator/searchad/domain"
)

func (c *SearchAdClient) ListAds(customerID int64, adgroupID string) ([]domain.Ad, error) {
	query := url.Values{}
	query.Set("nccAdgroupId", adgroupID)

	body, err := c.request(http.MethodGet, "/ncc/ads", customerID, query, nil)
	if err != nil {
		return nil, err
	}

	var ads []domain.Ad
	if err := json.Unmarshal(body, &ads); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a lista de anúncios")
	}

	return ads, nil
}

func (c *SearchAdClient) ListAdExtensions(customerID int64, adgroupID string) ([]domain.AdExtension, error) {
	query := url.Values{}
	query.Set("nccAdgroupId", adgroupID)

	body, err := c.request(http.MethodGet, "/ncc/ad-extensions", customerID, query, nil)
	if err != nil {
		return nil, err
	}

	var extensions []domain.AdExtension
	if err := json.Unmarshal(body, &extensions); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a lista de materiais estendidos")
	}

	return extensions, nil
}
