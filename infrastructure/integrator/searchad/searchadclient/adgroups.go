package searchadclient

import (
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/vfg2006/searchad-collector/infrastructure/integrator/searchad/domain"
)

func (c *SearchAdClient) ListAdgroups(customerID int64, campaignID string) ([]domain.Adgroup, error) {
	query := url.Values{}
	query.Set("nccCampaignId", campaignID)

	body, err := c.request(http.MethodGet, "/ncc/adgroups", customerID, query, nil)
	if err != nil {
		return nil, err
	}

	var adgroups []domain.Adgroup
	if err := json.Unmarshal(body, &adgroups); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a lista de grupos de anúncios")
	}

	return adgroups, nil
}
