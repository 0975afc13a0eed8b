package searchadclient

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/searchad-collector/infrastructure/integrator/searchad/domain"
)

func (c *SearchAdClient) ListCampaigns(customerID int64) ([]domain.Campaign, error) {
	body, err := c.request(http.MethodGet, "/ncc/campaigns", customerID, nil, nil)
	if err != nil {
		return nil, err
	}

	var campaigns []domain.Campaign
	if err := json.Unmarshal(body, &campaigns); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a lista de campanhas")
	}

	return campaigns, nil
}
