package searchadclient

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/searchad-collector/infrastructure/integrator/searchad/domain"
)

func (c *SearchAdClient) GetBizmoney(customerID int64) (*domain.Bizmoney, error) {
	body, err := c.request(http.MethodGet, "/billing/bizmoney", customerID, nil, nil)
	if err != nil {
		return nil, err
	}

	var bizmoney domain.Bizmoney
	if err := json.Unmarshal(body, &bizmoney); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar o saldo de bizmoney")
	}

	return &bizmoney, nil
}
