package searchadclient

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/searchad-collector/infrastructure/integrator/searchad/domain"
)

// GetStats consulta as métricas do dia para um lote de ids. O fatiamento em
// lotes (limite de tamanho da query upstream) é responsabilidade do chamador.
func (c *SearchAdClient) GetStats(customerID int64, ids []string, date time.Time) ([]domain.StatEntry, error) {
	dateStr := date.Format(time.DateOnly)

	fields, err := json.Marshal(domain.StatFields)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar os campos de métricas")
	}

	timeRange, err := json.Marshal(domain.TimeRange{Since: dateStr, Until: dateStr})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar o intervalo de datas")
	}

	query := url.Values{}
	query.Set("ids", strings.Join(ids, ","))
	query.Set("fields", string(fields))
	query.Set("timeRange", string(timeRange))

	body, err := c.request(http.MethodGet, "/stats", customerID, query, nil)
	if err != nil {
		return nil, err
	}

	var response domain.StatsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta de métricas")
	}

	return response.Data, nil
}
