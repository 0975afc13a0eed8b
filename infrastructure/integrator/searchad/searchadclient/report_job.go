package searchadclient

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/searchad-collector/infrastructure/integrator/searchad/domain"
)

func (c *SearchAdClient) CreateReportJob(customerID int64, reportTp string, date time.Time) (*domain.ReportJob, error) {
	request := domain.ReportJobRequest{
		ReportTp: reportTp,
		StatDt:   date.Format("20060102"),
	}

	body, err := c.request(http.MethodPost, "/stat-reports", customerID, nil, request)
	if err != nil {
		return nil, err
	}

	var job domain.ReportJob
	if err := json.Unmarshal(body, &job); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar o job de relatório")
	}

	return &job, nil
}

func (c *SearchAdClient) GetReportJob(customerID int64, jobID int64) (*domain.ReportJob, error) {
	path := fmt.Sprintf("/stat-reports/%d", jobID)

	body, err := c.request(http.MethodGet, path, customerID, nil, nil)
	if err != nil {
		return nil, err
	}

	var job domain.ReportJob
	if err := json.Unmarshal(body, &job); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar o status do job de relatório")
	}

	return &job, nil
}

// DownloadReport baixa o conteúdo TSV do relatório. A URL pode apontar para
// um host de terceiros; a assinatura cobre apenas o path da URL. Corpo vazio
// significa "sem dados", não erro.
func (c *SearchAdClient) DownloadReport(customerID int64, downloadURL string) (string, error) {
	parsed, err := url.Parse(downloadURL)
	if err != nil {
		return "", errors.Wrap(err, "erro ao interpretar a URL de download do relatório")
	}

	body, err := c.do(http.MethodGet, downloadURL, parsed.Path, customerID, nil)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
