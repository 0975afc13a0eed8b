package searchadclient

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/searchad-collector/infrastructure/integrator/searchad/domain"
	"github.com/vfg2006/searchad-collector/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	ListCampaigns(customerID int64) ([]domain.Campaign, error)
	ListAdgroups(customerID int64, campaignID string) ([]domain.Adgroup, error)
	ListKeywords(customerID int64, adgroupID string) ([]domain.AdKeyword, error)
	ListAds(customerID int64, adgroupID string) ([]domain.Ad, error)
	ListAdExtensions(customerID int64, adgroupID string) ([]domain.AdExtension, error)
	GetStats(customerID int64, ids []string, date time.Time) ([]domain.StatEntry, error)
	CreateReportJob(customerID int64, reportTp string, date time.Time) (*domain.ReportJob, error)
	GetReportJob(customerID int64, jobID int64) (*domain.ReportJob, error)
	DownloadReport(customerID int64, downloadURL string) (string, error)
	GetBizmoney(customerID int64) (*domain.Bizmoney, error)
}

type SearchAdClient struct {
	cfg        config.SearchAd
	httpClient *http.Client

	// Substituíveis em teste.
	now   func() time.Time
	sleep func(time.Duration)
}

func NewClient(cfg *config.Config) Client {
	return &SearchAdClient{
		cfg: cfg.SearchAd,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.SearchAd.TimeoutSeconds) * time.Second,
		},
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// request executa uma chamada assinada contra a API, com retries de atraso
// fixo para 429/5xx/falhas de rede. 403 não é retentado.
func (c *SearchAdClient) request(method, path string, customerID int64, query url.Values, body interface{}) ([]byte, error) {
	endpoint := c.cfg.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload []byte
	if body != nil {
		serialized, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao serializar o corpo da requisição")
		}
		payload = serialized
	}

	return c.do(method, endpoint, path, customerID, payload)
}

// do é o núcleo compartilhado entre chamadas à API e o download de
// relatórios (cuja URL pode apontar para outro host).
func (c *SearchAdClient) do(method, endpoint, signPath string, customerID int64, payload []byte) ([]byte, error) {
	attempts := c.cfg.RetryMaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	delay := time.Duration(c.cfg.RetryDelaySeconds) * time.Second

	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			c.sleep(delay)
		}

		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequest(method, endpoint, reader)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao criar a requisição")
		}

		// Cabeçalhos reconstruídos a cada tentativa: o timestamp integra a
		// mensagem assinada.
		c.setHeaders(req, method, signPath, customerID)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			logrus.WithError(err).WithFields(logrus.Fields{
				"path":    signPath,
				"attempt": attempt,
			}).Warn("Falha de rede na chamada à API SearchAd, tentando novamente")
			continue
		}

		respBody, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			continue
		}

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			return respBody, nil

		case resp.StatusCode == http.StatusForbidden:
			return nil, errors.Wrapf(domain.ErrForbidden, "%s %s (customer %d)", method, signPath, customerID)

		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			lastErr = fmt.Errorf("status %d: %s", resp.StatusCode, truncateBody(respBody))
			logrus.WithFields(logrus.Fields{
				"path":        signPath,
				"status_code": resp.StatusCode,
				"attempt":     attempt,
			}).Warn("Resposta transiente da API SearchAd, tentando novamente")
			continue

		default:
			return nil, fmt.Errorf("erro na chamada %s %s: status %d: %s", method, signPath, resp.StatusCode, truncateBody(respBody))
		}
	}

	return nil, errors.Wrapf(domain.ErrMaxRetries, "%s %s: última falha: %v", method, signPath, lastErr)
}

func (c *SearchAdClient) setHeaders(req *http.Request, method, path string, customerID int64) {
	timestamp := strconv.FormatInt(c.now().UnixMilli(), 10)

	req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	req.Header.Set("X-Timestamp", timestamp)
	req.Header.Set("X-API-KEY", c.cfg.APIKey)
	req.Header.Set("X-Customer", strconv.FormatInt(customerID, 10))
	req.Header.Set("X-Signature", Sign(method, path, timestamp, c.cfg.APISecret))
}

func truncateBody(body []byte) string {
	const max = 200
	if len(body) > max {
		return string(body[:max])
	}
	return string(body)
}
