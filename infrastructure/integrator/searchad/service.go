package searchad

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	searchaddomain "github.com/vfg2006/searchad-collector/infrastructure/integrator/searchad/domain"
	"github.com/vfg2006/searchad-collector/infrastructure/integrator/searchad/searchadclient"
	"github.com/vfg2006/searchad-collector/internal/config"
	"github.com/vfg2006/searchad-collector/internal/domain"
)

// Integrator expõe as operações da API SearchAd já traduzidas para o domínio
// interno do coletor.
type Integrator interface {
	SyncCatalog(customerID int64) (*domain.Catalog, error)
	FetchDailyStats(customerID int64, ids []string, date time.Time) ([]searchaddomain.StatEntry, error)
	FetchReport(customerID int64, date time.Time) (string, error)
	FetchBizmoney(customerID int64) (int64, error)
}

type SearchAdIntegrator struct {
	cfg    *config.Config
	client searchadclient.Client

	// Substituível em teste para não esperar o intervalo real de polling.
	sleep func(time.Duration)
}

func New(cfg *config.Config, client searchadclient.Client) *SearchAdIntegrator {
	return &SearchAdIntegrator{
		cfg:    cfg,
		client: client,
		sleep:  time.Sleep,
	}
}

// SyncCatalog percorre a hierarquia campanha -> grupo -> {palavra-chave,
// anúncio} de uma conta. As chamadas são sequenciais: a listagem de grupos
// depende dos ids de campanha já obtidos. Uma campanha sem grupos ainda
// produz sua linha de dimensão.
func (s *SearchAdIntegrator) SyncCatalog(customerID int64) (*domain.Catalog, error) {
	campaigns, err := s.client.ListCampaigns(customerID)
	if err != nil {
		return nil, err
	}

	catalog := &domain.Catalog{}

	for _, campaign := range campaigns {
		catalog.Campaigns = append(catalog.Campaigns, domain.CampaignDim{
			CustomerID:      customerID,
			CampaignID:      campaign.NccCampaignID,
			CampaignName:    campaign.Name,
			CampaignTp:      campaign.CampaignTp,
			CampaignTpLabel: domain.CampaignTpLabel(campaign.CampaignTp),
			Status:          campaign.Status,
		})

		adgroups, err := s.client.ListAdgroups(customerID, campaign.NccCampaignID)
		if err != nil {
			return nil, err
		}

		for _, adgroup := range adgroups {
			catalog.AdGroups = append(catalog.AdGroups, domain.AdGroupDim{
				CustomerID:  customerID,
				AdgroupID:   adgroup.NccAdgroupID,
				CampaignID:  campaign.NccCampaignID,
				AdgroupName: adgroup.Name,
				Status:      adgroup.Status,
			})

			if s.cfg.CollectSync.KeywordsEnabled {
				keywords, err := s.client.ListKeywords(customerID, adgroup.NccAdgroupID)
				if err != nil {
					return nil, err
				}
				for _, keyword := range keywords {
					catalog.Keywords = append(catalog.Keywords, domain.KeywordDim{
						CustomerID: customerID,
						KeywordID:  keyword.NccKeywordID,
						AdgroupID:  adgroup.NccAdgroupID,
						Keyword:    keyword.Keyword,
						Status:     keyword.Status,
					})
				}
			}

			if s.cfg.CollectSync.AdsEnabled {
				ads, err := s.client.ListAds(customerID, adgroup.NccAdgroupID)
				if err != nil {
					return nil, err
				}
				for _, ad := range ads {
					catalog.Ads = append(catalog.Ads, mapAd(customerID, adgroup.NccAdgroupID, ad))
				}
			}

			if s.cfg.CollectSync.AdExtensionsEnabled && campaign.CampaignTp == searchaddomain.CampaignTpShopping {
				extensions, err := s.client.ListAdExtensions(customerID, adgroup.NccAdgroupID)
				if err != nil {
					return nil, err
				}
				for _, extension := range extensions {
					catalog.Ads = append(catalog.Ads, mapAdExtension(customerID, adgroup.NccAdgroupID, extension))
				}
			}
		}
	}

	return catalog, nil
}

// mapAd extrai os campos de criativo pelo lookup ordenado de preferência:
// o esquema do bloco "ad" muda conforme o tipo do anúncio.
func mapAd(customerID int64, adgroupID string, ad searchaddomain.Ad) domain.AdDim {
	title := searchaddomain.ResolveCreativeField(ad.Creative, searchaddomain.CreativeTitleKeys)
	desc := searchaddomain.ResolveCreativeField(ad.Creative, searchaddomain.CreativeDescKeys)

	name := title
	if name == "" {
		name = ad.Type
	}

	return domain.AdDim{
		CustomerID:       customerID,
		AdID:             ad.NccAdID,
		AdgroupID:        adgroupID,
		AdName:           name,
		Status:           ad.Status,
		AdTitle:          title,
		AdDesc:           desc,
		PCLandingURL:     searchaddomain.ResolveCreativeField(ad.Creative, searchaddomain.CreativePCURLKeys),
		MobileLandingURL: searchaddomain.ResolveCreativeField(ad.Creative, searchaddomain.CreativeMobileURLKeys),
		CreativeText:     searchaddomain.CreativeText(title, desc),
	}
}

func mapAdExtension(customerID int64, adgroupID string, extension searchaddomain.AdExtension) domain.AdDim {
	text := searchaddomain.ResolveCreativeField(extension.Extension, searchaddomain.ExtensionTextKeys)
	if text == "" {
		text = extension.ExtensionType
	}
	title := "[확장소재] " + extension.ExtensionType

	return domain.AdDim{
		CustomerID:       customerID,
		AdID:             extension.NccAdExtensionID,
		AdgroupID:        adgroupID,
		AdName:           text,
		Status:           extension.Status,
		AdTitle:          title,
		AdDesc:           text,
		PCLandingURL:     searchaddomain.ResolveCreativeField(extension.Extension, searchaddomain.CreativePCURLKeys),
		MobileLandingURL: searchaddomain.ResolveCreativeField(extension.Extension, searchaddomain.CreativeMobileURLKeys),
		CreativeText:     searchaddomain.CreativeText(title, text),
	}
}

// FetchDailyStats consulta /stats em lotes de ids para respeitar o limite de
// tamanho de query do upstream, concatenando os resultados.
func (s *SearchAdIntegrator) FetchDailyStats(customerID int64, ids []string, date time.Time) ([]searchaddomain.StatEntry, error) {
	batchSize := s.cfg.CollectSync.StatsBatchSize
	if batchSize <= 0 {
		batchSize = 50
	}

	var entries []searchaddomain.StatEntry
	for start := 0; start < len(ids); start += batchSize {
		end := start + batchSize
		if end > len(ids) {
			end = len(ids)
		}

		batch, err := s.client.GetStats(customerID, ids[start:end], date)
		if err != nil {
			return nil, err
		}
		entries = append(entries, batch...)
	}

	return entries, nil
}

// FetchReport executa a máquina de estados do relatório assíncrono: submete
// o job, faz polling em intervalo fixo até um estado terminal e baixa o TSV.
// Qualquer desfecho sem dados (falha de submissão, ERROR, NONE, timeout,
// corpo vazio) retorna string vazia sem erro, resultado esperado para
// contas sem atividade; apenas 403 é propagado.
func (s *SearchAdIntegrator) FetchReport(customerID int64, date time.Time) (string, error) {
	logger := logrus.WithFields(logrus.Fields{
		"customer_id": customerID,
		"date":        date.Format(time.DateOnly),
	})

	job, err := s.client.CreateReportJob(customerID, searchaddomain.ReportTpAd, date)
	if err != nil {
		if errors.Is(err, searchaddomain.ErrForbidden) {
			return "", err
		}
		logger.WithError(err).Warn("Falha ao submeter job de relatório, tratando como sem dados")
		return "", nil
	}

	if job == nil || job.ReportJobID == 0 {
		logger.Info("Submissão de relatório não retornou job id (conta sem atividade reportável)")
		return "", nil
	}

	interval := time.Duration(s.cfg.CollectSync.ReportPollSeconds) * time.Second
	attempts := s.cfg.CollectSync.ReportPollAttempts
	if attempts <= 0 {
		attempts = 30
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		s.sleep(interval)

		polled, err := s.client.GetReportJob(customerID, job.ReportJobID)
		if err != nil {
			if errors.Is(err, searchaddomain.ErrForbidden) {
				return "", err
			}
			logger.WithError(err).Warn("Falha ao consultar status do job de relatório, tratando como sem dados")
			return "", nil
		}

		switch polled.Status {
		case searchaddomain.ReportStatusBuilt:
			if polled.DownloadURL == "" {
				logger.Warn("Job de relatório concluído sem URL de download")
				return "", nil
			}

			text, err := s.client.DownloadReport(customerID, polled.DownloadURL)
			if err != nil {
				if errors.Is(err, searchaddomain.ErrForbidden) {
					return "", err
				}
				logger.WithError(err).Warn("Falha ao baixar o relatório, tratando como sem dados")
				return "", nil
			}
			return text, nil

		case searchaddomain.ReportStatusError, searchaddomain.ReportStatusNone:
			logger.WithField("status", polled.Status).Info("Job de relatório terminou sem dados")
			return "", nil
		}

		// REGIST/RUNNING: continuar o polling.
	}

	logger.WithField("attempts", attempts).Warn("Job de relatório não concluiu dentro do orçamento de polling (timeout)")
	return "", nil
}

// FetchBizmoney retorna o saldo total da conta, somando os subcomponentes
// reportados. Respostas antigas da API trazem apenas o campo bizmoney.
func (s *SearchAdIntegrator) FetchBizmoney(customerID int64) (int64, error) {
	bizmoney, err := s.client.GetBizmoney(customerID)
	if err != nil {
		return 0, err
	}

	total := bizmoney.Total()
	if total == 0 {
		total = bizmoney.Bizmoney
	}

	return total, nil
}
