package collecting

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/searchad-collector/infrastructure/integrator/searchad"
	searchaddomain "github.com/vfg2006/searchad-collector/infrastructure/integrator/searchad/domain"
	"github.com/vfg2006/searchad-collector/infrastructure/repository"
	"github.com/vfg2006/searchad-collector/internal/config"
	"github.com/vfg2006/searchad-collector/internal/domain"
	"github.com/vfg2006/searchad-collector/pkg/utils"
)

// Collector executa um run de coleta: uma tarefa por conta em um pool
// limitado, cada uma percorrendo catálogo -> métricas -> warehouse.
type Collector interface {
	Run(ctx context.Context, targetDate time.Time, customerID int64) ([]domain.AccountResult, error)
}

type Service struct {
	cfg               *config.Config
	integrator        searchad.Integrator
	accountRepository repository.AccountRepository
	catalogRepository repository.CatalogRepository
	factRepository    repository.FactRepository

	// Substituível em teste para fixar o "hoje" do branch realtime/report.
	now func() time.Time
}

func NewService(
	cfg *config.Config,
	integrator searchad.Integrator,
	accountRepo repository.AccountRepository,
	catalogRepo repository.CatalogRepository,
	factRepo repository.FactRepository,
) *Service {
	return &Service{
		cfg:               cfg,
		integrator:        integrator,
		accountRepository: accountRepo,
		catalogRepository: catalogRepo,
		factRepository:    factRepo,
		now:               time.Now,
	}
}

// Run coleta todas as contas do roster (ou só customerID, quando informado)
// para a data alvo. Nenhuma falha individual aborta o lote: cada conta
// resolve para success, skipped ou failed e o run sempre chega ao fim.
func (s *Service) Run(ctx context.Context, targetDate time.Time, customerID int64) ([]domain.AccountResult, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o id do run")
	}

	logger := logrus.WithFields(logrus.Fields{
		"run_id": runID,
		"date":   targetDate.Format(time.DateOnly),
	})

	accounts, err := s.resolveAccounts(customerID)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		logger.Warn("Nenhuma conta no roster, nada a coletar")
		return nil, nil
	}

	poolSize := s.cfg.CollectSync.MaxConcurrentJobs
	if poolSize <= 0 {
		poolSize = 2
	}

	logger.WithFields(logrus.Fields{
		"accounts":  len(accounts),
		"pool_size": poolSize,
	}).Info("Iniciando run de coleta")

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		results   = make([]domain.AccountResult, 0, len(accounts))
		semaphore = make(chan struct{}, poolSize)
	)

	for _, account := range accounts {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(acc *domain.Account) {
			defer wg.Done()
			defer func() { <-semaphore }()

			result := s.collectAccount(ctx, logger, acc, targetDate)

			mu.Lock()
			results = append(results, result)
			mu.Unlock()
		}(account)
	}

	wg.Wait()

	summary := domain.Summarize(results)
	logger.WithFields(logrus.Fields{
		"success": summary.Success,
		"skipped": summary.Skipped,
		"failed":  summary.Failed,
	}).Info("Run de coleta finalizado")

	return results, nil
}

func (s *Service) resolveAccounts(customerID int64) ([]*domain.Account, error) {
	if customerID != 0 {
		account, err := s.accountRepository.GetByCustomerID(customerID)
		if err != nil {
			return nil, err
		}
		if account == nil {
			return nil, fmt.Errorf("conta %d não encontrada no roster", customerID)
		}
		return []*domain.Account{account}, nil
	}

	return s.accountRepository.ListAccounts()
}

// collectAccount executa a tarefa completa de uma conta. Toda falha é
// capturada aqui e traduzida em um AccountResult; nada escapa para o pool.
func (s *Service) collectAccount(ctx context.Context, runLogger *logrus.Entry, account *domain.Account, targetDate time.Time) domain.AccountResult {
	start := time.Now()
	logger := runLogger.WithFields(logrus.Fields{
		"customer_id":  account.CustomerID,
		"account_name": account.AccountName,
	})

	catalog, err := s.integrator.SyncCatalog(account.CustomerID)
	if err != nil {
		if errors.Is(err, searchaddomain.ErrForbidden) {
			logger.WithError(err).Warn("Acesso negado pela API, pulando a conta")
			return withDuration(domain.SkippedResult(account, "acesso negado (403)"), start)
		}
		logger.WithError(err).Error("Falha ao sincronizar o catálogo da conta")
		return withDuration(domain.FailedResult(account, err.Error()), start)
	}

	s.writeCatalog(ctx, logger, catalog)

	facts, err := s.collectFacts(account.CustomerID, catalog, targetDate, logger)
	if err != nil {
		if errors.Is(err, searchaddomain.ErrForbidden) {
			logger.WithError(err).Warn("Acesso negado pela API durante a coleta de métricas, pulando a conta")
			return withDuration(domain.SkippedResult(account, "acesso negado (403)"), start)
		}
		logger.WithError(err).Error("Falha ao coletar métricas da conta")
		return withDuration(domain.FailedResult(account, err.Error()), start)
	}

	written := s.writeFacts(ctx, logger, account.CustomerID, targetDate, facts)

	result := domain.SuccessResult(account)
	result.Campaigns = len(catalog.Campaigns)
	result.Keywords = len(catalog.Keywords)
	result.Ads = len(catalog.Ads)
	result.FactRows = written
	result.Duration = time.Since(start)

	logger.WithFields(logrus.Fields{
		"campaigns": result.Campaigns,
		"keywords":  result.Keywords,
		"ads":       result.Ads,
		"fact_rows": result.FactRows,
		"duration":  result.Duration.String(),
	}).Info("Conta coletada")

	return result
}

// withDuration preenche a duração de um resultado que terminou antes da
// escrita de fatos.
func withDuration(result domain.AccountResult, start time.Time) domain.AccountResult {
	result.Duration = time.Since(start)
	return result
}

// collectFacts decide o caminho de coleta: /stats em tempo real quando a data
// alvo é hoje, relatório assíncrono agregado para datas passadas.
func (s *Service) collectFacts(customerID int64, catalog *domain.Catalog, targetDate time.Time, logger *logrus.Entry) (*domain.FactSet, error) {
	if utils.SameDay(targetDate, s.now()) {
		return s.collectRealtime(customerID, catalog, targetDate, logger)
	}
	return s.collectFromReport(customerID, targetDate)
}

func (s *Service) collectRealtime(customerID int64, catalog *domain.Catalog, targetDate time.Time, logger *logrus.Entry) (*domain.FactSet, error) {
	ids := append(append(catalog.CampaignIDs(), catalog.KeywordIDs()...), catalog.AdIDs()...)
	if len(ids) == 0 {
		return &domain.FactSet{}, nil
	}

	entries, err := s.integrator.FetchDailyStats(customerID, ids, targetDate)
	if err != nil {
		if errors.Is(err, searchaddomain.ErrMaxRetries) {
			logger.WithError(err).Warn("Retries esgotados no /stats, seguindo sem dados para a conta")
			return &domain.FactSet{}, nil
		}
		return nil, err
	}

	return splitStatsByEntity(parseStats(entries, customerID, targetDate), catalog), nil
}

func (s *Service) collectFromReport(customerID int64, targetDate time.Time) (*domain.FactSet, error) {
	text, err := s.integrator.FetchReport(customerID, targetDate)
	if err != nil {
		return nil, err
	}
	return AggregateReport(text, customerID, targetDate), nil
}

// writeCatalog grava as dimensões. Falha em uma tabela é registrada e não
// impede a escrita das demais.
func (s *Service) writeCatalog(ctx context.Context, logger *logrus.Entry, catalog *domain.Catalog) {
	if err := s.catalogRepository.UpsertCampaigns(ctx, catalog.Campaigns); err != nil {
		logger.WithError(err).Error("Falha ao gravar dim_campaign")
	}
	if err := s.catalogRepository.UpsertAdgroups(ctx, catalog.AdGroups); err != nil {
		logger.WithError(err).Error("Falha ao gravar dim_adgroup")
	}
	if err := s.catalogRepository.UpsertKeywords(ctx, catalog.Keywords); err != nil {
		logger.WithError(err).Error("Falha ao gravar dim_keyword")
	}
	if err := s.catalogRepository.UpsertAds(ctx, catalog.Ads); err != nil {
		logger.WithError(err).Error("Falha ao gravar dim_ad")
	}
}

// writeFacts substitui a faixa (customer, dt) das três tabelas de fato.
// Retorna o total de linhas efetivamente gravadas.
func (s *Service) writeFacts(ctx context.Context, logger *logrus.Entry, customerID int64, targetDate time.Time, facts *domain.FactSet) int {
	written := 0

	if err := s.factRepository.ReplaceCampaignDaily(ctx, customerID, targetDate, facts.Campaigns); err != nil {
		logger.WithError(err).Error("Falha ao gravar fact_campaign_daily")
	} else {
		written += len(facts.Campaigns)
	}

	if err := s.factRepository.ReplaceKeywordDaily(ctx, customerID, targetDate, facts.Keywords); err != nil {
		logger.WithError(err).Error("Falha ao gravar fact_keyword_daily")
	} else {
		written += len(facts.Keywords)
	}

	if err := s.factRepository.ReplaceAdDaily(ctx, customerID, targetDate, facts.Ads); err != nil {
		logger.WithError(err).Error("Falha ao gravar fact_ad_daily")
	} else {
		written += len(facts.Ads)
	}

	return written
}
