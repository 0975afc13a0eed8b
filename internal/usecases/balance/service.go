package balance

import (
	"context"
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

// Collector captura o snapshot diário de bizmoney de todas as contas. Não há
// hierarquia a percorrer, então o pool é mais largo que o da coleta principal.
type Collector interface {
	Run(ctx context.Context) ([]domain.AccountResult, error)
}

type Service struct {
	cfg               *config.Config
	integrator        searchad.Integrator
	accountRepository repository.AccountRepository
	balanceRepository repository.BalanceRepository

	now func() time.Time
}

func NewService(
	cfg *config.Config,
	integrator searchad.Integrator,
	accountRepo repository.AccountRepository,
	balanceRepo repository.BalanceRepository,
) *Service {
	return &Service{
		cfg:               cfg,
		integrator:        integrator,
		accountRepository: accountRepo,
		balanceRepository: balanceRepo,
		now:               time.Now,
	}
}

func (s *Service) Run(ctx context.Context) ([]domain.AccountResult, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o id do run")
	}

	logger := logrus.WithField("run_id", runID)

	accounts, err := s.accountRepository.ListAccounts()
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		logger.Warn("Nenhuma conta no roster, nada a coletar")
		return nil, nil
	}

	poolSize := s.cfg.BizmoneySync.MaxConcurrentJobs
	if poolSize <= 0 {
		poolSize = 10
	}

	logger.WithFields(logrus.Fields{
		"accounts":  len(accounts),
		"pool_size": poolSize,
	}).Info("Iniciando run de coleta de bizmoney")

	dt := utils.Truncate(s.now())

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

			result := s.collectBalance(logger, acc, dt)

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
	}).Info("Run de bizmoney finalizado")

	return results, nil
}

func (s *Service) collectBalance(runLogger *logrus.Entry, account *domain.Account, dt time.Time) domain.AccountResult {
	logger := runLogger.WithFields(logrus.Fields{
		"customer_id":  account.CustomerID,
		"account_name": account.AccountName,
	})

	balance, err := s.integrator.FetchBizmoney(account.CustomerID)
	if err != nil {
		if errors.Is(err, searchaddomain.ErrForbidden) {
			logger.WithError(err).Warn("Acesso negado pela API, pulando a conta")
			return domain.SkippedResult(account, "acesso negado (403)")
		}
		logger.WithError(err).Error("Falha ao consultar o saldo de bizmoney")
		return domain.FailedResult(account, err.Error())
	}

	fact := &domain.BalanceFact{
		Dt:         dt,
		CustomerID: account.CustomerID,
		Balance:    balance,
	}
	if err := s.balanceRepository.SaveOrUpdate(fact); err != nil {
		logger.WithError(err).Error("Falha ao gravar fact_bizmoney_daily")
		return domain.FailedResult(account, err.Error())
	}

	logger.WithField("balance", balance).Info("Saldo de bizmoney coletado")
	return domain.SuccessResult(account)
}
