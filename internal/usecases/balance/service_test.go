package balance

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	searchaddomain "github.com/vfg2006/searchad-collector/infrastructure/integrator/searchad/domain"
	integratormocks "github.com/vfg2006/searchad-collector/infrastructure/integrator/searchad/mocks"
	repomocks "github.com/vfg2006/searchad-collector/infrastructure/repository/mocks"
	"github.com/vfg2006/searchad-collector/internal/config"
	"github.com/vfg2006/searchad-collector/internal/domain"
	"go.uber.org/mock/gomock"
)

type balanceFixture struct {
	integrator  *integratormocks.MockIntegrator
	accountRepo *repomocks.MockAccountRepository
	balanceRepo *repomocks.MockBalanceRepository
	service     *Service
}

func newBalanceFixture(t *testing.T, now time.Time) *balanceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &balanceFixture{
		integrator:  integratormocks.NewMockIntegrator(ctrl),
		accountRepo: repomocks.NewMockAccountRepository(ctrl),
		balanceRepo: repomocks.NewMockBalanceRepository(ctrl),
	}

	cfg := &config.Config{
		BizmoneySync: config.BizmoneySync{MaxConcurrentJobs: 1},
	}
	f.service = NewService(cfg, f.integrator, f.accountRepo, f.balanceRepo)
	f.service.now = func() time.Time { return now }
	return f
}

func TestRun_SaldoPersistidoComDataTruncada(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 30, 45, 0, time.UTC)
	f := newBalanceFixture(t, now)

	account := &domain.Account{CustomerID: 123, AccountName: "Loja A"}
	f.accountRepo.EXPECT().ListAccounts().Return([]*domain.Account{account}, nil)
	f.integrator.EXPECT().FetchBizmoney(int64(123)).Return(int64(45000), nil)

	f.balanceRepo.EXPECT().SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(fact *domain.BalanceFact) error {
			assert.Equal(t, int64(123), fact.CustomerID)
			assert.Equal(t, int64(45000), fact.Balance)
			assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), fact.Dt)
			return nil
		})

	results, err := f.service.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, domain.CollectStatusSuccess, results[0].Status)
}

func TestRun_ForbiddenPulaContaEContinua(t *testing.T) {
	f := newBalanceFixture(t, time.Now())

	blocked := &domain.Account{CustomerID: 111, AccountName: "Bloqueada"}
	healthy := &domain.Account{CustomerID: 222, AccountName: "Saudável"}
	f.accountRepo.EXPECT().ListAccounts().Return([]*domain.Account{blocked, healthy}, nil)

	f.integrator.EXPECT().FetchBizmoney(int64(111)).
		Return(int64(0), errors.Wrap(searchaddomain.ErrForbidden, "GET /billing/bizmoney"))
	f.integrator.EXPECT().FetchBizmoney(int64(222)).Return(int64(100), nil)
	f.balanceRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	results, err := f.service.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)

	summary := domain.Summarize(results)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 1, summary.Success)
}

func TestRun_FalhaDeEscritaMarcaContaComoFailed(t *testing.T) {
	f := newBalanceFixture(t, time.Now())

	account := &domain.Account{CustomerID: 123, AccountName: "Loja A"}
	f.accountRepo.EXPECT().ListAccounts().Return([]*domain.Account{account}, nil)
	f.integrator.EXPECT().FetchBizmoney(int64(123)).Return(int64(100), nil)
	f.balanceRepo.EXPECT().SaveOrUpdate(gomock.Any()).
		Return(errors.New("pq: connection reset"))

	results, err := f.service.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, domain.CollectStatusFailed, results[0].Status)
}

func TestRun_RosterVazio(t *testing.T) {
	f := newBalanceFixture(t, time.Now())

	f.accountRepo.EXPECT().ListAccounts().Return(nil, nil)

	results, err := f.service.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, results)
}
