package collecting

import (
	"context"
	"strings"
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

type collectFixture struct {
	integrator  *integratormocks.MockIntegrator
	accountRepo *repomocks.MockAccountRepository
	catalogRepo *repomocks.MockCatalogRepository
	factRepo    *repomocks.MockFactRepository
	service     *Service
}

func newCollectFixture(t *testing.T, now time.Time) *collectFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &collectFixture{
		integrator:  integratormocks.NewMockIntegrator(ctrl),
		accountRepo: repomocks.NewMockAccountRepository(ctrl),
		catalogRepo: repomocks.NewMockCatalogRepository(ctrl),
		factRepo:    repomocks.NewMockFactRepository(ctrl),
	}

	cfg := &config.Config{
		CollectSync: config.CollectSync{MaxConcurrentJobs: 1},
	}
	f.service = NewService(cfg, f.integrator, f.accountRepo, f.catalogRepo, f.factRepo)
	f.service.now = func() time.Time { return now }
	return f
}

func smallCatalog() *domain.Catalog {
	return &domain.Catalog{
		Campaigns: []domain.CampaignDim{{CustomerID: 123, CampaignID: "cmp-1"}},
		Keywords:  []domain.KeywordDim{{CustomerID: 123, KeywordID: "kwd-1"}},
		Ads:       []domain.AdDim{{CustomerID: 123, AdID: "ad-1"}},
	}
}

func (f *collectFixture) expectCatalogWrite() {
	f.catalogRepo.EXPECT().UpsertCampaigns(gomock.Any(), gomock.Any()).Return(nil)
	f.catalogRepo.EXPECT().UpsertAdgroups(gomock.Any(), gomock.Any()).Return(nil)
	f.catalogRepo.EXPECT().UpsertKeywords(gomock.Any(), gomock.Any()).Return(nil)
	f.catalogRepo.EXPECT().UpsertAds(gomock.Any(), gomock.Any()).Return(nil)
}

func TestRun_DataDeHojeUsaStats(t *testing.T) {
	today := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	target := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	f := newCollectFixture(t, today)

	account := &domain.Account{CustomerID: 123, AccountName: "Loja A"}
	f.accountRepo.EXPECT().GetByCustomerID(int64(123)).Return(account, nil)

	f.integrator.EXPECT().SyncCatalog(int64(123)).Return(smallCatalog(), nil)
	f.expectCatalogWrite()

	// Caminho realtime: /stats com todos os ids do catálogo; nenhum
	// FetchReport esperado
	f.integrator.EXPECT().
		FetchDailyStats(int64(123), []string{"cmp-1", "kwd-1", "ad-1"}, target).
		Return([]searchaddomain.StatEntry{
			{ID: "cmp-1", ImpCnt: 100, ClkCnt: 10, SalesAmt: 1100, Ccnt: 1, ConvAmt: 5000},
			{ID: "kwd-1", ImpCnt: 100, ClkCnt: 10, SalesAmt: 1100, Ccnt: 1, ConvAmt: 5000},
		}, nil)

	f.factRepo.EXPECT().
		ReplaceCampaignDaily(gomock.Any(), int64(123), target, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _ time.Time, rows []domain.FactRow) error {
			require.Len(t, rows, 1)
			assert.Equal(t, "cmp-1", rows[0].EntityID)
			assert.Equal(t, int64(1000), rows[0].Cost)
			return nil
		})
	f.factRepo.EXPECT().
		ReplaceKeywordDaily(gomock.Any(), int64(123), target, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _ time.Time, rows []domain.FactRow) error {
			require.Len(t, rows, 1)
			assert.Equal(t, "kwd-1", rows[0].EntityID)
			return nil
		})
	f.factRepo.EXPECT().
		ReplaceAdDaily(gomock.Any(), int64(123), target, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _ time.Time, rows []domain.FactRow) error {
			assert.Empty(t, rows)
			return nil
		})

	results, err := f.service.Run(context.Background(), target, 123)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, domain.CollectStatusSuccess, results[0].Status)
	assert.Equal(t, 2, results[0].FactRows)
}

func TestRun_DataPassadaUsaRelatorio(t *testing.T) {
	today := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	target := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
	f := newCollectFixture(t, today)

	account := &domain.Account{CustomerID: 123, AccountName: "Loja A"}
	f.accountRepo.EXPECT().GetByCustomerID(int64(123)).Return(account, nil)

	f.integrator.EXPECT().SyncCatalog(int64(123)).Return(smallCatalog(), nil)
	f.expectCatalogWrite()

	tsv := strings.Join([]string{
		"캠페인ID\t키워드ID\t노출수\t클릭수\t총비용\t전환수\t전환매출",
		"cmp-1\tkwd-1\t100\t10\t1100\t1\t5000",
		"cmp-1\tkwd-2\t200\t20\t2200\t2\t10000",
	}, "\n")
	f.integrator.EXPECT().FetchReport(int64(123), target).Return(tsv, nil)

	f.factRepo.EXPECT().
		ReplaceCampaignDaily(gomock.Any(), int64(123), target, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _ time.Time, rows []domain.FactRow) error {
			require.Len(t, rows, 1)
			assert.Equal(t, int64(3000), rows[0].Cost)
			return nil
		})
	f.factRepo.EXPECT().
		ReplaceKeywordDaily(gomock.Any(), int64(123), target, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _ time.Time, rows []domain.FactRow) error {
			require.Len(t, rows, 2)
			return nil
		})
	f.factRepo.EXPECT().
		ReplaceAdDaily(gomock.Any(), int64(123), target, gomock.Any()).
		Return(nil)

	results, err := f.service.Run(context.Background(), target, 123)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, domain.CollectStatusSuccess, results[0].Status)
	assert.Equal(t, 3, results[0].FactRows)
}

func TestRun_ForbiddenPulaContaEContinua(t *testing.T) {
	today := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	target := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
	f := newCollectFixture(t, today)

	blocked := &domain.Account{CustomerID: 111, AccountName: "Bloqueada"}
	healthy := &domain.Account{CustomerID: 222, AccountName: "Saudável"}
	f.accountRepo.EXPECT().ListAccounts().Return([]*domain.Account{blocked, healthy}, nil)

	f.integrator.EXPECT().SyncCatalog(int64(111)).
		Return(nil, errors.Wrap(searchaddomain.ErrForbidden, "GET /ncc/campaigns"))

	f.integrator.EXPECT().SyncCatalog(int64(222)).Return(&domain.Catalog{}, nil)
	f.expectCatalogWrite()
	f.integrator.EXPECT().FetchReport(int64(222), target).Return("", nil)
	f.factRepo.EXPECT().ReplaceCampaignDaily(gomock.Any(), int64(222), target, gomock.Any()).Return(nil)
	f.factRepo.EXPECT().ReplaceKeywordDaily(gomock.Any(), int64(222), target, gomock.Any()).Return(nil)
	f.factRepo.EXPECT().ReplaceAdDaily(gomock.Any(), int64(222), target, gomock.Any()).Return(nil)

	results, err := f.service.Run(context.Background(), target, 0)
	require.NoError(t, err)
	require.Len(t, results, 2)

	summary := domain.Summarize(results)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 1, summary.Success)
}

func TestRun_FalhaEmUmaDimensaoNaoAbortaAConta(t *testing.T) {
	today := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	target := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
	f := newCollectFixture(t, today)

	account := &domain.Account{CustomerID: 123, AccountName: "Loja A"}
	f.accountRepo.EXPECT().GetByCustomerID(int64(123)).Return(account, nil)

	f.integrator.EXPECT().SyncCatalog(int64(123)).Return(smallCatalog(), nil)

	f.catalogRepo.EXPECT().UpsertCampaigns(gomock.Any(), gomock.Any()).
		Return(errors.New("pq: deadlock detected"))
	f.catalogRepo.EXPECT().UpsertAdgroups(gomock.Any(), gomock.Any()).Return(nil)
	f.catalogRepo.EXPECT().UpsertKeywords(gomock.Any(), gomock.Any()).Return(nil)
	f.catalogRepo.EXPECT().UpsertAds(gomock.Any(), gomock.Any()).Return(nil)

	f.integrator.EXPECT().FetchReport(int64(123), target).Return("", nil)

	// Falha em fact_campaign_daily não impede as tabelas irmãs
	f.factRepo.EXPECT().ReplaceCampaignDaily(gomock.Any(), int64(123), target, gomock.Any()).
		Return(errors.New("pq: connection reset"))
	f.factRepo.EXPECT().ReplaceKeywordDaily(gomock.Any(), int64(123), target, gomock.Any()).Return(nil)
	f.factRepo.EXPECT().ReplaceAdDaily(gomock.Any(), int64(123), target, gomock.Any()).Return(nil)

	results, err := f.service.Run(context.Background(), target, 123)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, domain.CollectStatusSuccess, results[0].Status)
}

func TestRun_RetriesEsgotadosNoStatsViraSemDados(t *testing.T) {
	today := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	target := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	f := newCollectFixture(t, today)

	account := &domain.Account{CustomerID: 123, AccountName: "Loja A"}
	f.accountRepo.EXPECT().GetByCustomerID(int64(123)).Return(account, nil)

	f.integrator.EXPECT().SyncCatalog(int64(123)).Return(smallCatalog(), nil)
	f.expectCatalogWrite()

	f.integrator.EXPECT().
		FetchDailyStats(int64(123), gomock.Any(), target).
		Return(nil, errors.Wrap(searchaddomain.ErrMaxRetries, "GET /stats"))

	// Degrada para "sem dados": a faixa (customer, dt) é substituída por vazio
	f.factRepo.EXPECT().ReplaceCampaignDaily(gomock.Any(), int64(123), target, gomock.Any()).Return(nil)
	f.factRepo.EXPECT().ReplaceKeywordDaily(gomock.Any(), int64(123), target, gomock.Any()).Return(nil)
	f.factRepo.EXPECT().ReplaceAdDaily(gomock.Any(), int64(123), target, gomock.Any()).Return(nil)

	results, err := f.service.Run(context.Background(), target, 123)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, domain.CollectStatusSuccess, results[0].Status)
	assert.Equal(t, 0, results[0].FactRows)
}

func TestRun_ContaForaDoRoster(t *testing.T) {
	f := newCollectFixture(t, time.Now())

	f.accountRepo.EXPECT().GetByCustomerID(int64(999)).Return(nil, nil)

	_, err := f.service.Run(context.Background(), time.Now().AddDate(0, 0, -1), 999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "não encontrada no roster")
}
