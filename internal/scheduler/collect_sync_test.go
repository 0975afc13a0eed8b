package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/searchad-collector/internal/config"
	"github.com/vfg2006/searchad-collector/internal/domain"
)

type fakeCollector struct{}

func (fakeCollector) Run(context.Context, time.Time, int64) ([]domain.AccountResult, error) {
	return nil, nil
}

func newTestCollectSync() *CollectSyncService {
	cfg := &config.Config{
		CollectSync: config.CollectSync{
			CronSchedule: "0 2 * * *",
			Enabled:      true,
		},
	}
	return NewCollectSyncService(fakeCollector{}, cfg)
}

func TestCollectSync_GetStatusRegistraTimestamps(t *testing.T) {
	service := newTestCollectSync()

	status := service.GetStatus()
	assert.True(t, status["last_sync_started_at"].(time.Time).IsZero())

	service.runCollect()

	status = service.GetStatus()
	assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
	assert.Equal(t, "0 2 * * *", status["sync_cron"])
}

// Leituras de status concorrentes com um run não podem disputar os campos
// de timestamp (verificado com -race).
func TestCollectSync_GetStatusConcorrenteComRun(t *testing.T) {
	service := newTestCollectSync()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				service.runCollect()
				_ = service.GetStatus()
			}
		}()
	}
	wg.Wait()

	status := service.GetStatus()
	require.Contains(t, status, "last_sync_completed_at")
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}
