package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/searchad-collector/internal/domain"
)

func TestReplaceRangeDelete(t *testing.T) {
	query, args, err := replaceRangeDelete("fact_campaign_daily", 123, "2026-08-25")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM fact_campaign_daily WHERE customer_id = $1 AND dt = $2", query)
	assert.Equal(t, []interface{}{int64(123), "2026-08-25"}, args)
}

func TestFactInsert(t *testing.T) {
	rows := []domain.FactRow{
		{EntityID: "cmp-1", Imp: 100, Clk: 10, Cost: 1000, Conv: 1, Sales: 5000, Roas: 500},
		{EntityID: "cmp-2", Imp: 50, Clk: 5, Cost: 500, Conv: 0, Sales: 0, Roas: 0},
	}

	query, args, err := factInsert("fact_campaign_daily", "campaign_id", 123, "2026-08-25", rows)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO fact_campaign_daily (dt,customer_id,campaign_id,imp,clk,cost,conv,sales,roas) "+
			"VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9),($10,$11,$12,$13,$14,$15,$16,$17,$18)",
		query)

	require.Len(t, args, 18)
	assert.Equal(t, "2026-08-25", args[0])
	assert.Equal(t, int64(123), args[1])
	assert.Equal(t, "cmp-1", args[2])
	assert.Equal(t, "cmp-2", args[11])
}
