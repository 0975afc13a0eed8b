package repository

import (
	"context"
	"fmt"

	"github.com/vfg2006/searchad-collector/infrastructure/database/postgres"
)

// schemaStatements cria as tabelas do warehouse quando ausentes. A ordem
// importa apenas para leitura: dimensões antes dos fatos.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS dim_account (
		customer_id BIGINT PRIMARY KEY,
		account_name TEXT NOT NULL DEFAULT '',
		manager TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS dim_campaign (
		customer_id BIGINT NOT NULL,
		campaign_id TEXT NOT NULL,
		campaign_name TEXT NOT NULL DEFAULT '',
		campaign_tp TEXT NOT NULL DEFAULT '',
		campaign_tp_label TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (customer_id, campaign_id)
	)`,
	`CREATE TABLE IF NOT EXISTS dim_adgroup (
		customer_id BIGINT NOT NULL,
		adgroup_id TEXT NOT NULL,
		campaign_id TEXT NOT NULL DEFAULT '',
		adgroup_name TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (customer_id, adgroup_id)
	)`,
	`CREATE TABLE IF NOT EXISTS dim_keyword (
		customer_id BIGINT NOT NULL,
		keyword_id TEXT NOT NULL,
		adgroup_id TEXT NOT NULL DEFAULT '',
		keyword TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (customer_id, keyword_id)
	)`,
	`CREATE TABLE IF NOT EXISTS dim_ad (
		customer_id BIGINT NOT NULL,
		ad_id TEXT NOT NULL,
		adgroup_id TEXT NOT NULL DEFAULT '',
		ad_name TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT '',
		ad_title TEXT NOT NULL DEFAULT '',
		ad_desc TEXT NOT NULL DEFAULT '',
		pc_landing_url TEXT NOT NULL DEFAULT '',
		mobile_landing_url TEXT NOT NULL DEFAULT '',
		creative_text TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (customer_id, ad_id)
	)`,
	`CREATE TABLE IF NOT EXISTS fact_campaign_daily (
		dt DATE NOT NULL,
		customer_id BIGINT NOT NULL,
		campaign_id TEXT NOT NULL,
		imp BIGINT NOT NULL DEFAULT 0,
		clk BIGINT NOT NULL DEFAULT 0,
		cost BIGINT NOT NULL DEFAULT 0,
		conv DOUBLE PRECISION NOT NULL DEFAULT 0,
		sales BIGINT NOT NULL DEFAULT 0,
		roas DOUBLE PRECISION NOT NULL DEFAULT 0,
		collected_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (dt, customer_id, campaign_id)
	)`,
	`CREATE TABLE IF NOT EXISTS fact_keyword_daily (
		dt DATE NOT NULL,
		customer_id BIGINT NOT NULL,
		keyword_id TEXT NOT NULL,
		imp BIGINT NOT NULL DEFAULT 0,
		clk BIGINT NOT NULL DEFAULT 0,
		cost BIGINT NOT NULL DEFAULT 0,
		conv DOUBLE PRECISION NOT NULL DEFAULT 0,
		sales BIGINT NOT NULL DEFAULT 0,
		roas DOUBLE PRECISION NOT NULL DEFAULT 0,
		collected_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (dt, customer_id, keyword_id)
	)`,
	`CREATE TABLE IF NOT EXISTS fact_ad_daily (
		dt DATE NOT NULL,
		customer_id BIGINT NOT NULL,
		ad_id TEXT NOT NULL,
		imp BIGINT NOT NULL DEFAULT 0,
		clk BIGINT NOT NULL DEFAULT 0,
		cost BIGINT NOT NULL DEFAULT 0,
		conv DOUBLE PRECISION NOT NULL DEFAULT 0,
		sales BIGINT NOT NULL DEFAULT 0,
		roas DOUBLE PRECISION NOT NULL DEFAULT 0,
		collected_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (dt, customer_id, ad_id)
	)`,
	`CREATE TABLE IF NOT EXISTS fact_bizmoney_daily (
		dt DATE NOT NULL,
		customer_id BIGINT NOT NULL,
		bizmoney_balance BIGINT NOT NULL DEFAULT 0,
		collected_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (dt, customer_id)
	)`,
}

// EnsureSchema cria as tabelas do warehouse no boot quando ainda não existem.
func EnsureSchema(ctx context.Context, conn *postgres.Connection) error {
	for _, stmt := range schemaStatements {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao criar o schema do warehouse: %w", err)
		}
	}
	return nil
}
