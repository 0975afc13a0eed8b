package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/searchad-collector/infrastructure/database/postgres"
	"github.com/vfg2006/searchad-collector/internal/domain"
)

// FactRepository grava os fatos diários por substituição de faixa: apaga o
// escopo (customer_id, dt) e insere as linhas novas na mesma transação, para
// que re-execuções do mesmo dia nunca deixem linhas órfãs nem dupliquem.
type FactRepository interface {
	ReplaceCampaignDaily(ctx context.Context, customerID int64, dt time.Time, rows []domain.FactRow) error
	ReplaceKeywordDaily(ctx context.Context, customerID int64, dt time.Time, rows []domain.FactRow) error
	ReplaceAdDaily(ctx context.Context, customerID int64, dt time.Time, rows []domain.FactRow) error
}

type factRepository struct {
	conn *postgres.Connection
}

func NewFactRepository(conn *postgres.Connection) FactRepository {
	return &factRepository{
		conn: conn,
	}
}

func (r *factRepository) ReplaceCampaignDaily(ctx context.Context, customerID int64, dt time.Time, rows []domain.FactRow) error {
	return r.replaceDaily(ctx, "fact_campaign_daily", "campaign_id", customerID, dt, rows)
}

func (r *factRepository) ReplaceKeywordDaily(ctx context.Context, customerID int64, dt time.Time, rows []domain.FactRow) error {
	return r.replaceDaily(ctx, "fact_keyword_daily", "keyword_id", customerID, dt, rows)
}

func (r *factRepository) ReplaceAdDaily(ctx context.Context, customerID int64, dt time.Time, rows []domain.FactRow) error {
	return r.replaceDaily(ctx, "fact_ad_daily", "ad_id", customerID, dt, rows)
}

func (r *factRepository) replaceDaily(ctx context.Context, table, idColumn string, customerID int64, dt time.Time, rows []domain.FactRow) error {
	dtValue := dt.Format("2006-01-02")

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteQuery, deleteArgs, err := replaceRangeDelete(table, customerID, dtValue)
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.Exec(deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao apagar a faixa (%s, customer %d, %s): %w", table, customerID, dtValue, err)
		}

		for start := 0; start < len(rows); start += maxRowsPerBatch {
			end := start + maxRowsPerBatch
			if end > len(rows) {
				end = len(rows)
			}

			insertQuery, insertArgs, err := factInsert(table, idColumn, customerID, dtValue, rows[start:end])
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.Exec(insertQuery, insertArgs...); err != nil {
				return fmt.Errorf("erro ao inserir fatos em %s: %w", table, err)
			}
		}

		return nil
	})
}

func replaceRangeDelete(table string, customerID int64, dtValue string) (string, []interface{}, error) {
	return squirrel.
		Delete(table).
		Where(squirrel.Eq{"customer_id": customerID, "dt": dtValue}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func factInsert(table, idColumn string, customerID int64, dtValue string, rows []domain.FactRow) (string, []interface{}, error) {
	builder := squirrel.StatementBuilder.
		Insert(table).
		Columns("dt", "customer_id", idColumn, "imp", "clk", "cost", "conv", "sales", "roas")

	for _, row := range rows {
		builder = builder.Values(
			dtValue, customerID, row.EntityID,
			row.Imp, row.Clk, row.Cost, row.Conv, row.Sales, row.Roas,
		)
	}

	return builder.
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
