package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/searchad-collector/infrastructure/database/postgres"
	"github.com/vfg2006/searchad-collector/internal/domain"
)

// BalanceRepository grava o snapshot diário de bizmoney por conta. Upsert em
// (dt, customer_id): coletas repetidas no mesmo dia sobrescrevem o saldo.
type BalanceRepository interface {
	SaveOrUpdate(fact *domain.BalanceFact) error
}

type balanceRepository struct {
	conn *postgres.Connection
}

func NewBalanceRepository(conn *postgres.Connection) BalanceRepository {
	return &balanceRepository{
		conn: conn,
	}
}

func (r *balanceRepository) SaveOrUpdate(fact *domain.BalanceFact) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("fact_bizmoney_daily").
		Columns("dt", "customer_id", "bizmoney_balance").
		Values(fact.Dt.Format("2006-01-02"), fact.CustomerID, fact.Balance).
		Suffix(`
			ON CONFLICT (dt, customer_id) DO UPDATE SET
				bizmoney_balance = EXCLUDED.bizmoney_balance,
				collected_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
