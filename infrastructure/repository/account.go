package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/searchad-collector/infrastructure/database/postgres"
	"github.com/vfg2006/searchad-collector/internal/domain"
)

const (
	accountsTable = "dim_account a"
)

// AccountRepository lê o roster de contas (dim_account). O roster é mantido
// por um processo externo; o coletor nunca escreve nele.
type AccountRepository interface {
	ListAccounts() ([]*domain.Account, error)
	GetByCustomerID(customerID int64) (*domain.Account, error)
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (r *accountRepository) ListAccounts() ([]*domain.Account, error) {
	query, args, err := squirrel.
		Select("a.customer_id, a.account_name, a.manager").
		From(accountsTable).
		OrderBy("a.customer_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		account := &domain.Account{}
		if err := rows.Scan(&account.CustomerID, &account.AccountName, &account.Manager); err != nil {
			return nil, fmt.Errorf("erro ao escanear conta: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

func (r *accountRepository) GetByCustomerID(customerID int64) (*domain.Account, error) {
	query, args, err := squirrel.
		Select("a.customer_id, a.account_name, a.manager").
		From(accountsTable).
		Where(squirrel.Eq{"a.customer_id": customerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	account := &domain.Account{}
	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&account.CustomerID, &account.AccountName, &account.Manager); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conta: %w", err)
	}

	return account, nil
}

