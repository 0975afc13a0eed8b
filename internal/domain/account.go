package domain

import "time"

// Account representa uma conta de anunciante do roster (dim_account).
// O roster é mantido por um processo externo; o coletor apenas lê.
type Account struct {
	CustomerID  int64
	AccountName string
	Manager     string
}

type CollectStatus string

const (
	CollectStatusSuccess CollectStatus = "success"
	CollectStatusSkipped CollectStatus = "skipped"
	CollectStatusFailed  CollectStatus = "failed"
)

// AccountResult resume o desfecho da coleta de uma conta dentro de um run.
// Nenhuma conta individual pode abortar o lote: falhas são capturadas aqui.
type AccountResult struct {
	CustomerID  int64
	AccountName string
	Status      CollectStatus
	Reason      string
	Campaigns   int
	Keywords    int
	Ads         int
	FactRows    int
	Duration    time.Duration
}

func SuccessResult(acc *Account) AccountResult {
	return AccountResult{
		CustomerID:  acc.CustomerID,
		AccountName: acc.AccountName,
		Status:      CollectStatusSuccess,
	}
}

func SkippedResult(acc *Account, reason string) AccountResult {
	return AccountResult{
		CustomerID:  acc.CustomerID,
		AccountName: acc.AccountName,
		Status:      CollectStatusSkipped,
		Reason:      reason,
	}
}

func FailedResult(acc *Account, reason string) AccountResult {
	return AccountResult{
		CustomerID:  acc.CustomerID,
		AccountName: acc.AccountName,
		Status:      CollectStatusFailed,
		Reason:      reason,
	}
}

// Summary agrega os resultados de um run por status.
type Summary struct {
	Success int
	Skipped int
	Failed  int
}

func Summarize(results []AccountResult) Summary {
	var s Summary
	for _, r := range results {
		switch r.Status {
		case CollectStatusSuccess:
			s.Success++
		case CollectStatusSkipped:
			s.Skipped++
		case CollectStatusFailed:
			s.Failed++
		}
	}
	return s
}
