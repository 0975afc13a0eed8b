package repository

import (
	"context"
	"database/sql"

	"github.com/vfg2006/searchad-collector/infrastructure/database/postgres"
)

const (
	// Linhas por transação: chunks grandes demais seguram locks por tempo
	// demais em runs com muitas contas.
	maxRowsPerChunk = 5000

	// Tuplas por INSERT: mantém o número de parâmetros bem abaixo do limite
	// de 65535 do protocolo do Postgres.
	maxRowsPerBatch = 500
)

// upsertChunked fatia um conjunto de linhas em chunks transacionais de até
// maxRowsPerChunk, e cada chunk em INSERTs de até maxRowsPerBatch tuplas.
// batchFn recebe o intervalo [start, end) e o executor da transação corrente.
func upsertChunked(ctx context.Context, conn postgres.Conn, total int, batchFn func(q postgres.Queryer, start, end int) error) error {
	if total == 0 {
		return nil
	}

	for chunkStart := 0; chunkStart < total; chunkStart += maxRowsPerChunk {
		chunkEnd := chunkStart + maxRowsPerChunk
		if chunkEnd > total {
			chunkEnd = total
		}

		err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			for batchStart := chunkStart; batchStart < chunkEnd; batchStart += maxRowsPerBatch {
				batchEnd := batchStart + maxRowsPerBatch
				if batchEnd > chunkEnd {
					batchEnd = chunkEnd
				}
				if err := batchFn(tx, batchStart, batchEnd); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}
