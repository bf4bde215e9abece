package tx

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// TxRepository hands out transactions so application code can group
// repository writes without touching the connection directly.
type TxRepository interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	CommitTx(tx *sqlx.Tx) error
	RollbackTx(tx *sqlx.Tx) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewTxRepository(conn *sqlx.DB) TxRepository {
	return &SQL{conn: conn}
}

func (r *SQL) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return r.conn.BeginTxx(ctx, nil)
}

func (r *SQL) CommitTx(tx *sqlx.Tx) error {
	return tx.Commit()
}

func (r *SQL) RollbackTx(tx *sqlx.Tx) error {
	return tx.Rollback()
}
