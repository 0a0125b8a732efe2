package players

import (
	"context"
	"database/sql"
	"errors"
)

var ErrInsufficientBalance = errors.New("insufficient balance")
var ErrPlayerNotFound = errors.New("player not found")

// Balance is an account row snapshot taken under lock.
type Balance struct {
	PlayerID string
	Balance  float64
}

type Players interface {
	GetBalance(ctx context.Context, playerID string) (float64, error)
	LockAndGetBalance(tx *sql.Tx, playerID string) (float64, error)
	LockAndGetBalances(tx *sql.Tx, playerIDs []string) ([]Balance, error)
	UpsertBalance(tx *sql.Tx, playerID string, points float64) error
	ApplyDelta(tx *sql.Tx, playerID string, delta float64) error
	DecreaseBalance(tx *sql.Tx, playerID string, points float64) error
}
