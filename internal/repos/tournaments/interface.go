package tournaments

import (
	"database/sql"
	"errors"
)

var ErrTournamentExists = errors.New("tournament already exists")
var ErrTournamentNotFound = errors.New("tournament not found")
var ErrTournamentClosed = errors.New("tournament already closed")

// Tournament is the registry row. Open is true from announce until result
// closes it; a closed tournament is deleted in the same transaction, so a
// persisted closed row is never observable outside settlement.
type Tournament struct {
	TournamentID string
	Deposit      float64
	Open         bool
}

type Tournaments interface {
	Create(tx *sql.Tx, tournamentID string, deposit float64) error
	LockAndGet(tx *sql.Tx, tournamentID string) (*Tournament, error)
	Close(tx *sql.Tx, tournamentID string) error
	Delete(tx *sql.Tx, tournamentID string) error
}
