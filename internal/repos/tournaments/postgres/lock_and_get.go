package tournaments

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/pointpool/internal/repos/tournaments"
)

// LockAndGet takes the tournament row lock for the transaction's duration.
// Every join and every settlement goes through this lock, so the two can
// never interleave on the same tournament.
func (r *tournamentsRepo) LockAndGet(tx *sql.Tx, tournamentID string) (*tournaments.Tournament, error) {
	t := tournaments.Tournament{TournamentID: tournamentID}

	err := tx.QueryRow(`
		SELECT deposit, open
		FROM tournaments
		WHERE tournament_id = $1
		FOR UPDATE
	`, tournamentID).Scan(&t.Deposit, &t.Open)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tournaments.ErrTournamentNotFound
		}

		return nil, fmt.Errorf("lock/get tournament: %w", err)
	}

	return &t, nil
}
