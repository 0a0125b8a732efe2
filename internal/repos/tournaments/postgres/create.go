package tournaments

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/pointpool/internal/repos/tournaments"
	"github.com/jackc/pgx/v5/pgconn"
)

func (r *tournamentsRepo) Create(tx *sql.Tx, tournamentID string, deposit float64) error {
	_, err := tx.Exec(`
		INSERT INTO tournaments (tournament_id, deposit)
		VALUES ($1, $2)
	`, tournamentID, deposit)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return tournaments.ErrTournamentExists
			}
		}

		return fmt.Errorf("insert tournament: %w", err)
	}

	return nil
}
