package participations

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/pointpool/internal/repos/participations"
	"github.com/jackc/pgx/v5/pgconn"
)

func (r *participationsRepo) Create(tx *sql.Tx, tournamentID, playerID string) error {
	_, err := tx.Exec(`
		INSERT INTO participations (tournament_id, player_id)
		VALUES ($1, $2)
	`, tournamentID, playerID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return participations.ErrAlreadyJoined
			}
		}

		return fmt.Errorf("insert participation: %w", err)
	}

	return nil
}
