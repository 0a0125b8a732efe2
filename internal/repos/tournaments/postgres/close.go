package tournaments

import (
	"database/sql"
	"fmt"

	"github.com/fastprodman/pointpool/internal/repos/tournaments"
)

func (r *tournamentsRepo) Close(tx *sql.Tx, tournamentID string) error {
	res, err := tx.Exec(`
		UPDATE tournaments
		SET open = FALSE
		WHERE tournament_id = $1
		  AND open
	`, tournamentID)
	if err != nil {
		return fmt.Errorf("close tournament: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if affected == 0 {
		return tournaments.ErrTournamentNotFound
	}

	return nil
}
