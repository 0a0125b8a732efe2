package tournaments

import (
	"database/sql"
	"fmt"
)

// Delete removes the tournament row. Participations and their backer rows go
// with it through ON DELETE CASCADE.
func (r *tournamentsRepo) Delete(tx *sql.Tx, tournamentID string) error {
	_, err := tx.Exec(`
		DELETE FROM tournaments
		WHERE tournament_id = $1
	`, tournamentID)
	if err != nil {
		return fmt.Errorf("delete tournament: %w", err)
	}

	return nil
}
