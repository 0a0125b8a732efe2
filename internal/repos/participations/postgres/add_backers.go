package participations

import (
	"database/sql"
	"fmt"
	"strings"
)

func (r *participationsRepo) AddBackers(tx *sql.Tx, tournamentID, playerID string, backerIDs []string) error {
	if len(backerIDs) == 0 {
		return nil
	}

	values := make([]string, len(backerIDs))
	args := make([]any, 0, len(backerIDs)+2)
	args = append(args, tournamentID, playerID)
	for i, id := range backerIDs {
		values[i] = fmt.Sprintf("($1, $2, $%d)", i+3)
		args = append(args, id)
	}

	_, err := tx.Exec(fmt.Sprintf(`
		INSERT INTO participation_backers (tournament_id, player_id, backer_id)
		VALUES %s
	`, strings.Join(values, ", ")), args...)
	if err != nil {
		return fmt.Errorf("insert backers: %w", err)
	}

	return nil
}
