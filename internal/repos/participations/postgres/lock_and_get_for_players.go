package participations

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/fastprodman/pointpool/internal/repos/participations"
)

// LockAndGetForPlayers returns the tournament's participations for the given
// players, each with its backer set, locking the participation rows. Players
// who never joined are simply absent from the result.
func (r *participationsRepo) LockAndGetForPlayers(tx *sql.Tx, tournamentID string, playerIDs []string) ([]participations.Participation, error) {
	if len(playerIDs) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(playerIDs))
	args := make([]any, 0, len(playerIDs)+1)
	args = append(args, tournamentID)
	for i, id := range playerIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+2)
		args = append(args, id)
	}
	inList := strings.Join(placeholders, ", ")

	rows, err := tx.Query(fmt.Sprintf(`
		SELECT player_id
		FROM participations
		WHERE tournament_id = $1
		  AND player_id IN (%s)
		ORDER BY player_id
		FOR UPDATE
	`, inList), args...)
	if err != nil {
		return nil, fmt.Errorf("lock/get participations: %w", err)
	}
	defer rows.Close()

	byPlayer := make(map[string]*participations.Participation)
	var result []participations.Participation
	for rows.Next() {
		var playerID string

		err = rows.Scan(&playerID)
		if err != nil {
			return nil, fmt.Errorf("scan participation: %w", err)
		}

		result = append(result, participations.Participation{
			TournamentID: tournamentID,
			PlayerID:     playerID,
		})
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate participations: %w", err)
	}

	for i := range result {
		byPlayer[result[i].PlayerID] = &result[i]
	}

	backerRows, err := tx.Query(fmt.Sprintf(`
		SELECT player_id, backer_id
		FROM participation_backers
		WHERE tournament_id = $1
		  AND player_id IN (%s)
		ORDER BY player_id, backer_id
	`, inList), args...)
	if err != nil {
		return nil, fmt.Errorf("get backers: %w", err)
	}
	defer backerRows.Close()

	for backerRows.Next() {
		var playerID, backerID string

		err = backerRows.Scan(&playerID, &backerID)
		if err != nil {
			return nil, fmt.Errorf("scan backer: %w", err)
		}

		p := byPlayer[playerID]
		if p != nil {
			p.Backers = append(p.Backers, backerID)
		}
	}

	err = backerRows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate backers: %w", err)
	}

	return result, nil
}
