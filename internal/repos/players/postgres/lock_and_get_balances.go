package players

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/fastprodman/pointpool/internal/repos/players"
)

// LockAndGetBalances locks the rows of all given players in one statement and
// returns the balances found. Rows are locked in sorted id order so that
// concurrent transactions touching overlapping player sets cannot deadlock.
// Missing players are simply absent from the result; the caller decides
// whether that is an error.
func (r *playersRepo) LockAndGetBalances(tx *sql.Tx, playerIDs []string) ([]players.Balance, error) {
	if len(playerIDs) == 0 {
		return nil, nil
	}

	sorted := make([]string, len(playerIDs))
	copy(sorted, playerIDs)
	sort.Strings(sorted)

	placeholders := make([]string, len(sorted))
	args := make([]any, len(sorted))
	for i, id := range sorted {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	rows, err := tx.Query(fmt.Sprintf(`
		SELECT player_id, balance
		FROM players
		WHERE player_id IN (%s)
		ORDER BY player_id
		FOR UPDATE
	`, strings.Join(placeholders, ", ")), args...)
	if err != nil {
		return nil, fmt.Errorf("lock/get balances: %w", err)
	}
	defer rows.Close()

	var balances []players.Balance
	for rows.Next() {
		var b players.Balance

		err = rows.Scan(&b.PlayerID, &b.Balance)
		if err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}

		balances = append(balances, b)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate balances: %w", err)
	}

	return balances, nil
}
