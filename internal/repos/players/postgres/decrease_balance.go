package players

import (
	"database/sql"
	"fmt"

	"github.com/fastprodman/pointpool/internal/repos/players"
)

func (r *playersRepo) DecreaseBalance(tx *sql.Tx, playerID string, points float64) error {
	res, err := tx.Exec(`
		UPDATE players
		SET balance = balance - $2
		WHERE player_id = $1
		  AND balance >= $2
	`, playerID, points)
	if err != nil {
		return fmt.Errorf("decrease balance: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if affected == 0 {
		return players.ErrInsufficientBalance
	}

	return nil
}
