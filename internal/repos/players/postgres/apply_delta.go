package players

import (
	"database/sql"
	"fmt"
)

// ApplyDelta adds delta (positive or negative) to the player's balance with no
// business-rule check. Callers must have proven their preconditions against
// locked rows first; the balance CHECK constraint still rejects a negative
// result at the storage level.
func (r *playersRepo) ApplyDelta(tx *sql.Tx, playerID string, delta float64) error {
	_, err := tx.Exec(`
		UPDATE players
		SET balance = balance + $2
		WHERE player_id = $1
	`, playerID, delta)
	if err != nil {
		return fmt.Errorf("apply delta: %w", err)
	}

	return nil
}
