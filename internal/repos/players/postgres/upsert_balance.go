package players

import (
	"database/sql"
	"fmt"
)

// UpsertBalance creates the player with the given balance, or adds the points
// to an existing player's balance. The conflict arm takes the row lock, so
// concurrent funds against the same player serialize.
func (r *playersRepo) UpsertBalance(tx *sql.Tx, playerID string, points float64) error {
	_, err := tx.Exec(`
		INSERT INTO players (player_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (player_id)
		DO UPDATE SET balance = players.balance + EXCLUDED.balance
	`, playerID, points)
	if err != nil {
		return fmt.Errorf("upsert balance: %w", err)
	}

	return nil
}
