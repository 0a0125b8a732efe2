package pool

import (
	"context"
	"fmt"
)

// Reset wipes all ledger, tournament and participation state. Exposed for the
// dev/test reset endpoint only.
func (s *Service) Reset(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		TRUNCATE players, tournaments, participations, participation_backers
	`)
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	return nil
}
