package pool

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/pointpool/internal/infra/pgutils"
	"github.com/fastprodman/pointpool/internal/repos/players"
)

// Fund credits points to the player, creating the account with that balance
// if it does not exist yet. Never fails for a valid amount.
func (s *Service) Fund(ctx context.Context, playerID string, points float64) error {
	err := pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		err := s.players.UpsertBalance(tx, playerID, points)
		if err != nil {
			return fmt.Errorf("upsert balance: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("fund: %w", err)
	}

	return nil
}

// Take debits points from the player. The balance is read under a row lock,
// checked and decremented in one transaction, so two concurrent takes against
// the same player serialize and can never overdraw together.
func (s *Service) Take(ctx context.Context, playerID string, points float64) error {
	err := pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		balance, err := s.players.LockAndGetBalance(tx, playerID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return players.ErrPlayerNotFound
			}

			return fmt.Errorf("lock and get balance: %w", err)
		}

		// pre-check against locked balance
		if balance < points {
			return fmt.Errorf("pre-check decrease: %w", players.ErrInsufficientBalance)
		}

		err = s.players.DecreaseBalance(tx, playerID, points)
		if err != nil {
			return fmt.Errorf("decrease balance: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("take: %w", err)
	}

	return nil
}

// Balance returns the player's balance (no locks; suitable for the GET endpoint).
func (s *Service) Balance(ctx context.Context, playerID string) (*BalanceInfo, error) {
	balance, err := s.players.GetBalance(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}

	return &BalanceInfo{PlayerID: playerID, Balance: balance}, nil
}
