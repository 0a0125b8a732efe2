package pool

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fastprodman/pointpool/internal/infra/pgutils"
	"github.com/fastprodman/pointpool/internal/repos/players"
	"github.com/fastprodman/pointpool/internal/repos/tournaments"
)

// Announce creates an open tournament with the given entry deposit.
func (s *Service) Announce(ctx context.Context, tournamentID string, deposit float64) error {
	err := pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		err := s.tournaments.Create(tx, tournamentID, deposit)
		if err != nil {
			return fmt.Errorf("create tournament: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("announce: %w", err)
	}

	return nil
}

// Join enters the player into the tournament, the deposit split equally
// between the player and its backers. All checks and debits run in one DB
// transaction:
//
// 1) Lock tournament row; must exist and be open.
// 2) Lock all participant rows (sorted order); player and backers must exist.
// 3) Insert participation (unique-violation -> ErrAlreadyJoined) and backers.
// 4) Every participant's locked balance must cover its share.
// 5) Debit each participant.
func (s *Service) Join(ctx context.Context, tournamentID, playerID string, backerIDs []string) error {
	err := pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		tournament, err := s.tournaments.LockAndGet(tx, tournamentID)
		if err != nil {
			return fmt.Errorf("lock tournament: %w", err)
		}

		if !tournament.Open {
			return tournaments.ErrTournamentClosed
		}

		ids := participantSet(playerID, backerIDs)

		balances, err := s.players.LockAndGetBalances(tx, ids)
		if err != nil {
			return fmt.Errorf("lock participants: %w", err)
		}

		found := make(map[string]float64, len(balances))
		for _, b := range balances {
			found[b.PlayerID] = b.Balance
		}

		if _, ok := found[playerID]; !ok {
			return players.ErrPlayerNotFound
		}

		if len(found) != len(ids) {
			return ErrBackerNotFound
		}

		err = s.participations.Create(tx, tournamentID, playerID)
		if err != nil {
			return fmt.Errorf("create participation: %w", err)
		}

		share := tournament.Deposit / float64(len(ids))
		for _, id := range ids {
			if found[id] < share {
				return fmt.Errorf("participant %s: %w", id, players.ErrInsufficientBalance)
			}
		}

		backers := make([]string, 0, len(ids)-1)
		for _, id := range ids {
			if id != playerID {
				backers = append(backers, id)
			}
		}

		err = s.participations.AddBackers(tx, tournamentID, playerID, backers)
		if err != nil {
			return fmt.Errorf("add backers: %w", err)
		}

		for _, id := range ids {
			err = s.players.ApplyDelta(tx, id, -share)
			if err != nil {
				return fmt.Errorf("debit participant %s: %w", id, err)
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("join: %w", err)
	}

	return nil
}

// Result settles the tournament: each winner's prize is split equally between
// the winning player and its backers, the tournament is closed and deleted,
// and with it every participation. Participants not listed among the winners
// forfeit their deposit; nothing is refunded.
func (s *Service) Result(ctx context.Context, tournamentID string, winners []Winner) error {
	err := pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		tournament, err := s.tournaments.LockAndGet(tx, tournamentID)
		if err != nil {
			return fmt.Errorf("lock tournament: %w", err)
		}

		if !tournament.Open {
			return tournaments.ErrTournamentClosed
		}

		prizes := make(map[string]float64, len(winners))
		ids := make([]string, 0, len(winners))
		for _, w := range winners {
			if _, ok := prizes[w.PlayerID]; ok {
				return fmt.Errorf("duplicate winner %s: %w", w.PlayerID, ErrWinnerMismatch)
			}

			prizes[w.PlayerID] = w.Prize
			ids = append(ids, w.PlayerID)
		}

		parts, err := s.participations.LockAndGetForPlayers(tx, tournamentID, ids)
		if err != nil {
			return fmt.Errorf("lock participations: %w", err)
		}

		if len(parts) != len(winners) {
			return ErrWinnerMismatch
		}

		err = s.tournaments.Close(tx, tournamentID)
		if err != nil {
			return fmt.Errorf("close tournament: %w", err)
		}

		for _, part := range parts {
			recipients := participantSet(part.PlayerID, part.Backers)
			share := prizes[part.PlayerID] / float64(len(recipients))

			for _, id := range recipients {
				err = s.players.ApplyDelta(tx, id, share)
				if err != nil {
					return fmt.Errorf("credit recipient %s: %w", id, err)
				}
			}
		}

		err = s.tournaments.Delete(tx, tournamentID)
		if err != nil {
			return fmt.Errorf("delete tournament: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("result: %w", err)
	}

	return nil
}
