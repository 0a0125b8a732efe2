package pool

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fastprodman/pointpool/internal/infra/pgtestutil"
	"github.com/fastprodman/pointpool/internal/repos/tournaments"
)

func TestPool_Result_WinnerMismatch(t *testing.T) {
	t.Parallel()

	svc, _, cleanup := newTestService(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(t.Context(), 15*time.Second)
	defer cancel()

	for _, id := range []string{"P1", "P2"} {
		err := svc.Fund(ctx, id, 100)
		if err != nil {
			t.Fatalf("fund %s: %v", id, err)
		}
	}

	err := svc.Announce(ctx, "T1", 50)
	if err != nil {
		t.Fatalf("announce: %v", err)
	}

	err = svc.Join(ctx, "T1", "P1", nil)
	if err != nil {
		t.Fatalf("join: %v", err)
	}

	// P2 never joined.
	err = svc.Result(ctx, "T1", []Winner{{PlayerID: "P2", Prize: 100}})
	if !errors.Is(err, ErrWinnerMismatch) {
		t.Fatalf("unjoined winner: want ErrWinnerMismatch, got %v", err)
	}

	// Duplicate winner entries are rejected.
	err = svc.Result(ctx, "T1", []Winner{
		{PlayerID: "P1", Prize: 100},
		{PlayerID: "P1", Prize: 200},
	})
	if !errors.Is(err, ErrWinnerMismatch) {
		t.Fatalf("duplicate winner: want ErrWinnerMismatch, got %v", err)
	}

	// The failed settlements must not have closed or credited anything.
	if got := mustBalance(t, svc, "P1"); got != 50 {
		t.Fatalf("P1 after failed results: want 50, got %v", got)
	}

	err = svc.Result(ctx, "T1", []Winner{{PlayerID: "P1", Prize: 100}})
	if err != nil {
		t.Fatalf("settle after failed attempts: %v", err)
	}
}

func TestPool_Result_ForfeitureAndCascade(t *testing.T) {
	t.Parallel()

	svc, db, cleanup := newTestService(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(t.Context(), 15*time.Second)
	defer cancel()

	for id, points := range map[string]float64{"W": 100, "B": 100, "L": 100} {
		err := svc.Fund(ctx, id, points)
		if err != nil {
			t.Fatalf("fund %s: %v", id, err)
		}
	}

	err := svc.Announce(ctx, "T1", 100)
	if err != nil {
		t.Fatalf("announce: %v", err)
	}

	err = svc.Join(ctx, "T1", "W", []string{"B"})
	if err != nil {
		t.Fatalf("join W: %v", err)
	}

	err = svc.Join(ctx, "T1", "L", nil)
	if err != nil {
		t.Fatalf("join L: %v", err)
	}

	err = svc.Result(ctx, "T1", []Winner{{PlayerID: "W", Prize: 300}})
	if err != nil {
		t.Fatalf("result: %v", err)
	}

	// W and B each paid 50 and gained 150; L paid 100 and gets nothing back.
	if got := mustBalance(t, svc, "W"); got != 200 {
		t.Fatalf("W: want 200, got %v", got)
	}
	if got := mustBalance(t, svc, "B"); got != 200 {
		t.Fatalf("B: want 200, got %v", got)
	}
	if got := mustBalance(t, svc, "L"); got != 0 {
		t.Fatalf("L forfeits: want 0, got %v", got)
	}

	// Settlement removed the tournament and every participation, winners and
	// losers alike.
	for _, table := range []string{"tournaments", "participations", "participation_backers"} {
		var cnt int
		err = db.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&cnt)
		if err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if cnt != 0 {
			t.Fatalf("%s not empty after settlement: %d rows", table, cnt)
		}
	}
}

func TestPool_Result_ZeroPrize(t *testing.T) {
	t.Parallel()

	svc, _, cleanup := newTestService(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(t.Context(), 15*time.Second)
	defer cancel()

	err := svc.Fund(ctx, "P1", 100)
	if err != nil {
		t.Fatalf("fund: %v", err)
	}

	err = svc.Announce(ctx, "T1", 100)
	if err != nil {
		t.Fatalf("announce: %v", err)
	}

	err = svc.Join(ctx, "T1", "P1", nil)
	if err != nil {
		t.Fatalf("join: %v", err)
	}

	err = svc.Result(ctx, "T1", []Winner{{PlayerID: "P1", Prize: 0}})
	if err != nil {
		t.Fatalf("result: %v", err)
	}

	if got := mustBalance(t, svc, "P1"); got != 0 {
		t.Fatalf("zero prize credits nothing: want 0, got %v", got)
	}
}

func TestPool_Result_ClosedTournament(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	// A closed-but-present tournament is not reachable through the service
	// (settlement deletes in the same transaction), so seed one directly.
	_, err := db.Exec(`INSERT INTO tournaments (tournament_id, deposit, open) VALUES ('T1', 100, FALSE)`)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	svc := New(db)

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Second)
	defer cancel()

	err = svc.Result(ctx, "T1", nil)
	if !errors.Is(err, tournaments.ErrTournamentClosed) {
		t.Fatalf("want ErrTournamentClosed, got %v", err)
	}
}
