package participations

import (
	"testing"

	"github.com/fastprodman/pointpool/internal/infra/pgtestutil"
)

func TestParticipations_LockAndGetForPlayers(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	seed := []string{
		`INSERT INTO players (player_id, balance) VALUES ('P1', 0), ('P2', 0), ('P3', 0), ('P4', 0)`,
		`INSERT INTO tournaments (tournament_id, deposit, open) VALUES ('T1', 100, TRUE), ('T2', 100, TRUE)`,
		`INSERT INTO participations (tournament_id, player_id) VALUES ('T1', 'P1'), ('T1', 'P2'), ('T2', 'P3')`,
		`INSERT INTO participation_backers (tournament_id, player_id, backer_id) VALUES ('T1', 'P1', 'P3'), ('T1', 'P1', 'P4')`,
	}
	for _, stmt := range seed {
		_, err := db.Exec(stmt)
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	repo := New(db)

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	// P3 joined a different tournament, P4 never joined: both absent.
	got, err := repo.LockAndGetForPlayers(tx, "T1", []string{"P1", "P2", "P3", "P4"})
	if err != nil {
		t.Fatalf("lock/get: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("want 2 participations, got %d: %v", len(got), got)
	}

	byPlayer := map[string][]string{}
	for _, p := range got {
		if p.TournamentID != "T1" {
			t.Fatalf("unexpected tournament id: %+v", p)
		}
		byPlayer[p.PlayerID] = p.Backers
	}

	backers, ok := byPlayer["P1"]
	if !ok {
		t.Fatal("P1 participation missing")
	}
	if len(backers) != 2 || backers[0] != "P3" || backers[1] != "P4" {
		t.Fatalf("P1 backers mismatch: %v", backers)
	}

	if len(byPlayer["P2"]) != 0 {
		t.Fatalf("P2 should have no backers, got %v", byPlayer["P2"])
	}
}

func TestParticipations_LockAndGetForPlayers_Empty(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	repo := New(db)

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	got, err := repo.LockAndGetForPlayers(tx, "T1", nil)
	if err != nil {
		t.Fatalf("lock/get: %v", err)
	}
	if got != nil {
		t.Fatalf("want nil for empty input, got %v", got)
	}
}
