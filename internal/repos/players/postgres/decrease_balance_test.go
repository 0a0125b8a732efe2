package players

import (
	"errors"
	"testing"

	"github.com/fastprodman/pointpool/internal/infra/pgtestutil"
	"github.com/fastprodman/pointpool/internal/repos/players"
)

func TestPlayers_DecreaseBalance_Table(t *testing.T) {
	t.Parallel()

	type tc struct {
		name        string
		seedBalance *float64
		points      float64
		wantErr     error
		wantBalance float64
	}

	bal := func(v float64) *float64 { return &v }

	tests := []tc{
		{
			name:        "sufficient_balance",
			seedBalance: bal(300),
			points:      100,
			wantErr:     nil,
			wantBalance: 200,
		},
		{
			name:        "exact_balance_to_zero",
			seedBalance: bal(250),
			points:      250,
			wantErr:     nil,
			wantBalance: 0,
		},
		{
			name:        "insufficient_balance_no_mutation",
			seedBalance: bal(99),
			points:      100,
			wantErr:     players.ErrInsufficientBalance,
			wantBalance: 99,
		},
		{
			name:        "missing_player",
			seedBalance: nil,
			points:      10,
			wantErr:     players.ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db, cleanup := pgtestutil.NewTestDB(t)
			defer cleanup()

			if tt.seedBalance != nil {
				_, err := db.Exec(`INSERT INTO players (player_id, balance) VALUES ($1, $2)`, "P1", *tt.seedBalance)
				if err != nil {
					t.Fatalf("seed player: %v", err)
				}
			}

			repo := New(db)

			tx, err := db.Begin()
			if err != nil {
				t.Fatalf("begin tx: %v", err)
			}
			defer func() { _ = tx.Rollback() }()

			err = repo.DecreaseBalance(tx, "P1", tt.points)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			err = tx.Commit()
			if err != nil {
				t.Fatalf("commit: %v", err)
			}

			var got float64
			err = db.QueryRow(`SELECT balance FROM players WHERE player_id = $1`, "P1").Scan(&got)
			if err != nil {
				t.Fatalf("read back: %v", err)
			}

			if got != tt.wantBalance {
				t.Fatalf("balance mismatch: want %v, got %v", tt.wantBalance, got)
			}
		})
	}
}
