package pool

import (
	"database/sql"
	"errors"
	"sort"

	"github.com/fastprodman/pointpool/internal/repos/participations"
	pgparticipations "github.com/fastprodman/pointpool/internal/repos/participations/postgres"
	"github.com/fastprodman/pointpool/internal/repos/players"
	pgplayers "github.com/fastprodman/pointpool/internal/repos/players/postgres"
	"github.com/fastprodman/pointpool/internal/repos/tournaments"
	pgtournaments "github.com/fastprodman/pointpool/internal/repos/tournaments/postgres"
)

var (
	ErrBackerNotFound = errors.New("backer not found")
	ErrWinnerMismatch = errors.New("one or more winners have not joined tournament")
)

// Winner names a participant and the prize awarded to its participation.
// The prize is split equally between the player and its backers.
type Winner struct {
	PlayerID string
	Prize    float64
}

// BalanceInfo is the read-model returned by Balance.
type BalanceInfo struct {
	PlayerID string  `json:"playerId"`
	Balance  float64 `json:"balance"`
}

// Service is the tournament pool engine. Every mutating operation runs as a
// single committed-or-rolled-back transaction, taking FOR UPDATE locks on all
// rows its decisions depend on.
type Service struct {
	db             *sql.DB
	players        players.Players
	tournaments    tournaments.Tournaments
	participations participations.Participations
}

// New wires the service to the postgres repositories.
func New(db *sql.DB) *Service {
	return NewWithRepos(db, pgplayers.New(db), pgtournaments.New(db), pgparticipations.New(db))
}

// NewWithRepos injects repository implementations explicitly.
func NewWithRepos(
	db *sql.DB,
	p players.Players,
	t tournaments.Tournaments,
	pa participations.Participations,
) *Service {
	return &Service{
		db:             db,
		players:        p,
		tournaments:    t,
		participations: pa,
	}
}

// participantSet builds the sorted union of the player and its backers.
// A player listed among its own backers collapses into a single entry.
func participantSet(playerID string, backerIDs []string) []string {
	seen := map[string]struct{}{playerID: {}}
	ids := []string{playerID}

	for _, id := range backerIDs {
		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}
