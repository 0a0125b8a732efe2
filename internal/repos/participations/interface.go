package participations

import (
	"database/sql"
	"errors"
)

var ErrAlreadyJoined = errors.New("player already joined tournament")

// Participation is a player's entry in a tournament together with the ids of
// the accounts backing it.
type Participation struct {
	TournamentID string
	PlayerID     string
	Backers      []string
}

type Participations interface {
	Create(tx *sql.Tx, tournamentID, playerID string) error
	AddBackers(tx *sql.Tx, tournamentID, playerID string, backerIDs []string) error
	LockAndGetForPlayers(tx *sql.Tx, tournamentID string, playerIDs []string) ([]Participation, error)
}
