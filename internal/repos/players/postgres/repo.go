package players

import (
	"database/sql"

	"github.com/fastprodman/pointpool/internal/repos/players"
)

var _ players.Players = (*playersRepo)(nil)

type playersRepo struct{ db *sql.DB }

func New(db *sql.DB) *playersRepo {
	return &playersRepo{db: db}
}
