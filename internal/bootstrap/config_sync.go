package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/BetEngine_Go/internal/domain"
	"github.com/osse101/BetEngine_Go/internal/utils"
)

// tournamentConfig is one entry of the tournament lineup file
type tournamentConfig struct {
	ID              string `json:"id" validate:"required"`
	Title           string `json:"title" validate:"required"`
	EntryCost       int    `json:"entry_cost" validate:"min=0"`
	Reward          int    `json:"reward" validate:"min=0"`
	DurationSeconds int    `json:"duration_seconds" validate:"min=1"`
}

type tournamentLineup struct {
	Tournaments []tournamentConfig `json:"tournaments" validate:"required,min=1,unique=ID,dive"`
}

// LoadTournamentLineup reads the tournament definitions at path.
// A missing file returns nil so the tournament service falls back to its default lineup.
func LoadTournamentLineup(path string) ([]domain.Tournament, error) {
	if path == "" {
		return nil, nil
	}

	var lineup tournamentLineup
	if err := utils.LoadJSON(path, &lineup); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Info(LogMsgTournamentsDefault, "path", path)
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadLineup, err)
	}

	if err := validator.New().Struct(lineup); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidLineup, err)
	}

	definitions := make([]domain.Tournament, 0, len(lineup.Tournaments))
	for _, t := range lineup.Tournaments {
		definitions = append(definitions, domain.Tournament{
			ID:        t.ID,
			Title:     t.Title,
			EntryCost: t.EntryCost,
			Reward:    t.Reward,
			Duration:  time.Duration(t.DurationSeconds) * time.Second,
		})
	}

	slog.Info(LogMsgTournamentsLoaded, "path", path, "count", len(definitions))
	return definitions, nil
}
