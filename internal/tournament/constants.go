package tournament

import (
	"time"

	"github.com/osse101/BetEngine_Go/internal/domain"
)

// DefaultPool is the static tournament lineup reinstated at every reset
var DefaultPool = []domain.Tournament{
	{ID: "t1", Title: "Daily Sprint", EntryCost: 20, Reward: 60, Duration: 180 * time.Second},
	{ID: "t2", Title: "Weekly Marathon", EntryCost: 50, Reward: 200, Duration: 300 * time.Second},
	{ID: "t3", Title: "High Roller", EntryCost: 100, Reward: 500, Duration: 420 * time.Second},
}

// Log messages
const (
	LogMsgTournamentJoined   = "Tournament joined"
	LogMsgJoinInsufficient   = "Tournament join rejected, insufficient points"
	LogMsgTournamentSettled  = "Tournament participation settled"
	LogMsgPoolReset          = "Tournament pool reset"
	LogMsgRewardCreditFailed = "Failed to credit tournament reward"
)

// Error contexts
const (
	ErrContextJoin = "failed to join tournament"
)
