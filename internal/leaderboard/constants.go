package leaderboard

// Random walk parameters
const (
	MinInitialPoints = 500
	MaxInitialPoints = 2000
	NudgesPerTick    = 3
	MinNudge         = -10
	MaxNudge         = 25
)

// Names seeds the board
var Names = []string{
	"Alex Johnson", "Maria Garcia", "Liam Smith", "Emma Brown", "Noah Davis",
	"Olivia Wilson", "Ava Taylor", "Ethan Martinez", "Sophia Anderson", "Mason Thomas",
	"Isabella Moore", "Logan Jackson", "Mia Martin", "Lucas Lee", "Amelia Perez",
	"James Thompson", "Harper White", "Benjamin Harris", "Evelyn Clark", "Elijah Lewis",
	"Charlotte Walker", "William Hall", "Abigail Allen", "Henry Young", "Emily King",
	"Jackson Wright", "Aiden Scott", "Scarlett Green", "Daniel Adams", "Grace Baker",
}

const LogMsgLeaderboardUpdated = "Leaderboard updated"
