package schedule

import "github.com/osse101/BetEngine_Go/internal/domain"

// TeamsPerSport is the fixed roster size of every sport
const TeamsPerSport = 6

// Rosters are the fixed team names per sport
var Rosters = map[domain.Sport][TeamsPerSport]string{
	domain.SportFootball:   {"Real Madrid", "Barcelona", "Liverpool", "Manchester City", "PSG", "Bayern"},
	domain.SportBasketball: {"Lakers", "Celtics", "Warriors", "Bulls", "Heat", "Nets"},
	domain.SportTennis:     {"Djokovic", "Alcaraz", "Sinner", "Medvedev", "Zverev", "Nadal"},
	domain.SportHockey:     {"Maple Leafs", "Canadiens", "Rangers", "Bruins", "Red Wings", "Blackhawks"},
	domain.SportBaseball:   {"Yankees", "Red Sox", "Dodgers", "Cubs", "Giants", "Mets"},
}
