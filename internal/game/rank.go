// internal/game/rank.go
//
// Progress ladder from score to rank name, as a share of the maximum score.

package game

// rank is one rung of the progress ladder; pct is the share of the maximum
// score needed to reach it.
type rank struct {
	name string
	pct  int
}

var ranks = []rank{
	{"Beginner", 0},
	{"Good Start", 2},
	{"Moving Up", 5},
	{"Good", 8},
	{"Solid", 15},
	{"Nice", 25},
	{"Great", 40},
	{"Amazing", 50},
	{"Genius", 70},
	{"Queen Bee", 100},
}

// RankFor returns the highest rank whose threshold score reaches.
// A puzzle with no answers always ranks Beginner.
func RankFor(score, maxScore int) string {
	if maxScore <= 0 {
		return ranks[0].name
	}
	name := ranks[0].name
	for _, r := range ranks {
		if score*100 >= r.pct*maxScore {
			name = r.name
		}
	}
	return name
}
