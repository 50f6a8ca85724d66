package models

// LeaderboardEntry is one row of the demo standings.
type LeaderboardEntry struct {
	Rank   int
	Name   string
	XP     int
	Level  int
	Streak int
	You    bool
}

// DemoLeaderboard returns the fixed demo standings with the active profile
// substituted into its reserved row. There is no backend; the surrounding
// rows are static fixtures.
func DemoLeaderboard(p Profile) []LeaderboardEntry {
	return []LeaderboardEntry{
		{Rank: 1, Name: "Ahmed K.", XP: 2500, Level: 8, Streak: 12},
		{Rank: 2, Name: "Sara M.", XP: 2100, Level: 7, Streak: 8},
		{Rank: 3, Name: "Omar H.", XP: 1850, Level: 6, Streak: 15},
		{Rank: 4, Name: p.Name, XP: p.XP, Level: p.Level, Streak: p.Streak, You: true},
		{Rank: 5, Name: "Lina R.", XP: 320, Level: 2, Streak: 2},
	}
}
