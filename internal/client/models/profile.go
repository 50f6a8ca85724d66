// Package models defines the tutoring client's domain types: profiles,
// sessions, question records, and the static leaderboard fixture.
package models

import "time"

// Tier is the subscription level controlling the daily question quota.
type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

// Language selects one of the two supported UI locales.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

// IsValid reports whether l is one of the supported locales.
func (l Language) IsValid() bool {
	return l == LanguageEnglish || l == LanguageArabic
}

// FreeDailyLimit is the number of questions a free-tier profile may submit
// per day.
const FreeDailyLimit = 5

// XPPerQuestion is awarded for every completed question.
const XPPerQuestion = 10

// XPPerLevel is the amount of XP spanning one level.
const XPPerLevel = 100

// LevelForXP derives the level from experience points. Level is never stored
// independently of xp; callers recompute it after every xp change.
func LevelForXP(xp int) int {
	if xp < 0 {
		return 1
	}
	return xp/XPPerLevel + 1
}

// Profile is the authenticated user's state. The JSON field names mirror the
// persisted snapshot layout.
type Profile struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	Tier              Tier      `json:"tier"`
	DailyQuestions    int       `json:"daily_questions"`
	TotalQuestions    int       `json:"total_questions"`
	Streak            int       `json:"streak"`
	LastActive        time.Time `json:"last_active"`
	XP                int       `json:"xp"`
	Level             int       `json:"level"`
	Badges            []string  `json:"badges"`
	PreferredLanguage Language  `json:"preferred_language"`
}

// HasBadge reports whether the profile already holds the given badge.
func (p Profile) HasBadge(id string) bool {
	for _, b := range p.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the profile. The badge slice is copied so
// mutations of the clone never leak into the original.
func (p Profile) Clone() Profile {
	out := p
	out.Badges = append([]string(nil), p.Badges...)
	return out
}

// QuestionsLeft returns how many questions remain today for a free profile.
// Premium profiles have no limit and always get FreeDailyLimit back purely
// for display purposes.
func (p Profile) QuestionsLeft() int {
	if p.Tier == TierPremium {
		return FreeDailyLimit
	}
	left := FreeDailyLimit - p.DailyQuestions
	if left < 0 {
		return 0
	}
	return left
}

// XPIntoLevel returns the xp accumulated since the last level boundary.
func (p Profile) XPIntoLevel() int {
	return p.XP % XPPerLevel
}
