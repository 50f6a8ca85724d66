package progress

import "github.com/glasses-man/exampilot/internal/client/models"

// Apply rolls the profile forward after one completed question: counters,
// xp, derived level, then badge evaluation over the catalog in its fixed
// order. It returns the updated profile and the badges awarded by this call
// (for UI toasts).
//
// Apply is pure: the input profile is never mutated, there is no shared
// state, and identical inputs always produce identical outputs. The caller
// is responsible for appending the question record and persisting the
// result.
//
// Streak is carried through untouched: no observed transition advances it,
// so this engine does not either. dailyQuestions likewise only grows; there
// is no day-rollover reset.
func Apply(p models.Profile, subject models.Subject) (models.Profile, []Badge) {
	_ = subject // scoring is subject-independent today; the tag rides along for the record

	out := p.Clone()
	out.TotalQuestions++
	out.DailyQuestions++
	out.XP += models.XPPerQuestion
	out.Level = models.LevelForXP(out.XP)

	var awarded []Badge
	for _, b := range Catalog {
		if out.HasBadge(b.ID) {
			continue
		}
		if b.Earned(out) {
			out.Badges = append(out.Badges, b.ID)
			awarded = append(awarded, b)
		}
	}

	return out, awarded
}
