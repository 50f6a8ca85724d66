package i18n

import (
	"testing"

	"github.com/glasses-man/exampilot/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestFor_KnownLocales(t *testing.T) {
	assert.Equal(t, "Welcome Back!", For(models.LanguageEnglish).Welcome)
	assert.Equal(t, "أهلاً بعودتك!", For(models.LanguageArabic).Welcome)
}

func TestFor_UnknownFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, For(models.LanguageEnglish), For(models.Language("fr")))
}

func TestFallbackTemplate_HasFourStepsInBothLocales(t *testing.T) {
	for _, lang := range []models.Language{models.LanguageEnglish, models.LanguageArabic} {
		m := For(lang)
		assert.Len(t, m.FallbackSteps, 4, "lang=%s", lang)
		assert.NotEmpty(t, m.FallbackAnswer, "lang=%s", lang)
	}
}

func TestMessages_Subject(t *testing.T) {
	m := For(models.LanguageEnglish)
	assert.Equal(t, "Math", m.Subject(models.SubjectMath))
	assert.Equal(t, "Physics", m.Subject(models.SubjectPhysics))
	assert.Equal(t, "Chemistry", m.Subject(models.SubjectChemistry))
}
