// Package i18n holds the two fixed UI locales. This is deliberately not a
// translation engine: a typed message table per language, nothing more.
package i18n

import "github.com/glasses-man/exampilot/internal/client/models"

// Messages is the full set of user-facing strings for one locale.
type Messages struct {
	Welcome         string
	AccountCreated  string
	LoggedOut       string
	AskQuestion     string
	Thinking        string
	ExplanationDone string
	EmptyQuestion   string
	ImageQuestion   string
	DailyQuestions  string
	QuestionsLeft   string
	TotalSolved     string
	Upgrade         string
	UpgradeDesc     string
	StepByStep      string
	Question        string
	Streak          string
	Level           string
	XP              string
	Badges          string
	Leaderboard     string
	NoQuestionsYet  string
	NewBadge        string
	SomethingWrong  string

	SubjectMath      string
	SubjectPhysics   string
	SubjectChemistry string

	// FallbackSteps and FallbackAnswer form the generic explanation used
	// when the explanation service is unavailable.
	FallbackSteps  []string
	FallbackAnswer string
}

var english = Messages{
	Welcome:         "Welcome Back!",
	AccountCreated:  "Account created! Welcome to ExamPilot!",
	LoggedOut:       "Logged out",
	AskQuestion:     "Ask a Question",
	Thinking:        "Thinking...",
	ExplanationDone: "Explanation ready!",
	EmptyQuestion:   "Please enter a question",
	ImageQuestion:   "Question from image",
	DailyQuestions:  "Daily Questions",
	QuestionsLeft:   "left",
	TotalSolved:     "Total Solved",
	Upgrade:         "Upgrade to Premium",
	UpgradeDesc:     "You've reached your daily limit. Upgrade to Premium for unlimited questions.",
	StepByStep:      "Step-by-Step Solution",
	Question:        "Question:",
	Streak:          "Day Streak",
	Level:           "Level",
	XP:              "XP",
	Badges:          "Badges",
	Leaderboard:     "Leaderboard",
	NoQuestionsYet:  "No questions yet. Start learning!",
	NewBadge:        "New badge:",
	SomethingWrong:  "Something went wrong. Try again.",

	SubjectMath:      "Math",
	SubjectPhysics:   "Physics",
	SubjectChemistry: "Chemistry",

	FallbackSteps: []string{
		"Read the question carefully and understand what is being asked",
		"Identify the key concepts and formulas needed",
		"Apply the appropriate method step by step",
		"Verify your answer makes sense",
	},
	FallbackAnswer: "Solution completed! Check the steps above.",
}

var arabic = Messages{
	Welcome:         "أهلاً بعودتك!",
	AccountCreated:  "تم إنشاء الحساب! أهلاً بك في ExamPilot!",
	LoggedOut:       "تم تسجيل الخروج",
	AskQuestion:     "اطرح سؤالاً",
	Thinking:        "جاري التفكير...",
	ExplanationDone: "الشرح جاهز!",
	EmptyQuestion:   "الرجاء إدخال سؤال",
	ImageQuestion:   "سؤال من صورة",
	DailyQuestions:  "الأسئلة اليومية",
	QuestionsLeft:   "متبقي",
	TotalSolved:     "إجمالي المحلول",
	Upgrade:         "الترقية للبريميوم",
	UpgradeDesc:     "لقد وصلت للحد اليومي. رقي للبريميوم لأسئلة غير محدودة.",
	StepByStep:      "الحل خطوة بخطوة",
	Question:        "السؤال:",
	Streak:          "أيام متتالية",
	Level:           "المستوى",
	XP:              "نقاط الخبرة",
	Badges:          "الشارات",
	Leaderboard:     "لوحة المتصدرين",
	NoQuestionsYet:  "لا توجد أسئلة بعد. ابدأ التعلم!",
	NewBadge:        "شارة جديدة:",
	SomethingWrong:  "حدث خطأ. حاول مرة أخرى.",

	SubjectMath:      "رياضيات",
	SubjectPhysics:   "فيزياء",
	SubjectChemistry: "كيمياء",

	FallbackSteps: []string{
		"اقرأ السؤال وفهم ما يُطلب",
		"حدد المفاهيم والمعادلات المطلوبة",
		"طبق الطريقة المناسبة خطوة بخطوة",
		"تحقق من أن إجابتك منطقية",
	},
	FallbackAnswer: "تم إكمال الحل! راجع الخطوات أعلاه.",
}

// For returns the message table for the given language. Unknown values fall
// back to English.
func For(lang models.Language) Messages {
	if lang == models.LanguageArabic {
		return arabic
	}
	return english
}

// Subject returns the localized display name of a subject tag.
func (m Messages) Subject(s models.Subject) string {
	switch s {
	case models.SubjectPhysics:
		return m.SubjectPhysics
	case models.SubjectChemistry:
		return m.SubjectChemistry
	default:
		return m.SubjectMath
	}
}
