package skincare

import "fmt"

var predefinedQuestions = map[Issue][]string{
	"acne": {
		"What is your age?",
		"Did you use bleaching creams? (yes/no)",
		"How long have you had acne? (weeks/months/years)",
		"Are you stressed frequently? (yes/no)",
		"Do you use heavy makeup? (yes/no)",
		"Does acne worsen during periods? (yes/no/not sure)",
	},
	"dryness": {
		"What is your age?",
		"Do you wash face with hot water? (yes/no)",
		"Do you use exfoliants? (yes/no)",
		"How many times do you wash face per day?",
		"Do you drink enough water? (yes/no)",
		"Do you use moisturizers regularly? (yes/no)",
	},
	"blackheads": {
		"What is your age?",
		"Do you use oil-based products? (yes/no)",
		"How often do you exfoliate? (never/weekly/daily)",
		"Is your T-zone oily? (yes/no)",
		"Do you have large pores? (yes/no)",
	},
	"redness": {
		"What is your age?",
		"Does skin burn after applying products? (yes/no)",
		"Do you react to fragrances? (yes/no)",
		"Do you use sunscreen daily? (yes/no)",
		"Do you have rosacea symptoms? (yes/no/not sure)",
	},
}

// Answer pairs a follow-up question with the user's reply.
type Answer struct {
	Question string `json:"question"`
	Text     string `json:"answer"`
}

// FollowUpQuestions returns the ordered questions to ask for issue. Issues
// without a predefined list get a generic four-question sequence.
// The returned slice is always a fresh copy.
func FollowUpQuestions(issue Issue) []string {
	if questions, ok := predefinedQuestions[issue]; ok {
		return append([]string(nil), questions...)
	}

	return []string{
		fmt.Sprintf("How long have you had %s?", issue),
		"Do you use any skincare products currently? (yes/no)",
		"Do you have sensitive skin? (yes/no)",
		"Do you follow any skincare routine? (yes/no)",
	}
}

// HasPredefinedQuestions reports whether issue has a curated question list.
func HasPredefinedQuestions(issue Issue) bool {
	_, ok := predefinedQuestions[issue]
	return ok
}
