package cmd

import (
	"github.com/manifoldco/promptui"

	"github.com/spigell/skin-advisor/internal/consultation"
	"github.com/spigell/skin-advisor/internal/history"
	"github.com/spigell/skin-advisor/internal/skincare"
)

var historyRecordFixture = history.Record{
	ID:             "fixture",
	SkinType:       skincare.SkinUnknown,
	Issue:          "hair loss",
	Recommendation: skincare.DefaultRecommendation,
	Advice:         consultation.AdviceDisabled,
}

func promptWithValidation() promptui.Prompt {
	return promptui.Prompt{Label: "issue", Validate: validateIssue}
}
