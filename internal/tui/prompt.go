package tui

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// ConfirmRemoval asks whether the git metadata at path may be deleted.
func ConfirmRemoval(path string) (bool, error) {
	return confirmRemoval(path)
}

func confirmRemoval(path string, opts ...survey.AskOpt) (bool, error) {
	confirmed := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Delete existing git history at %s?", path),
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed, opts...); err != nil {
		return false, fmt.Errorf("canceled: %w", err)
	}
	return confirmed, nil
}
