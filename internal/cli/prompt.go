package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// Accepted answers for yes/no questions, matched case-insensitively.
var (
	acceptPattern = regexp.MustCompile(`(?i)^(y|yes|yup|yeah)$`)
	denyPattern   = regexp.MustCompile(`(?i)^(n|no|nope|nada)$`)
	answerPattern = `(?i)^(y|yes|yup|yeah|n|no|nope|nada)$`
)

// parseAnswer reports whether answer accepts, and whether it was recognized at all.
func parseAnswer(answer string) (accept bool, ok bool) {
	answer = strings.TrimSpace(answer)
	switch {
	case acceptPattern.MatchString(answer):
		return true, true
	case denyPattern.MatchString(answer):
		return false, true
	}
	return false, false
}

// surveyPrompter asks yes/no questions on the terminal. Unrecognized answers
// fail the validator, which makes survey ask again.
type surveyPrompter struct {
	ask func(prompt survey.Prompt, response interface{}, opts ...survey.AskOpt) error
}

func newSurveyPrompter() *surveyPrompter {
	return &surveyPrompter{ask: survey.AskOne}
}

// Confirm implements scaffold.Prompter.
func (p *surveyPrompter) Confirm(message string) (bool, error) {
	var answer string
	prompt := &survey.Input{
		Message: message,
		Help:    "Answer yes or no",
	}

	validator := survey.ComposeValidators(
		survey.Required,
		matchPattern(answerPattern, "please answer yes or no"),
	)
	if err := p.ask(prompt, &answer, survey.WithValidator(validator)); err != nil {
		return false, err
	}

	accept, ok := parseAnswer(answer)
	if !ok {
		return false, fmt.Errorf("unrecognized answer: %q", answer)
	}
	return accept, nil
}

// assumeYes accepts every question without asking. Used with --yes.
type assumeYes struct{}

// Confirm implements scaffold.Prompter.
func (assumeYes) Confirm(message string) (bool, error) {
	printWarning(message + " yes")
	return true, nil
}

// matchPattern creates a validator that checks if the input matches a regex pattern.
func matchPattern(pattern string, message string) survey.Validator {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return func(val interface{}) error {
			return fmt.Errorf("invalid pattern: %s", pattern)
		}
	}
	return func(val interface{}) error {
		str, ok := val.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", val)
		}
		if !re.MatchString(strings.TrimSpace(str)) {
			return fmt.Errorf("%s", message)
		}
		return nil
	}
}
