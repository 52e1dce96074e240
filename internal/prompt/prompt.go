// Package prompt asks the operator to choose between options on a terminal.
package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted is returned when the operator interrupts a prompt.
var ErrAborted = errors.New("prompt: aborted")

// SelectConfig configures a single-select prompt.
type SelectConfig struct {
	Message  string
	Options  []string
	Default  string
	Help     string
	PageSize int
}

// Picker abstracts the prompt implementation so commands can be tested
// without a real terminal.
type Picker interface {
	Select(ctx context.Context, cfg SelectConfig) (string, error)
}

// Survey returns a Picker backed by survey prompts.
func Survey() Picker {
	return surveyPicker{}
}

type surveyPicker struct{}

func (surveyPicker) Select(ctx context.Context, cfg SelectConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(cfg.Options) == 0 {
		return "", fmt.Errorf("prompt: no options to choose from")
	}

	prompt := &survey.Select{
		Message: cfg.Message,
		Options: cfg.Options,
		Help:    cfg.Help,
	}
	if cfg.PageSize > 0 {
		prompt.PageSize = cfg.PageSize
	}
	if cfg.Default != "" && indexOf(cfg.Options, cfg.Default) >= 0 {
		prompt.Default = cfg.Default
	}

	var out string
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

// Static returns a Picker that always answers with choice, failing when the
// choice is not among the options.
func Static(choice string) Picker {
	return staticPicker(choice)
}

type staticPicker string

func (p staticPicker) Select(ctx context.Context, cfg SelectConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if indexOf(cfg.Options, string(p)) < 0 {
		return "", fmt.Errorf("prompt: %q is not a valid option", string(p))
	}
	return string(p), nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

func indexOf(options []string, value string) int {
	for i, option := range options {
		if option == value {
			return i
		}
	}
	return -1
}
