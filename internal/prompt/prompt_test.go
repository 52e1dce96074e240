package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
)

func TestStaticPicker(t *testing.T) {
	picker := Static("b")
	got, err := picker.Select(context.Background(), SelectConfig{Options: []string{"a", "b"}})
	if err != nil || got != "b" {
		t.Fatalf("expected b, got %q (err=%v)", got, err)
	}
	if _, err := picker.Select(context.Background(), SelectConfig{Options: []string{"a"}}); err == nil {
		t.Fatalf("expected invalid option error")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := picker.Select(ctx, SelectConfig{Options: []string{"b"}}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestSurveyPickerRejectsEmptyOptions(t *testing.T) {
	if _, err := Survey().Select(context.Background(), SelectConfig{}); err == nil {
		t.Fatalf("expected error for empty options")
	}
}

func TestTranslateSurveyErr(t *testing.T) {
	if err := translateSurveyErr(terminal.InterruptErr); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	other := errors.New("boom")
	if err := translateSurveyErr(other); err != other {
		t.Fatalf("expected passthrough, got %v", err)
	}
}
