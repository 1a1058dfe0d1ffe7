package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// Plain output keeps rendered text assertable.
	lipgloss.SetColorProfile(termenv.Ascii)
	goleak.VerifyTestMain(m)
}
