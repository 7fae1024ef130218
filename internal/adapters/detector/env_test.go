package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/bump/internal/adapters/detector"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		isTTY    bool
		ci       string
		expected detector.OutputMode
	}{
		{name: "terminal without CI", isTTY: true, ci: "", expected: detector.ModeTUI},
		{name: "terminal with CI=false", isTTY: true, ci: "false", expected: detector.ModeTUI},
		{name: "CI=true forces linear", isTTY: true, ci: "true", expected: detector.ModeLinear},
		{name: "CI=1 forces linear", isTTY: true, ci: "1", expected: detector.ModeLinear},
		{name: "no terminal", isTTY: false, ci: "", expected: detector.ModeLinear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.Detect(tt.isTTY, tt.ci))
		})
	}
}

func TestDetectEnvironment_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment())
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name         string
		autoDetected detector.OutputMode
		userFlag     string
		expected     detector.OutputMode
	}{
		{name: "auto keeps TUI", autoDetected: detector.ModeTUI, userFlag: "auto", expected: detector.ModeTUI},
		{name: "auto keeps linear", autoDetected: detector.ModeLinear, userFlag: "auto", expected: detector.ModeLinear},
		{name: "empty keeps detection", autoDetected: detector.ModeTUI, userFlag: "", expected: detector.ModeTUI},
		{name: "tui overrides", autoDetected: detector.ModeLinear, userFlag: "tui", expected: detector.ModeTUI},
		{name: "linear overrides", autoDetected: detector.ModeTUI, userFlag: "linear", expected: detector.ModeLinear},
		{name: "ci is an alias for linear", autoDetected: detector.ModeTUI, userFlag: "ci", expected: detector.ModeLinear},
		{name: "unknown keeps detection", autoDetected: detector.ModeLinear, userFlag: "fancy", expected: detector.ModeLinear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.ResolveMode(tt.autoDetected, tt.userFlag))
		})
	}
}

func TestValidFlag(t *testing.T) {
	for _, flag := range []string{"", "auto", "tui", "linear", "ci"} {
		assert.True(t, detector.ValidFlag(flag), flag)
	}
	assert.False(t, detector.ValidFlag("fancy"))
}

func TestOutputMode_String(t *testing.T) {
	assert.Equal(t, "auto", detector.ModeAuto.String())
	assert.Equal(t, "tui", detector.ModeTUI.String())
	assert.Equal(t, "linear", detector.ModeLinear.String())
}
