package cli

import (
	"reflect"
	"testing"

	"github.com/spf13/viper"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"LogLevel", flags.LogLevel, "warn"},
		{"RateLimit", flags.RateLimit, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test boolean defaults (should be false)
	boolTests := []struct {
		name  string
		value bool
	}{
		{"Check", flags.Check},
		{"Backup", flags.Backup},
		{"ListModels", flags.ListModels},
		{"Verbose", flags.Verbose},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != false {
				t.Errorf("%s = %v, want false", tt.name, tt.value)
			}
		})
	}

	// Test string defaults (should be empty)
	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"OutputDir", flags.OutputDir},
		{"Suggest", flags.Suggest},
		{"Lang", flags.Lang},
		{"Model", flags.Model},
		{"MemoryPath", flags.MemoryPath},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %v, want empty string", tt.name, tt.value)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("output.directory", "/cfg/out")
	viper.Set("suggest.provider", "gemini")
	viper.Set("suggest.lang", "fr")
	viper.Set("suggest.rate", 0.5)
	viper.Set("log.level", "debug")

	flags := NewFlags()
	flags.Model = "from-flag"
	flags.Resolve()

	if flags.OutputDir != "/cfg/out" {
		t.Errorf("OutputDir = %q, want /cfg/out", flags.OutputDir)
	}
	if flags.Suggest != "gemini" {
		t.Errorf("Suggest = %q, want gemini", flags.Suggest)
	}
	if flags.Lang != "fr" {
		t.Errorf("Lang = %q, want fr", flags.Lang)
	}
	if flags.Model != "from-flag" {
		t.Errorf("Model = %q, want from-flag", flags.Model)
	}
	if flags.RateLimit != 0.5 {
		t.Errorf("RateLimit = %v, want 0.5", flags.RateLimit)
	}
	if flags.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", flags.LogLevel)
	}
}

func TestResolve_KeepsDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	flags := NewFlags()
	flags.Resolve()

	if flags.RateLimit != 2 {
		t.Errorf("RateLimit = %v, want 2", flags.RateLimit)
	}
	if flags.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", flags.LogLevel)
	}
	if flags.OutputDir != "" {
		t.Errorf("OutputDir = %q, want empty", flags.OutputDir)
	}
}
