/* Copyright (c) 2021 David Bulkow */

package getenv

import (
	"os"
	"testing"
)

func TestGet(t *testing.T) {
	env := NewEnv("TIMEDELTA_TEST")

	os.Setenv("TIMEDELTA_TEST_FORMAT", "2006-01-02")
	defer os.Unsetenv("TIMEDELTA_TEST_FORMAT")

	if v := env.Get("FORMAT", "fallback"); v != "2006-01-02" {
		t.Errorf("expected set value, got %q", v)
	}
	if v := env.Get("MISSING", "fallback"); v != "fallback" {
		t.Errorf("expected fallback, got %q", v)
	}
}

func TestGetNoPrefix(t *testing.T) {
	env := NewEnv("")

	os.Setenv("BAREVAR", "x")
	defer os.Unsetenv("BAREVAR")

	if v := env.Get("BAREVAR", ""); v != "x" {
		t.Errorf("expected bare variable lookup, got %q", v)
	}
}

func TestGetBool(t *testing.T) {
	env := NewEnv("TIMEDELTA_TEST")

	tests := []struct {
		val  string
		def  bool
		want bool
	}{
		{"true", false, true},
		{"TRUE", false, true},
		{"false", true, false},
		{"yes", true, false},
		{"", true, true},
		{"", false, false},
	}

	for _, tt := range tests {
		if tt.val == "" {
			os.Unsetenv("TIMEDELTA_TEST_VERBOSE")
		} else {
			os.Setenv("TIMEDELTA_TEST_VERBOSE", tt.val)
		}
		if got := env.GetBool("VERBOSE", tt.def); got != tt.want {
			t.Errorf("val=%q def=%v: got %v, want %v", tt.val, tt.def, got, tt.want)
		}
	}
	os.Unsetenv("TIMEDELTA_TEST_VERBOSE")
}
