// config_test.go - Unit Tests fuer die Environment-Konfiguration
package envconfig

import (
	"log/slog"
	"testing"
)

func TestVar(t *testing.T) {
	tests := map[string]string{
		"value":       "value",
		" value ":     "value",
		`"quoted"`:    "quoted",
		"'quoted'":    "quoted",
		`" spaced "`:  " spaced ",
		"":            "",
	}
	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			t.Setenv("TENSORKIT_TEST_VAR", input)
			if got := Var("TENSORKIT_TEST_VAR"); got != want {
				t.Errorf("Var() = %q, erwartet %q", got, want)
			}
		})
	}
}

func TestBool(t *testing.T) {
	get := Bool("TENSORKIT_TEST_BOOL")
	tests := map[string]bool{
		"":      false,
		"1":     true,
		"true":  true,
		"false": false,
		"0":     false,
		"abc":   true,
	}
	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			t.Setenv("TENSORKIT_TEST_BOOL", input)
			if got := get(); got != want {
				t.Errorf("Bool() = %v, erwartet %v", got, want)
			}
		})
	}
}

func TestSkipDTypeChecks(t *testing.T) {
	t.Setenv("TENSORKIT_SKIP_DTYPE_CHECKS", "")
	if SkipDTypeChecks() {
		t.Error("SkipDTypeChecks() = true ohne gesetzte Variable")
	}
	t.Setenv("TENSORKIT_SKIP_DTYPE_CHECKS", "1")
	if !SkipDTypeChecks() {
		t.Error("SkipDTypeChecks() = false trotz gesetzter Variable")
	}
}

func TestLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":      slog.LevelInfo,
		"false": slog.LevelInfo,
		"1":     slog.LevelDebug,
		"true":  slog.LevelDebug,
		"2":     slog.Level(-8),
	}
	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			t.Setenv("TENSORKIT_DEBUG", input)
			if got := LogLevel(); got != want {
				t.Errorf("LogLevel() = %v, erwartet %v", got, want)
			}
		})
	}
}

func TestAsMap(t *testing.T) {
	m := AsMap()
	for _, key := range []string{"TENSORKIT_DEBUG", "TENSORKIT_SKIP_DTYPE_CHECKS", "TENSORKIT_NATIVE_MODE"} {
		v, ok := m[key]
		if !ok {
			t.Errorf("AsMap() ohne Eintrag %s", key)
			continue
		}
		if v.Name != key || v.Description == "" {
			t.Errorf("AsMap()[%s] unvollstaendig: %+v", key, v)
		}
	}
}
