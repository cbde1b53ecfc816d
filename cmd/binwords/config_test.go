package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestReadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"BINWORDS_VERBOSE", "BINWORDS_COLOR"} {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}

		cfg, err := ReadConfig()
		if err != nil {
			t.Fatal(err)
		}

		if cfg.Verbose {
			t.Error("expected verbose to default to false")
		}

		if !cfg.Color {
			t.Error("expected color to default to true")
		}
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("BINWORDS_VERBOSE", "true")
		t.Setenv("BINWORDS_COLOR", "false")

		cfg, err := ReadConfig()
		if err != nil {
			t.Fatal(err)
		}

		if !cfg.Verbose || cfg.Color {
			t.Errorf("expected verbose without color but got %+v", cfg)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		t.Setenv("BINWORDS_VERBOSE", "sometimes")

		if _, err := ReadConfig(); err == nil {
			t.Error("expected an error for a non-boolean BINWORDS_VERBOSE")
		}
	})
}

func TestRun(t *testing.T) {
	name := filepath.Join(t.TempDir(), "boot.bin")
	if err := os.WriteFile(name, []byte{0x7c, 0x01, 0x00, 0x30}, 0644); err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	if err := run(buf, name); err != nil {
		t.Fatal(err)
	}

	expected := "0x7c01, 0x30, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, \n"
	if buf.String() != expected {
		t.Errorf("expected %q but got %q", expected, buf.String())
	}

	if err := run(buf, filepath.Join(t.TempDir(), "missing.bin")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
