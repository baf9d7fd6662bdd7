/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestVersion(t *testing.T) {
	code, out, _ := runCLI(t, "", "-version")
	if code != 0 {
		t.Fatalf("Expected exit 0, got %d", code)
	}
	if !strings.HasPrefix(out, "typebridge ") {
		t.Errorf("Unexpected version output %q", out)
	}
}

func TestJSONToYAML(t *testing.T) {
	code, out, errOut := runCLI(t, `{"__type":"Point","x":1,"y":2}`, "-to", "yaml")
	if code != 0 {
		t.Fatalf("Expected exit 0, got %d: %s", code, errOut)
	}
	for _, want := range []string{"__type: Point", "x: 1", "y: 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
}

func TestYAMLFileToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "point.yaml")
	if err := os.WriteFile(path, []byte("__type: Point\nx: 1\ny: 2.5\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	code, out, errOut := runCLI(t, "", path)
	if code != 0 {
		t.Fatalf("Expected exit 0, got %d: %s", code, errOut)
	}
	if out != "{\"__type\":\"Point\",\"x\":1,\"y\":2.5}\n" {
		t.Errorf("Unexpected JSON output %q", out)
	}
}

func TestTag(t *testing.T) {
	code, out, _ := runCLI(t, `{"__type":"Player","name":"Ann"}`, "-tag")
	if code != 0 || out != "Player\n" {
		t.Errorf("Expected Player tag, got %d %q", code, out)
	}

	code, _, errOut := runCLI(t, `{"name":"Ann"}`, "-tag")
	if code != 1 {
		t.Errorf("Expected exit 1 for untagged document, got %d", code)
	}
	if !strings.Contains(errOut, "__type") {
		t.Errorf("Expected tag field in error, got %q", errOut)
	}
}

func TestInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		code  int
	}{
		{"malformed json", `{"x":`, nil, 1},
		{"unknown input format", `{}`, []string{"-from", "toml"}, 1},
		{"unknown output format", `{}`, []string{"-to", "xml"}, 1},
		{"unknown flag", `{}`, []string{"-nope"}, 2},
		{"missing file", "", []string{filepath.Join(os.TempDir(), "does-not-exist.json")}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, _ := runCLI(t, tt.stdin, tt.args...)
			if code != tt.code {
				t.Errorf("Expected exit %d, got %d", tt.code, code)
			}
		})
	}
}

func TestBinaryFormatsRoundTrip(t *testing.T) {
	for _, tt := range []struct{ format, ext string }{
		{"cbor", ".cbor"},
		{"proto", ".pb"},
	} {
		t.Run(tt.format, func(t *testing.T) {
			code, out, errOut := runCLI(t, `{"__type":"Point","x":1,"y":2.5}`, "-to", tt.format)
			if code != 0 {
				t.Fatalf("Expected exit 0, got %d: %s", code, errOut)
			}

			path := filepath.Join(t.TempDir(), "point"+tt.ext)
			if err := os.WriteFile(path, []byte(out), 0o600); err != nil {
				t.Fatalf("WriteFile failed: %v", err)
			}

			code, back, errOut := runCLI(t, "", path)
			if code != 0 {
				t.Fatalf("Expected exit 0, got %d: %s", code, errOut)
			}
			if back != "{\"__type\":\"Point\",\"x\":1,\"y\":2.5}\n" {
				t.Errorf("Unexpected JSON output %q", back)
			}
		})
	}
}
