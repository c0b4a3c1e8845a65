package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func writeFixture(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.sol")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestTokensCommandDumpsTokenStream(t *testing.T) {
	log := zap.NewNop()
	path := writeFixture(t, "contract C {}")

	cmd := newTokensCmd(&log)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() = %v", err)
	}
	if !strings.Contains(out.String(), "contract") {
		t.Fatalf("output missing the contract keyword token: %q", out.String())
	}
}

func TestParseCommandReportsDiagnosticCount(t *testing.T) {
	log := zap.NewNop()
	path := writeFixture(t, "contract C {")

	cmd := newParseCmd(&log)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() = %v", err)
	}
	if !strings.Contains(out.String(), "diagnostics") {
		t.Fatalf("output missing the diagnostic summary line: %q", out.String())
	}
}

func TestParseCommandStrictFlagFailsOnDiagnostics(t *testing.T) {
	log := zap.NewNop()
	path := writeFixture(t, "contract C {")

	cmd := newParseCmd(&log)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--strict", path})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("Execute() with --strict on malformed input = nil error, want non-nil")
	}
}

func TestRPCStubCommandRendersEthCallSkeleton(t *testing.T) {
	log := zap.NewNop()
	path := writeFixture(t, "contract C { function get() public view returns (uint256) { } }")

	cmd := newRPCStubCmd(&log)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--method", "get", path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() = %v", err)
	}
	if !strings.Contains(out.String(), "eth_call") {
		t.Fatalf("output missing eth_call method name: %q", out.String())
	}
}
