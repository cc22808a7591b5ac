package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestServeStdio_RequestResponse(t *testing.T) {
	s := newTestServer(t, emptyAPI)

	in := strings.NewReader(
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}` + "\n" +
			`{"jsonrpc":"2.0","method":"notifications/initialized"}` + "\n" +
			"\n" + // blank lines are skipped
			`{"jsonrpc":"2.0","id":2,"method":"tools/list"}` + "\n")
	var out bytes.Buffer

	if err := s.ServeStdio(context.Background(), in, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 response lines (notification is silent), got %d:\n%s", len(lines), out.String())
	}
	for i, line := range lines {
		var resp map[string]any
		if err := json.Unmarshal([]byte(line), &resp); err != nil {
			t.Errorf("line %d is not valid JSON: %v", i, err)
		}
	}
	if !strings.Contains(lines[0], `"protocolVersion"`) {
		t.Errorf("first response should answer initialize: %s", lines[0])
	}
	if !strings.Contains(lines[1], `"tools"`) {
		t.Errorf("second response should answer tools/list: %s", lines[1])
	}
}

func TestServeStdio_EOF(t *testing.T) {
	s := newTestServer(t, emptyAPI)
	var out bytes.Buffer
	if err := s.ServeStdio(context.Background(), strings.NewReader(""), &out); err != nil {
		t.Fatalf("EOF should end the loop cleanly, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}
