package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/AryaAkman/Open-F1-MCP-Server/internal/openf1"
)

// newTestRegistry builds a full catalog registry against a stub API.
func newTestRegistry(t *testing.T, handler http.HandlerFunc) *Registry {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewRegistry(openf1.New(srv.URL, 5*time.Second))
}

func TestRegistry_ListOrder(t *testing.T) {
	reg := newTestRegistry(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("[]"))
	})

	defs := reg.List()
	want := []string{"get_sessions", "get_drivers", "get_laps", "get_pit_stops", "get_overtakes"}
	if len(defs) != len(want) {
		t.Fatalf("expected %d tools, got %d", len(want), len(defs))
	}
	for i, name := range want {
		if defs[i].Name != name {
			t.Errorf("tool %d: expected %q, got %q", i, name, defs[i].Name)
		}
	}
}

func TestRegistry_ExecuteUnknownTool(t *testing.T) {
	reg := newTestRegistry(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("unknown tool must not reach the API")
	})

	result := reg.Execute(context.Background(), "get_weather", map[string]any{"year": float64(2023)})
	if result.Content != "Unknown tool: get_weather" {
		t.Errorf("unexpected content: %q", result.Content)
	}
	if result.IsError {
		t.Error("unknown tool is a normal result, not an error")
	}
}

func TestRegistry_ExecuteServerError(t *testing.T) {
	reg := newTestRegistry(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	result := reg.Execute(context.Background(), "get_sessions", nil)
	if !result.IsError {
		t.Fatal("expected an error result")
	}
	if !strings.Contains(result.Content, "Error") {
		t.Errorf("content should contain \"Error\": %q", result.Content)
	}
	if !strings.Contains(result.Content, "sessions") {
		t.Errorf("content should name the endpoint: %q", result.Content)
	}
}

func TestRegistry_ExecuteSuccess(t *testing.T) {
	reg := newTestRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/drivers" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("driver_number"); got != "44" {
			t.Errorf("expected driver_number=44, got %q", got)
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{{
			"driver_number": 44,
			"full_name":     "Lewis HAMILTON",
			"team_name":     "Mercedes",
		}})
	})

	result := reg.Execute(context.Background(), "get_drivers", map[string]any{"driver_number": float64(44)})
	if result.IsError {
		t.Fatalf("unexpected error result: %q", result.Content)
	}
	if !strings.HasPrefix(result.Content, "Found 1 driver(s) for driver #44:") {
		t.Errorf("unexpected header: %q", firstLine(result.Content))
	}
	if !strings.Contains(result.Content, "Name: Lewis HAMILTON\n") {
		t.Errorf("expected driver name line:\n%s", result.Content)
	}
}

func TestRegistry_ExecuteNoResults(t *testing.T) {
	reg := newTestRegistry(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("[]"))
	})

	result := reg.Execute(context.Background(), "get_overtakes", nil)
	if result.IsError {
		t.Fatalf("unexpected error result: %q", result.Content)
	}
	if result.Content != "No overtakes found matching the criteria." {
		t.Errorf("unexpected content: %q", result.Content)
	}
}

func TestRegistryBuilder_ReplaceKeepsOrder(t *testing.T) {
	client := openf1.New("http://localhost:0", time.Second)
	reg := NewRegistryBuilder(client).
		WithTool(Definition{Name: "a", Endpoint: "a"}).
		WithTool(Definition{Name: "b", Endpoint: "b"}).
		WithTool(Definition{Name: "a", Endpoint: "a2"}).
		Build()

	defs := reg.List()
	if len(defs) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(defs))
	}
	if defs[0].Name != "a" || defs[1].Name != "b" {
		t.Errorf("unexpected order: %q, %q", defs[0].Name, defs[1].Name)
	}
	if defs[0].Endpoint != "a2" {
		t.Errorf("expected replaced endpoint a2, got %q", defs[0].Endpoint)
	}
}
