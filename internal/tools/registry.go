// Package tools defines the F1 data tool catalog and the pipeline that
// serves a tool call: argument-to-parameter mapping, one API fetch,
// and text rendering of the result.
package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AryaAkman/Open-F1-MCP-Server/internal/openf1"
)

// Result is a tool execution outcome delivered back to the host.
// IsError marks failure texts (fetch problems); the text itself is
// always user-visible.
type Result struct {
	Content string
	IsError bool
}

// Registry holds the immutable tool table and dispatches calls.
// It is safe for concurrent use: nothing is mutated after Build.
type Registry struct {
	client *openf1.Client
	defs   map[string]Definition
	order  []string
}

// Get returns the definition registered under name.
func (r *Registry) Get(name string) (Definition, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// List returns all definitions in registration order.
func (r *Registry) List() []Definition {
	defs := make([]Definition, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.defs[name])
	}
	return defs
}

// Execute runs the full pipeline for one tool call. Every outcome is a
// text Result: an unknown name reports itself as a normal result, and
// fetch failures become descriptive error texts instead of propagating.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) Result {
	def, ok := r.defs[name]
	if !ok {
		return Result{Content: fmt.Sprintf("Unknown tool: %s", name)}
	}

	params := BuildParams(def, args)
	records, err := r.client.Fetch(ctx, def.Endpoint, params)
	if err != nil {
		slog.Warn("tool fetch failed", "tool", name, "endpoint", def.Endpoint, "err", err)
		return Result{
			Content: fmt.Sprintf("Error fetching %s: %v", def.Endpoint, err),
			IsError: true,
		}
	}

	return Result{Content: FormatRecords(def, args, records)}
}
