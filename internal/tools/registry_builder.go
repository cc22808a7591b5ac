package tools

import "github.com/AryaAkman/Open-F1-MCP-Server/internal/openf1"

// RegistryBuilder accumulates tool definitions during construction.
// Call Build() to produce an immutable Registry ready for dispatch.
type RegistryBuilder struct {
	client *openf1.Client
	defs   map[string]Definition
	order  []string
}

// NewRegistryBuilder returns a fresh RegistryBuilder dispatching
// fetches through client.
func NewRegistryBuilder(client *openf1.Client) *RegistryBuilder {
	return &RegistryBuilder{
		client: client,
		defs:   make(map[string]Definition),
	}
}

// WithTool adds a definition and returns the builder, enabling chaining.
// Re-adding a name replaces the earlier definition without reordering.
func (b *RegistryBuilder) WithTool(def Definition) *RegistryBuilder {
	if _, exists := b.defs[def.Name]; !exists {
		b.order = append(b.order, def.Name)
	}
	b.defs[def.Name] = def
	return b
}

// Build produces an immutable Registry from the accumulated tools.
func (b *RegistryBuilder) Build() *Registry {
	defs := make(map[string]Definition, len(b.defs))
	for name, def := range b.defs {
		defs[name] = def
	}
	order := make([]string, len(b.order))
	copy(order, b.order)
	return &Registry{client: b.client, defs: defs, order: order}
}

// NewRegistry builds a Registry preloaded with the full catalog.
func NewRegistry(client *openf1.Client) *Registry {
	builder := NewRegistryBuilder(client)
	for _, def := range Catalog() {
		builder.WithTool(def)
	}
	return builder.Build()
}
