// Package dependency wires the f1data services using go.uber.org/dig.
package dependency

import (
	"time"

	"go.uber.org/dig"

	"github.com/AryaAkman/Open-F1-MCP-Server/internal/config"
	"github.com/AryaAkman/Open-F1-MCP-Server/internal/mcp"
	"github.com/AryaAkman/Open-F1-MCP-Server/internal/openf1"
	"github.com/AryaAkman/Open-F1-MCP-Server/internal/tools"
)

// Container holds the resolved service singletons.
// Callers use the typed getters; they never need to import dig directly.
type Container struct {
	registry *tools.Registry
	server   *mcp.Server
}

func (c *Container) Registry() *tools.Registry { return c.registry }
func (c *Container) Server() *mcp.Server       { return c.server }

// New builds and wires all services from cfg.
func New(cfg *config.Config) (*Container, error) {
	d := dig.New()

	if err := d.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := d.Provide(newClient); err != nil {
		return nil, err
	}
	if err := d.Provide(tools.NewRegistry); err != nil {
		return nil, err
	}
	if err := d.Provide(mcp.NewServer); err != nil {
		return nil, err
	}

	var result *Container
	err := d.Invoke(func(registry *tools.Registry, server *mcp.Server) {
		result = &Container{registry: registry, server: server}
	})
	return result, err
}

func newClient(cfg *config.Config) *openf1.Client {
	return openf1.New(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second)
}
