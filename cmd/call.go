package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/AryaAkman/Open-F1-MCP-Server/internal/config"
	"github.com/AryaAkman/Open-F1-MCP-Server/internal/dependency"
	"github.com/AryaAkman/Open-F1-MCP-Server/internal/tools"
)

var callConfig string

var callCmd = &cobra.Command{
	Use:   "call <tool> [key=value ...]",
	Short: "Invoke a tool once and print the report",
	Example: `  f1data call get_sessions year=2023 country_name=Monaco
  f1data call get_pit_stops session_key=9158 pit_duration=30.0`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCall,
}

func init() {
	callCmd.Flags().StringVarP(&callConfig, "config", "c", "", "Config file path (default ~/.f1data/config.yaml)")
}

func runCall(_ *cobra.Command, argv []string) error {
	cfg, err := config.Load(callConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	setupLogging(cfg.Log.Level)

	container, err := dependency.New(cfg)
	if err != nil {
		return fmt.Errorf("wire services: %w", err)
	}

	name := argv[0]
	args := map[string]any{}
	if def, ok := container.Registry().Get(name); ok {
		args, err = parseCallArgs(def, argv[1:])
		if err != nil {
			return err
		}
	}

	timeout := time.Duration(cfg.API.TimeoutSeconds+5) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	result := container.Registry().Execute(ctx, name, args)
	fmt.Println(result.Content)
	return nil
}

// parseCallArgs converts key=value pairs into typed arguments per the
// tool's schema. Keys the schema does not declare pass through as
// strings; the parameter builder drops them.
func parseCallArgs(def tools.Definition, pairs []string) (map[string]any, error) {
	types := make(map[string]tools.ArgType, len(def.Arguments))
	for _, arg := range def.Arguments {
		types[arg.Name] = arg.Type
	}

	args := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("argument %q is not key=value", pair)
		}
		switch types[key] {
		case tools.ArgInteger:
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("argument %s: %w", key, err)
			}
			args[key] = n
		case tools.ArgNumber:
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, fmt.Errorf("argument %s: %w", key, err)
			}
			args[key] = f
		default:
			args[key] = value
		}
	}
	return args, nil
}
