package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AryaAkman/Open-F1-MCP-Server/internal/tools"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the available F1 data tools",
	Run:   runTools,
}

func runTools(_ *cobra.Command, _ []string) {
	for _, def := range tools.Catalog() {
		fmt.Printf("%s  (endpoint: %s)\n", def.Name, def.Endpoint)
		fmt.Printf("  %s\n", def.Description)
		for _, arg := range def.Arguments {
			fmt.Printf("  - %s (%s): %s\n", arg.Name, arg.Type, arg.Description)
		}
		fmt.Println()
	}
}
