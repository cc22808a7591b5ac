package main

import "github.com/AryaAkman/Open-F1-MCP-Server/cmd"

func main() {
	cmd.Execute()
}
