package mcp

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
)

// ServeStdio runs the NDJSON transport: one JSON-RPC message per line
// read from in, one response line written to out. Notifications write
// nothing. Returns when in reaches EOF or ctx is canceled.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	slog.Info("stdio transport started")

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		resp := s.Handle(ctx, line)
		if resp == nil {
			continue
		}
		if _, err := out.Write(resp); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
		if _, err := io.WriteString(out, "\n"); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read request: %w", err)
	}
	slog.Info("stdio transport closed")
	return nil
}
