// Package mcp exposes the tool registry over the Model Context
// Protocol: JSON-RPC 2.0 messages carried by stdio (NDJSON lines),
// HTTP POST, or WebSocket frames.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/AryaAkman/Open-F1-MCP-Server/internal/tools"
)

const (
	protocolVersion = "2024-11-05"
	serverName      = "f1-historical-data"
	serverVersion   = "0.1.0"
)

// JSON-RPC 2.0 error codes.
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

// Server handles MCP messages against an immutable tool registry.
// It keeps no per-call state, so one instance serves every transport
// and any number of concurrent messages.
type Server struct {
	registry *tools.Registry
}

// NewServer creates a Server dispatching into registry.
func NewServer(registry *tools.Registry) *Server {
	return &Server{registry: registry}
}

type request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type response struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      any       `json:"id"`
	Result  any       `json:"result,omitempty"`
	Error   *rpcError `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type textContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type callResult struct {
	Content []textContent `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

type toolDescriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// Handle processes one JSON-RPC message and returns the encoded
// response. Notifications return nil: they produce no output at all.
func (s *Server) Handle(ctx context.Context, data []byte) []byte {
	var req request
	if err := json.Unmarshal(data, &req); err != nil {
		return encode(errorResponse(nil, codeParseError, fmt.Sprintf("parse error: %v", err)))
	}

	if strings.HasPrefix(req.Method, "notifications/") {
		return nil
	}

	switch req.Method {
	case "initialize":
		return encode(resultResponse(req.ID, map[string]any{
			"protocolVersion": protocolVersion,
			"capabilities":    map[string]any{"tools": map[string]any{}},
			"serverInfo":      map[string]any{"name": serverName, "version": serverVersion},
		}))
	case "ping":
		return encode(resultResponse(req.ID, map[string]any{}))
	case "tools/list":
		return encode(resultResponse(req.ID, s.listTools()))
	case "tools/call":
		return encode(s.callTool(ctx, req))
	default:
		return encode(errorResponse(req.ID, codeMethodNotFound, fmt.Sprintf("method not found: %s", req.Method)))
	}
}

func (s *Server) listTools() map[string]any {
	defs := s.registry.List()
	descriptors := make([]toolDescriptor, 0, len(defs))
	for _, def := range defs {
		descriptors = append(descriptors, toolDescriptor{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.InputSchema(),
		})
	}
	return map[string]any{"tools": descriptors}
}

func (s *Server) callTool(ctx context.Context, req request) response {
	var params struct {
		Name      string         `json:"name"`
		Arguments map[string]any `json:"arguments"`
	}
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return errorResponse(req.ID, codeInvalidParams, fmt.Sprintf("invalid params: %v", err))
		}
	}
	if params.Name == "" {
		return errorResponse(req.ID, codeInvalidParams, "tool name is required")
	}

	result := s.registry.Execute(ctx, params.Name, params.Arguments)
	return resultResponse(req.ID, callResult{
		Content: []textContent{{Type: "text", Text: result.Content}},
		IsError: result.IsError,
	})
}

func resultResponse(id any, result any) response {
	return response{JSONRPC: "2.0", ID: id, Result: result}
}

func errorResponse(id any, code int, message string) response {
	return response{JSONRPC: "2.0", ID: id, Error: &rpcError{Code: code, Message: message}}
}

func encode(resp response) []byte {
	data, err := json.Marshal(resp)
	if err != nil {
		// The response structs marshal unconditionally; this is the
		// absolute fallback for a pathological Result payload.
		return []byte(`{"jsonrpc":"2.0","id":null,"error":{"code":-32603,"message":"failed to encode response"}}`)
	}
	return data
}
