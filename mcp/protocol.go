package mcp

import (
	"encoding/json"

	"github.com/careerfuture/backend/tools"
)

// ProtocolVersion is the MCP revision reported by initialize.
const ProtocolVersion = "2024-11-05"

const jsonRPCVersion = "2.0"

// JSON-RPC 2.0 error codes.
const (
	codeParseError     = -32700
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

// Request is a JSON-RPC call. ID is echoed back untouched.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response carries either Result or Error.
type Response struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      any       `json:"id"`
	Result  any       `json:"result,omitempty"`
	Error   *RPCError `json:"error,omitempty"`
}

type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type InitializeResult struct {
	ProtocolVersion string            `json:"protocolVersion"`
	ServerInfo      map[string]string `json:"serverInfo"`
	Capabilities    map[string]any    `json:"capabilities"`
}

type ToolsListResult struct {
	Tools []tools.Definition `json:"tools"`
}

// CallParams names the tool and its raw arguments.
type CallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// CallResult is the tools/call payload: a single text item holding the
// tool's JSON output, or the failure message when IsError is set.
type CallResult struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
}

type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func textResult(text string, isError bool) CallResult {
	return CallResult{Content: []Content{{Type: "text", Text: text}}, IsError: isError}
}
