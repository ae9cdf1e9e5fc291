// Package tools exposes the backend's capabilities as named, schema-described
// tools for external agents.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Tool is a capability callable by name through the MCP endpoint. Input and
// output are JSON; Execute returns an error only when the tool could not run,
// and reports bad input through NewErrorResult.
type Tool interface {
	Name() string
	Description() string
	InputSchema() map[string]any
	Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error)
}

// ToolRegistry is safe for concurrent use.
type ToolRegistry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewToolRegistry returns an empty registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{tools: map[string]Tool{}}
}

// Register fails when the name is already taken.
func (r *ToolRegistry) Register(tool Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := tool.Name()
	if _, dup := r.tools[name]; dup {
		return fmt.Errorf("tool already registered: %s", name)
	}
	r.tools[name] = tool
	return nil
}

// Get looks a tool up by name.
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns the tools ordered by name.
func (r *ToolRegistry) List() []Tool {
	r.mu.RLock()
	list := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		list = append(list, tool)
	}
	r.mu.RUnlock()

	slices.SortFunc(list, func(a, b Tool) int { return strings.Compare(a.Name(), b.Name()) })
	return list
}

// Definition is how a tool is advertised by /api/tools and tools/list.
type Definition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// Definitions describes every tool, ordered by name. It is never nil.
func (r *ToolRegistry) Definitions() []Definition {
	var defs []Definition
	for _, tool := range r.List() {
		defs = append(defs, Definition{
			Name:        tool.Name(),
			Description: tool.Description(),
			InputSchema: tool.InputSchema(),
		})
	}
	if defs == nil {
		defs = []Definition{}
	}
	return defs
}

// ToolResult is the envelope every tool answers with.
type ToolResult struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func NewSuccessResult(data any) (json.RawMessage, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tool output: %w", err)
	}
	return json.Marshal(ToolResult{Success: true, Data: payload})
}

func NewErrorResult(message string) (json.RawMessage, error) {
	return json.Marshal(ToolResult{Error: message})
}

// decodeInput treats a missing argument object as {}.
func decodeInput(input json.RawMessage, v any) error {
	if len(input) == 0 {
		input = json.RawMessage("{}")
	}
	if err := json.Unmarshal(input, v); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	return nil
}
