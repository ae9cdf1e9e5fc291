// Package mcp serves the tool registry over a minimal MCP (JSON-RPC 2.0)
// endpoint so external agents can call the backend's tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/careerfuture/backend/models"
	"github.com/careerfuture/backend/tools"
)

// methodFunc answers one JSON-RPC method. A non-nil *RPCError is sent
// instead of the result.
type methodFunc func(ctx context.Context, params json.RawMessage) (any, *RPCError)

// Server exposes a tool registry to MCP clients.
type Server struct {
	registry *tools.ToolRegistry
	version  string
	logger   *zap.Logger
	methods  map[string]methodFunc
}

// NewServer serves registry over MCP; version is reported by initialize.
func NewServer(registry *tools.ToolRegistry, version string, logger *zap.Logger) *Server {
	s := &Server{
		registry: registry,
		version:  version,
		logger:   logger.With(zap.String("component", "mcp")),
	}
	s.methods = map[string]methodFunc{
		"initialize": s.initialize,
		"ping":       func(context.Context, json.RawMessage) (any, *RPCError) { return struct{}{}, nil },
		"tools/list": s.listTools,
		"tools/call": s.callTool,
	}
	return s
}

// RegisterRoutes mounts the JSON-RPC endpoint and its two REST shortcuts.
func (s *Server) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/mcp", s.HandleMCP)
	router.POST("/mcp/tools/list", s.HandleToolsList)
	router.POST("/mcp/tools/call", s.HandleToolsCall)
}

// HandleMCP godoc
// @Summary MCP JSON-RPC endpoint
// @Description initialize, ping, tools/list and tools/call over JSON-RPC 2.0
// @Tags MCP
// @Accept json
// @Produce json
// @Param request body Request true "JSON-RPC request"
// @Success 200 {object} Response
// @Router /mcp [post]
func (s *Server) HandleMCP(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		s.reply(c, nil, nil, &RPCError{Code: codeParseError, Message: "Parse error", Data: err.Error()})
		return
	}
	if req.JSONRPC != jsonRPCVersion {
		s.reply(c, req.ID, nil, &RPCError{Code: codeInvalidRequest, Message: "Invalid Request", Data: `jsonrpc must be "2.0"`})
		return
	}

	method, ok := s.methods[req.Method]
	if !ok {
		s.reply(c, req.ID, nil, &RPCError{Code: codeMethodNotFound, Message: "Method not found", Data: req.Method})
		return
	}

	result, rpcErr := method(c.Request.Context(), req.Params)
	s.reply(c, req.ID, result, rpcErr)
}

// HandleToolsList handles POST /mcp/tools/list
func (s *Server) HandleToolsList(c *gin.Context) {
	c.JSON(http.StatusOK, ToolsListResult{Tools: s.registry.Definitions()})
}

// HandleToolsCall handles POST /mcp/tools/call
func (s *Server) HandleToolsCall(c *gin.Context) {
	var params CallParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Status:  models.StatusError,
			Error:   "Invalid request",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, s.run(c.Request.Context(), params))
}

func (s *Server) initialize(context.Context, json.RawMessage) (any, *RPCError) {
	return InitializeResult{
		ProtocolVersion: ProtocolVersion,
		ServerInfo:      map[string]string{"name": "careerfuture", "version": s.version},
		Capabilities:    map[string]any{"tools": map[string]any{}},
	}, nil
}

func (s *Server) listTools(context.Context, json.RawMessage) (any, *RPCError) {
	return ToolsListResult{Tools: s.registry.Definitions()}, nil
}

func (s *Server) callTool(ctx context.Context, raw json.RawMessage) (any, *RPCError) {
	var params CallParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, &RPCError{Code: codeInvalidParams, Message: "Invalid params", Data: err.Error()}
	}
	return s.run(ctx, params), nil
}

// run executes a tool. Tool failures, including an envelope with
// success=false, are reported inside the result rather than as RPC errors.
func (s *Server) run(ctx context.Context, params CallParams) CallResult {
	tool, ok := s.registry.Get(params.Name)
	if !ok {
		return textResult(fmt.Sprintf("tool not found: %s", params.Name), true)
	}

	start := time.Now()
	output, err := tool.Execute(ctx, params.Arguments)
	if err != nil {
		s.logger.Error("tool failed", zap.String("tool", params.Name), zap.Error(err))
		return textResult(err.Error(), true)
	}
	s.logger.Info("tool completed",
		zap.String("tool", params.Name),
		zap.Duration("latency", time.Since(start)),
	)

	var envelope tools.ToolResult
	failed := json.Unmarshal(output, &envelope) == nil && !envelope.Success
	return textResult(string(output), failed)
}

func (s *Server) reply(c *gin.Context, id any, result any, rpcErr *RPCError) {
	resp := Response{JSONRPC: jsonRPCVersion, ID: id}
	if rpcErr != nil {
		resp.Error = rpcErr
	} else {
		resp.Result = result
	}
	c.JSON(http.StatusOK, resp)
}
