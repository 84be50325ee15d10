package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/aretw0/knobs"
	"github.com/aretw0/knobs/pkg/domain"
	"github.com/aretw0/knobs/pkg/registry"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// SetResponse is the structured result of set_parameter.
type SetResponse struct {
	Outcome   domain.Outcome `json:"outcome"`
	Parameter *registry.Info `json:"parameter,omitempty"`
}

// Server wraps a registry and exposes it as an MCP Server.
// Tool handlers may run concurrently, so registry access is serialized by mu.
type Server struct {
	mu        sync.Mutex
	registry  *registry.Registry
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(reg *registry.Registry) *Server {
	s := &Server{
		registry:  reg,
		mcpServer: server.NewMCPServer("knobs-mcp", strings.TrimSpace(knobs.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_parameters",
		mcp.WithDescription("List every parameter with its kind, current value and constraints."),
	), s.handleList)

	s.mcpServer.AddTool(mcp.NewTool("get_parameter",
		mcp.WithDescription("Get one parameter by name."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Parameter name")),
	), s.handleGet)

	s.mcpServer.AddTool(mcp.NewTool("set_parameter",
		mcp.WithDescription("Assign a value to a parameter. Values outside the parameter's constraints are rejected and the previous value is kept."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Parameter name")),
		mcp.WithString("value", mcp.Required(), mcp.Description("Value as text, e.g. 0.8, true or accurate")),
	), s.handleSet)
}

func (s *Server) handleList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	infos := s.registry.Infos()
	s.mu.Unlock()

	return jsonResult(infos)
}

func (s *Server) handleGet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.mu.Lock()
	info, ok := s.registry.Info(name)
	s.mu.Unlock()

	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("%v: %s", domain.ErrUnknownParameter, name)), nil
	}
	return jsonResult(info)
}

func (s *Server) handleSet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	value, err := request.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.mu.Lock()
	outcome := s.registry.Set(name, value)
	info, ok := s.registry.Info(name)
	s.mu.Unlock()

	resp := SetResponse{Outcome: outcome}
	if ok {
		resp.Parameter = &info
	}
	return jsonResult(resp)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
