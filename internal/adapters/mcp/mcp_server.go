// Package mcp provides a read-only MCP (Model Context Protocol) server that
// exposes the weather content of the forecast screen. It only ever reports
// calendar day names; secret-mode labels and panel actions are not part of
// its surface.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/xvierd/skycast/internal/domain"
	"github.com/xvierd/skycast/internal/ports"
)

// Server implements the MCP server using mark3labs/mcp-go.
type Server struct {
	server   *server.MCPServer
	provider ports.ForecastProvider
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewServer creates a new MCP server instance.
func NewServer(provider ports.ForecastProvider, version string) *Server {
	s := &Server{
		provider: provider,
	}

	s.server = server.NewMCPServer(
		"skycast",
		version,
		server.WithLogging(),
	)

	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	s.server.AddTool(
		mcp.NewTool(
			"get_forecast",
			mcp.WithDescription("Get the full forecast: location, current conditions, the seven daily rows and the summary tiles"),
		),
		s.handleGetForecast,
	)

	dayTool := mcp.NewTool(
		"get_day",
		mcp.WithDescription("Get one daily forecast row"),
		mcp.WithNumber(
			"index",
			mcp.Required(),
			mcp.Description("Day index from 0 (Monday) to 6 (Sunday)"),
		),
	)
	s.server.AddTool(dayTool, s.handleGetDay)

	s.server.AddTool(
		mcp.NewTool(
			"get_summary",
			mcp.WithDescription("Get the summary tiles (air quality, precipitation, UV index)"),
		),
		s.handleGetSummary,
	)
}

// Start begins serving MCP requests via stdio.
func (s *Server) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)

	return server.ServeStdio(s.server)
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

// IsRunning returns true if the server is active.
func (s *Server) IsRunning() bool {
	if s.ctx == nil {
		return false
	}
	return s.ctx.Err() == nil
}

// Ensure Server implements ports.MCPHandler.
var _ ports.MCPHandler = (*Server)(nil)

func dayData(row domain.DailyForecast) map[string]interface{} {
	return map[string]interface{}{
		"index":       int(row.Day),
		"day":         row.Day.Name(),
		"icon":        row.Icon,
		"temperature": row.Temperature,
	}
}

func tileData(tiles []domain.SummaryTile) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(tiles))
	for _, t := range tiles {
		out = append(out, map[string]interface{}{
			"icon":  t.Icon,
			"title": t.Title,
			"value": t.Value,
		})
	}
	return out
}

func textResult(v interface{}) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleGetForecast handles the get_forecast tool.
func (s *Server) handleGetForecast(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	f, err := s.provider.GetForecast(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	days := make([]map[string]interface{}, 0, domain.DayCount)
	for _, row := range f.Days {
		days = append(days, dayData(row))
	}

	result := map[string]interface{}{
		"location": f.Location,
		"current":  f.Current,
		"days":     days,
		"summary":  tileData(f.Tiles),
	}
	if !f.UpdatedAt.IsZero() {
		result["updated_at"] = f.UpdatedAt.Format("2006-01-02T15:04:05")
	}

	return textResult(result)
}

// handleGetDay handles the get_day tool.
func (s *Server) handleGetDay(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	index, err := request.RequireInt("index")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	d, err := domain.ParseDay(index)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	f, err := s.provider.GetForecast(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	row, err := f.Row(d)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return textResult(dayData(row))
}

// handleGetSummary handles the get_summary tool.
func (s *Server) handleGetSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	f, err := s.provider.GetForecast(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	return textResult(map[string]interface{}{
		"tiles": tileData(f.Tiles),
	})
}
