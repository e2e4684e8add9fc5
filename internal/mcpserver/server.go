// Package mcpserver exposes the timer's three operations as MCP tools
// over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/onnk5188-hash/notion/config"
	"github.com/onnk5188-hash/notion/internal/app"
	"github.com/onnk5188-hash/notion/internal/version"
)

// Serve runs the MCP server until the client disconnects. Tool errors
// are returned as tool results, not protocol failures, so an agent can
// see why a call was rejected.
func Serve(cfg *config.Config) error {
	application := app.New(cfg)

	s := server.NewMCPServer("notion-timer", version.Version,
		server.WithToolCapabilities(false),
	)

	startTool := mcp.NewTool("start_timer",
		mcp.WithDescription("Begin a new timer session. Fails if a session is already running."),
		mcp.WithString("project",
			mcp.Required(),
			mcp.Description("Project or category name (maps to the Notion select property)"),
		),
		mcp.WithString("task",
			mcp.Required(),
			mcp.Description("Specific task name (maps to the Notion title property)"),
		),
	)
	s.AddTool(startTool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		project, err := req.RequireString("project")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		task, err := req.RequireString("task")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		sess, err := application.Tracker.Start(project, task)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Started '%s' / '%s' at %s",
			sess.Project, sess.Task, sess.Start.Format(time.RFC3339))), nil
	})

	stopTool := mcp.NewTool("stop_timer",
		mcp.WithDescription("Stop the running session and write the elapsed time into the Notion database."),
	)
	s.AddTool(stopTool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := cfg.ValidateCredentials(); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		entry, err := application.Tracker.Stop()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Recorded '%s' / '%s' for %.2f minutes. Entry stored in Notion.",
			entry.Project, entry.Task, entry.DurationMinutes)), nil
	})

	statusTool := mcp.NewTool("timer_status",
		mcp.WithDescription("Report whether a session is running and when it started."),
	)
	s.AddTool(statusTool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sess := application.Tracker.Status()
		if sess == nil {
			return mcp.NewToolResultText("No active session."), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Running: project='%s', task='%s', started at %s",
			sess.Project, sess.Task, sess.Start.Format(time.RFC3339))), nil
	})

	return server.ServeStdio(s)
}
