package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"sukoon/internal/assessments"
	"sukoon/internal/events"
	"sukoon/internal/progress"
	"sukoon/internal/reminders"
)

// NewServer creates an MCP server exposing the sukoon services to
// caregiver-side assistants: reminder and event lookups, assessment
// history, and the month summary computation.
func NewServer(remSvc *reminders.Service, evSvc *events.Service, asSvc *assessments.Service, progSvc *progress.Service) *server.MCPServer {
	s := server.NewMCPServer(
		"Sukoon",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Tool: get_reminders - one user's reminders for a day
	s.AddTool(
		mcp.NewTool("get_reminders",
			mcp.WithDescription("Get a user's reminders for one day, ordered by their time label. Use this to see what is scheduled for a given date."),
			mcp.WithString("user",
				mcp.Required(),
				mcp.Description("The user ID (24-character hex string)"),
			),
			mcp.WithString("date",
				mcp.Required(),
				mcp.Description("Day to look up, canonical YYYY-MM-DD"),
			),
		),
		handleGetReminders(remSvc),
	)

	// Tool: list_events - all community events
	s.AddTool(
		mcp.NewTool("list_events",
			mcp.WithDescription("List all community events, ordered by their date label. Use this to see upcoming gatherings."),
		),
		handleListEvents(evSvc),
	)

	// Tool: get_event - one event by ID
	s.AddTool(
		mcp.NewTool("get_event",
			mcp.WithDescription("Get a specific community event by its ID, including location and host contact."),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("The event ID (24-character hex string)"),
			),
		),
		handleGetEvent(evSvc),
	)

	// Tool: assessment_history - one user's assessment results
	s.AddTool(
		mcp.NewTool("assessment_history",
			mcp.WithDescription("Get a user's cognitive assessment results, newest first. Use this to follow score trends over time."),
			mcp.WithString("user",
				mcp.Required(),
				mcp.Description("The user ID (24-character hex string)"),
			),
		),
		handleAssessmentHistory(asSvc),
	)

	// Tool: summarize_month - aggregate a month of client activity logs
	s.AddTool(
		mcp.NewTool("summarize_month",
			mcp.WithDescription("Aggregate a month of client activity logs (to-dos, shopping-game sessions, exercise sessions, monthly notes) into a summary with a feedback tier. The logs document is the client's exported JSON."),
			mcp.WithString("logs",
				mcp.Required(),
				mcp.Description("JSON document with todos, shoppingSessions, exerciseSessions and notes arrays/maps"),
			),
			mcp.WithString("month",
				mcp.Description("Month to summarize, canonical YYYY-MM (default: current month)"),
			),
		),
		handleSummarizeMonth(progSvc),
	)

	return s
}

func handleGetReminders(svc *reminders.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		user, err := req.RequireString("user")
		if err != nil {
			return mcp.NewToolResultError("user is required"), nil
		}
		date, err := req.RequireString("date")
		if err != nil {
			return mcp.NewToolResultError("date is required"), nil
		}

		list, err := svc.ListByDate(ctx, user, date)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to get reminders: %v", err)), nil
		}

		data, _ := json.MarshalIndent(list, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func handleListEvents(svc *events.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		list, err := svc.List(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to list events: %v", err)), nil
		}

		data, _ := json.MarshalIndent(list, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func handleGetEvent(svc *events.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError("id is required"), nil
		}

		ev, err := svc.GetByID(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to get event: %v", err)), nil
		}

		data, _ := json.MarshalIndent(ev, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func handleAssessmentHistory(svc *assessments.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		user, err := req.RequireString("user")
		if err != nil {
			return mcp.NewToolResultError("user is required"), nil
		}

		list, err := svc.History(ctx, user)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to get assessment history: %v", err)), nil
		}

		data, _ := json.MarshalIndent(list, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func handleSummarizeMonth(svc *progress.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logs, err := req.RequireString("logs")
		if err != nil {
			return mcp.NewToolResultError("logs is required"), nil
		}

		var input progress.SummaryInput
		if err := json.Unmarshal([]byte(logs), &input); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid logs document: %v", err)), nil
		}
		if month := req.GetString("month", ""); month != "" {
			input.Month = month
		}

		summary := svc.Summarize(input)
		data, _ := json.MarshalIndent(summary, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}
