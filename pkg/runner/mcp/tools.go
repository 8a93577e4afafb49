package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/moodcal/pkg/mood"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerGetMoodTool(srv, svc)
	registerSetMoodTool(srv, svc)
	registerDeleteMoodTool(srv, svc)
	registerMonthGridTool(srv, svc)
	registerListMoodsTool(srv, svc)
}

func registerGetMoodTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_mood",
		mcp.WithDescription("Get the mood recorded for a day."),
		mcp.WithString("date",
			mcp.Description("Day as YYYY-MM-DD. Defaults to today."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.GetMood(ctx, request.GetString("date", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerSetMoodTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_mood",
		mcp.WithDescription("Record the mood for a day, replacing any earlier mood."),
		mcp.WithString("mood",
			mcp.Required(),
			mcp.Description("Mood identifier."),
			mcp.Enum(mood.Kinds()...),
		),
		mcp.WithString("date",
			mcp.Description("Day as YYYY-MM-DD. Defaults to today."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Mood string `json:"mood"`
			Date string `json:"date"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.SetMood(ctx, args.Date, args.Mood)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteMoodTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_mood",
		mcp.WithDescription("Delete the mood recorded for a day."),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Day as YYYY-MM-DD."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date, err := request.RequireString("date")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.DeleteMood(ctx, date)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerMonthGridTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"month_grid",
		mcp.WithDescription("Return the 6x7 calendar grid of a month with recorded moods and per-mood counts."),
		mcp.WithString("month",
			mcp.Description("Month as YYYY-MM. Defaults to the current month."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.Month(ctx, request.GetString("month", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerListMoodsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_moods",
		mcp.WithDescription("List the moods that can be recorded."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toJSONResult(svc.Moods())
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
