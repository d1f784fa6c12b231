package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	srv.AddTool(monthGridTool(), monthGridHandler(svc))
	srv.AddTool(advanceMonthTool(), advanceMonthHandler(svc))
}

func monthGridTool() mcp.Tool {
	return mcp.NewTool(
		"month_grid",
		mcp.WithDescription("Compute the calendar grid of a month: leading blank cells, day count and today's cell."),
		mcp.WithNumber("year",
			mcp.Required(),
			mcp.Description("Four digit year, for example 2024."),
		),
		mcp.WithNumber("month",
			mcp.Required(),
			mcp.Description("Zero based month, 0 is January and 11 is December."),
		),
		mcp.WithString("week_start",
			mcp.Description("Optional first column of the week such as sunday or monday."),
		),
	)
}

func monthGridHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Year      *int   `json:"year"`
			Month     *int   `json:"month"`
			WeekStart string `json:"week_start"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.Year == nil || args.Month == nil {
			return mcp.NewToolResultError("year and month are required"), nil
		}

		doc, err := svc.MonthGrid(ctx, *args.Year, *args.Month, args.WeekStart)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(doc)
	}
}

func advanceMonthTool() mcp.Tool {
	return mcp.NewTool(
		"advance_month",
		mcp.WithDescription("Step a month forward or backward and return the resulting grid."),
		mcp.WithNumber("year",
			mcp.Required(),
			mcp.Description("Year of the starting month."),
		),
		mcp.WithNumber("month",
			mcp.Required(),
			mcp.Description("Zero based starting month."),
		),
		mcp.WithNumber("delta",
			mcp.Required(),
			mcp.Description("Months to move; negative values go back."),
		),
		mcp.WithString("week_start",
			mcp.Description("Optional first column of the week such as sunday or monday."),
		),
	)
}

func advanceMonthHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Year      *int   `json:"year"`
			Month     *int   `json:"month"`
			Delta     *int   `json:"delta"`
			WeekStart string `json:"week_start"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.Year == nil || args.Month == nil || args.Delta == nil {
			return mcp.NewToolResultError("year, month and delta are required"), nil
		}

		doc, err := svc.AdvanceMonth(ctx, *args.Year, *args.Month, *args.Delta, args.WeekStart)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(doc)
	}
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
