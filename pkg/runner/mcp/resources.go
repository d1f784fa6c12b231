package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const todayURI = "cal://today"

func registerResources(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		todayURI,
		"Today",
		mcp.WithResourceDescription("Today's date and the grid of the current month."),
		mcp.WithMIMEType("application/json"),
	)
	srv.AddResource(resource, todayHandler(svc))
}

func todayHandler(svc *Service) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		today, err := svc.Today(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, today)
	}
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
