package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerMoodsResource(srv, svc)
	registerMonthTemplate(srv, svc)
}

func registerMoodsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"moodcal://moods",
		"Moods",
		mcp.WithResourceDescription("The moods that can be recorded, with their emoji."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return encodeResourceJSON(request.Params.URI, map[string]any{"moods": svc.Moods()})
	})
}

func registerMonthTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"moodcal://months/{month}",
		"Month",
		mcp.WithTemplateDescription("Calendar grid and mood counts for a YYYY-MM month."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		month := ""
		switch v := request.Params.Arguments["month"].(type) {
		case string:
			month = v
		case []string:
			if len(v) > 0 {
				month = v[0]
			}
		}
		dto, err := svc.Month(ctx, month)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, dto)
	})
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
