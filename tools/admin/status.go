// Package admin defines the MCP tools restricted to DSS administrators.
package admin

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

// GetLicensingStatus retrieves the licensing status of the instance
func GetLicensingStatus(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("admin-get-licensing-status"),
		Description: "Get the licensing status of the instance. Requires an API key with " +
			"admin rights.",
		Annotations: i.ToolAnnotations("Get licensing status", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]any{},
		},
	}

	handler := func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		status, err := dss.GetLicensingStatus(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get licensing status: %v", err)), nil
		}

		return i.RespondJSON(status)
	}

	return i.Tool{Tool: tool, Handler: handler}
}

// GetSanityCheckCodes retrieves the codes the instance sanity check can emit
func GetSanityCheckCodes(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("admin-get-sanity-check-codes"),
		Description: "Get the list of codes that can be generated by the instance sanity " +
			"check. Requires an API key with admin rights.",
		Annotations: i.ToolAnnotations("Get sanity check codes", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]any{},
		},
	}

	handler := func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		codes, err := dss.GetSanityCheckCodes(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get sanity check codes: %v", err)), nil
		}

		return i.RespondJSON(codes)
	}

	return i.Tool{Tool: tool, Handler: handler}
}

// GetDataQualityStatus retrieves the data quality status per monitored project
func GetDataQualityStatus(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("admin-get-data-quality-status"),
		Description: "Get the status of data-quality monitored projects, keyed by project " +
			"key, including the count of monitored datasets in Ok, Warning, Error and Empty " +
			"statuses.",
		Annotations: i.ToolAnnotations("Get data quality status", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]any{},
		},
	}

	handler := func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		status, err := dss.GetDataQualityStatus(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get data quality status: %v", err)), nil
		}

		return i.RespondJSON(status)
	}

	return i.Tool{Tool: tool, Handler: handler}
}
