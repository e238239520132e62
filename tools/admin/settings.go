package admin

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

// Only a curated subset of the general settings is exposed through tools so
// an agent cannot touch unrelated instance configuration.
var allowedGeneralSettingsKeys = []string{
	"sparkSettings",
	"containerSettings",
	"defaultK8sClusterId",
	"security",
	"cgroupSettings",
	"maxRunningActivitiesPerJob",
	"maxRunningActivities",
	"maxRunningActivitiesPerKey",
}

func isAllowedSettingsKey(key string) bool {
	for _, allowed := range allowedGeneralSettingsKeys {
		if key == allowed {
			return true
		}
	}
	return false
}

type getSettingsArgs struct {
	SettingsKeys []string `json:"settings_keys,omitempty"`
}

type setSettingsArgs struct {
	Settings map[string]any `json:"settings"`
}

// GetGeneralSettings retrieves the exposed subset of the instance settings
func GetGeneralSettings(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("admin-get-general-settings"),
		Description: "Get the general settings of the instance. Requires an API key with " +
			"admin rights. Only the following keys can be retrieved: sparkSettings, " +
			"containerSettings, defaultK8sClusterId, security, cgroupSettings, " +
			"maxRunningActivitiesPerJob, maxRunningActivities, maxRunningActivitiesPerKey. " +
			"When settings_keys is omitted, all allowed keys are returned.",
		Annotations: i.ToolAnnotations("Get general settings", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"settings_keys": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "The settings keys to retrieve (defaults to all allowed keys)",
				},
			},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args getSettingsArgs) (*mcp.CallToolResult, error) {
		keys := args.SettingsKeys
		if len(keys) == 0 {
			keys = allowedGeneralSettingsKeys
		}

		var invalid []string
		for _, key := range keys {
			if !isAllowedSettingsKey(key) {
				invalid = append(invalid, key)
			}
		}
		if len(invalid) > 0 {
			return mcp.NewToolResultError(fmt.Sprintf(
				"Invalid settings keys: %v. Allowed keys are: %v", invalid, allowedGeneralSettingsKeys)), nil
		}

		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		all, err := dss.GetGeneralSettings(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get general settings: %v", err)), nil
		}

		result := map[string]any{}
		for _, key := range keys {
			if value, ok := all[key]; ok {
				result[key] = value
			}
		}

		return i.RespondJSON(result)
	})

	return i.Tool{Tool: tool, Handler: handler}
}

// SetGeneralSettings updates the exposed subset of the instance settings
func SetGeneralSettings(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("admin-set-general-settings"),
		Description: "Set general settings of the instance. Requires an API key with admin " +
			"rights. Usage: first call admin-get-general-settings for the keys to modify, " +
			"change the returned values, then pass the updated dict here; only the keys " +
			"present in the dict are updated. Allowed keys: sparkSettings, containerSettings, " +
			"defaultK8sClusterId, security, cgroupSettings, maxRunningActivitiesPerJob, " +
			"maxRunningActivities, maxRunningActivitiesPerKey. CRITICAL risk operation: these " +
			"settings affect the whole instance.",
		Annotations: i.ToolAnnotations("Set general settings", i.Idempotent|i.OpenWorld),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"settings": map[string]any{
					"type":        "object",
					"description": "The settings to update, keyed by allowed settings key",
				},
			},
			Required: []string{"settings"},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args setSettingsArgs) (*mcp.CallToolResult, error) {
		var invalid []string
		for key := range args.Settings {
			if !isAllowedSettingsKey(key) {
				invalid = append(invalid, key)
			}
		}
		if len(invalid) > 0 {
			return mcp.NewToolResultError(fmt.Sprintf(
				"Invalid settings keys: %v. Allowed keys are: %v", invalid, allowedGeneralSettingsKeys)), nil
		}

		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		// The settings endpoint replaces the whole object, so the current
		// settings are fetched and only the provided keys overwritten.
		current, err := dss.GetGeneralSettings(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get general settings: %v", err)), nil
		}

		updated := make([]string, 0, len(args.Settings))
		for key, value := range args.Settings {
			current[key] = value
			updated = append(updated, key)
		}

		if err := dss.SetGeneralSettings(ctx, current); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to set general settings: %v", err)), nil
		}

		return i.RespondJSON(map[string]any{
			"message":     "General settings updated successfully",
			"updatedKeys": updated,
		})
	})

	return i.Tool{Tool: tool, Handler: handler}
}
