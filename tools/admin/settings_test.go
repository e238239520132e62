package admin

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"dss-mcp/tools/internal/stub"
)

func TestGetGeneralSettingsRejectsUnknownKeysWithoutPlatformCall(t *testing.T) {
	dss := &stub.Client{}
	tool := GetGeneralSettings(&stub.Provider{Client: dss})

	result, err := tool.Handler(context.Background(), stub.Request(map[string]any{
		"settings_keys": []string{"sparkSettings", "ldapSettings"},
	}))
	require.NoError(t, err)
	require.True(t, result.IsError)
	require.Contains(t, stub.Text(result), "ldapSettings")
	require.Empty(t, dss.Calls())
}

func TestGetGeneralSettingsFiltersToRequestedKeys(t *testing.T) {
	dss := &stub.Client{
		GetGeneralSettingsFunc: func(_ context.Context) (map[string]any, error) {
			return map[string]any{
				"sparkSettings": map[string]any{"executorMemory": "4g"},
				"security":      map[string]any{},
				"ldapSettings":  map[string]any{"url": "ldap://internal"},
			}, nil
		},
	}

	tool := GetGeneralSettings(&stub.Provider{Client: dss})
	result, err := tool.Handler(context.Background(), stub.Request(map[string]any{
		"settings_keys": []string{"sparkSettings"},
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var settings map[string]any
	require.NoError(t, json.Unmarshal([]byte(stub.Text(result)), &settings))
	require.Len(t, settings, 1)
	require.Contains(t, settings, "sparkSettings")
	require.NotContains(t, settings, "ldapSettings")
}

func TestSetGeneralSettingsMergesIntoCurrent(t *testing.T) {
	var saved map[string]any
	dss := &stub.Client{
		GetGeneralSettingsFunc: func(_ context.Context) (map[string]any, error) {
			return map[string]any{
				"sparkSettings":        map[string]any{"executorMemory": "4g"},
				"maxRunningActivities": float64(10),
				"ldapSettings":         map[string]any{"url": "ldap://internal"},
			}, nil
		},
		SetGeneralSettingsFunc: func(_ context.Context, settings map[string]any) error {
			saved = settings
			return nil
		},
	}

	tool := SetGeneralSettings(&stub.Provider{Client: dss})
	result, err := tool.Handler(context.Background(), stub.Request(map[string]any{
		"settings": map[string]any{"maxRunningActivities": 20},
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	// The provided key is overwritten, everything else passes through intact
	require.Equal(t, float64(20), saved["maxRunningActivities"])
	require.Equal(t, map[string]any{"executorMemory": "4g"}, saved["sparkSettings"])
	require.Contains(t, saved, "ldapSettings")

	var response map[string]any
	require.NoError(t, json.Unmarshal([]byte(stub.Text(result)), &response))
	require.Equal(t, []any{"maxRunningActivities"}, response["updatedKeys"])
}

func TestSetGeneralSettingsRejectsDisallowedKey(t *testing.T) {
	dss := &stub.Client{}
	tool := SetGeneralSettings(&stub.Provider{Client: dss})

	result, err := tool.Handler(context.Background(), stub.Request(map[string]any{
		"settings": map[string]any{"ldapSettings": map[string]any{}},
	}))
	require.NoError(t, err)
	require.True(t, result.IsError)
	require.Contains(t, stub.Text(result), "Invalid settings keys")
	require.Empty(t, dss.Calls())
}
