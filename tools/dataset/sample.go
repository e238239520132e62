package dataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

const (
	defaultSampleRows = 50
	maxSampleRows     = 1000
)

type sampleArgs struct {
	ProjectKey  string `json:"project_key"`
	DatasetName string `json:"dataset_name"`
	Rows        int    `json:"rows,omitempty"`
	Partitions  string `json:"partitions,omitempty"`
}

// Sample retrieves the first rows of a dataset as column-keyed records
func Sample(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("dataset-sample"),
		Description: "Get sample data from a dataset: the schema column names plus rows as " +
			"dicts keyed by column name. At most 1000 rows are returned regardless of the " +
			"requested count; for partitioned datasets an optional comma-separated partitions " +
			"spec restricts the sample.",
		Annotations: i.ToolAnnotations("Sample dataset", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_key": map[string]any{
					"type":        "string",
					"description": "The project key of the project containing the dataset",
				},
				"dataset_name": map[string]any{
					"type":        "string",
					"description": "The name of the dataset to sample",
				},
				"rows": map[string]any{
					"type":        "integer",
					"description": "Number of rows to retrieve (defaults to 50, capped at 1000)",
				},
				"partitions": map[string]any{
					"type":        "string",
					"description": "Comma-separated list of partition identifiers to sample from",
				},
			},
			Required: []string{"project_key", "dataset_name"},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args sampleArgs) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		rows := args.Rows
		if rows <= 0 {
			rows = defaultSampleRows
		}
		if rows > maxSampleRows {
			rows = maxSampleRows
		}

		var partitions []string
		for _, p := range strings.Split(args.Partitions, ",") {
			if p = strings.TrimSpace(p); p != "" {
				partitions = append(partitions, p)
			}
		}

		sample, err := dss.SampleDataset(ctx, args.ProjectKey, args.DatasetName, rows, partitions)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to sample dataset: %v", err)), nil
		}

		records := make([]map[string]any, 0, len(sample.Rows))
		for _, row := range sample.Rows {
			record := make(map[string]any, len(sample.Columns))
			for col, name := range sample.Columns {
				if col < len(row) {
					record[name] = row[col]
				}
			}
			records = append(records, record)
		}

		return i.RespondJSON(map[string]any{
			"project_key":        args.ProjectKey,
			"dataset_name":       args.DatasetName,
			"num_rows_requested": rows,
			"num_rows_returned":  len(records),
			"columns":            sample.Columns,
			"rows":               records,
		})
	})

	return i.Tool{Tool: tool, Handler: handler}
}
