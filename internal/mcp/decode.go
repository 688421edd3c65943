package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// decode converts a tool call's arguments into the handler's request type
// by round-tripping them through JSON. Missing arguments leave zero values;
// arguments of the wrong JSON type fail.
func decode[T any](req mcp.CallToolRequest) (T, error) {
	var args T
	raw, err := json.Marshal(req.GetArguments())
	if err != nil {
		return args, fmt.Errorf("encode %s arguments: %w", req.Params.Name, err)
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return args, fmt.Errorf("invalid %s arguments: %w", req.Params.Name, err)
	}
	return args, nil
}
