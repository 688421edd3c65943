package mcp

import (
	"context"
	"encoding/json"
	stderrors "errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/bookmark/internal/errors"
	"github.com/hpungsan/bookmark/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	env *ops.Env
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(env *ops.Env) *Handlers {
	return &Handlers{env: env}
}

// Request types for each tool

// TextRequest represents the arguments for add and classify.
type TextRequest struct {
	Text string `json:"text"`
}

// GetRequest represents the arguments for get.
type GetRequest struct {
	ID *int `json:"id"`
}

// ClearRequest represents the arguments for clear.
type ClearRequest struct {
	Confirm bool `json:"confirm"`
}

// HandleAdd handles the bookmark_add tool.
func (h *Handlers) HandleAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[TextRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.AddInput(ctx, h.env, input.Text)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleClassify handles the bookmark_classify tool.
func (h *Handlers) HandleClassify(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[TextRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Classify(h.env, input.Text)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleList handles the bookmark_list tool.
func (h *Handlers) HandleList(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.List(ctx, h.env)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleGet handles the bookmark_get tool.
func (h *Handlers) HandleGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[GetRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	if input.ID == nil {
		return errorResult(errors.NewInvalidRequest("id is required")), nil
	}

	result, err := ops.GetOutput(ctx, h.env, *input.ID)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleClear handles the bookmark_clear tool. There is no terminal to ask
// on, so the caller's confirm flag is the only consent.
func (h *Handlers) HandleClear(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ClearRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	if !input.Confirm {
		return errorResult(errors.NewUserDeclined("clear")), nil
	}

	result, err := ops.Clear(ctx, h.env, true)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// errorResult creates an MCP error result from an error.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any
	var bmErr *errors.BookmarkError
	if stderrors.As(err, &bmErr) {
		message := bmErr.Message
		if err != error(bmErr) {
			// keep wrapper context
			message = err.Error()
		}
		errorObj := map[string]any{
			"code":    bmErr.Code,
			"message": message,
			"status":  bmErr.Status,
		}
		// Internal details may carry file paths or SQL errors
		if bmErr.Code != errors.ErrInternal && bmErr.Details != nil {
			errorObj["details"] = bmErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    errors.ErrInternal,
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
