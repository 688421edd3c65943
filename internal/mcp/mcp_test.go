package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/bookmark/internal/bookmark"
	"github.com/hpungsan/bookmark/internal/config"
	"github.com/hpungsan/bookmark/internal/db"
	"github.com/hpungsan/bookmark/internal/errors"
	"github.com/hpungsan/bookmark/internal/ops"
)

// clipboardSpy records clipboard writes; MCP handlers must never make any.
type clipboardSpy struct {
	writes []string
}

func (c *clipboardSpy) Clipboard(context.Context) (string, bool) { return "", false }
func (c *clipboardSpy) Selection(context.Context) (string, bool) { return "", false }
func (c *clipboardSpy) WriteClipboard(_ context.Context, text string) error {
	c.writes = append(c.writes, text)
	return nil
}

// refusingPrompter fails the test if a handler tries to prompt.
type refusingPrompter struct {
	t *testing.T
}

func (p refusingPrompter) Confirm(string) bool {
	p.t.Error("MCP handler prompted for confirmation")
	return false
}

func (p refusingPrompter) SelectBookmark(context.Context, []*bookmark.Bookmark) (*bookmark.Bookmark, bool, error) {
	p.t.Error("MCP handler opened the picker")
	return nil, false, nil
}

// testSetup creates a temporary database and environment for testing.
func testSetup(t *testing.T) (*ops.Env, *config.Config, *clipboardSpy) {
	t.Helper()

	database, err := db.Init(t.TempDir())
	if err != nil {
		t.Fatalf("failed to init db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	spy := &clipboardSpy{}
	env := &ops.Env{
		OS:       spy,
		Storage:  db.NewStore(database),
		Prompter: refusingPrompter{t: t},
	}
	return env, config.DefaultConfig(), spy
}

// makeRequest creates a CallToolRequest with the given arguments.
func makeRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

// TestHandleAdd tests the add handler.
func TestHandleAdd(t *testing.T) {
	env, _, _ := testSetup(t)
	h := NewHandlers(env)
	ctx := context.Background()

	tests := []struct {
		name      string
		args      map[string]any
		wantError bool
		errorCode string
		wantKind  string
	}{
		{
			name:     "url",
			args:     map[string]any{"text": "https://example.com/path"},
			wantKind: "url",
		},
		{
			name:     "markdown link",
			args:     map[string]any{"text": "[Go](https://go.dev)"},
			wantKind: "link",
		},
		{
			name:     "plain text",
			args:     map[string]any{"text": "remember the milk"},
			wantKind: "text",
		},
		{
			name:      "missing text",
			args:      map[string]any{},
			wantError: true,
			errorCode: "NO_CONTENT",
		},
		{
			name:      "whitespace only",
			args:      map[string]any{"text": "  \n"},
			wantError: true,
			errorCode: "NO_CONTENT",
		},
		{
			name:      "wrong type",
			args:      map[string]any{"text": 42},
			wantError: true,
			errorCode: "INVALID_REQUEST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := h.HandleAdd(ctx, makeRequest(tt.args))
			if err != nil {
				t.Fatalf("handler returned error: %v", err)
			}

			if tt.wantError {
				if !result.IsError {
					t.Errorf("expected error result, got success")
				}
				assertErrorCode(t, result, tt.errorCode)
				return
			}

			output := parseOutput(t, result)
			if output["kind"] != tt.wantKind {
				t.Errorf("kind = %v, want %s", output["kind"], tt.wantKind)
			}
			if ulid, _ := output["ulid"].(string); len(ulid) != 26 {
				t.Errorf("ulid = %v, want 26-char ULID", output["ulid"])
			}
		})
	}
}

func TestHandleClassify(t *testing.T) {
	env, _, _ := testSetup(t)
	h := NewHandlers(env)
	ctx := context.Background()

	result, err := h.HandleClassify(ctx, makeRequest(map[string]any{"text": "./notes/todo.md"}))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	output := parseOutput(t, result)
	if output["interpreter"] != "path" {
		t.Errorf("interpreter = %v, want path", output["interpreter"])
	}

	// classify never stores
	listResult, _ := h.HandleList(ctx, makeRequest(nil))
	if total := parseOutput(t, listResult)["total"]; total != float64(0) {
		t.Errorf("total = %v after classify, want 0", total)
	}
}

func TestHandleListAndGet(t *testing.T) {
	env, _, spy := testSetup(t)
	h := NewHandlers(env)
	ctx := context.Background()

	for _, text := range []string{"https://example.com/path", "/usr/local/bin"} {
		if _, err := ops.AddInput(ctx, env, text); err != nil {
			t.Fatalf("AddInput(%q) failed: %v", text, err)
		}
	}

	result, err := h.HandleList(ctx, makeRequest(nil))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	output := parseOutput(t, result)
	if output["total"] != float64(2) {
		t.Fatalf("total = %v, want 2", output["total"])
	}
	items := output["items"].([]any)
	first := items[0].(map[string]any)
	if first["id"] != float64(0) || first["short"] != "example.com/path" {
		t.Errorf("items[0] = %v", first)
	}

	t.Run("get existing", func(t *testing.T) {
		result, err := h.HandleGet(ctx, makeRequest(map[string]any{"id": 1}))
		if err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		output := parseOutput(t, result)
		if output["text"] != "/usr/local/bin" {
			t.Errorf("text = %v, want /usr/local/bin", output["text"])
		}
		if len(spy.writes) != 0 {
			t.Errorf("get wrote to the clipboard: %v", spy.writes)
		}
	})

	t.Run("get past the end", func(t *testing.T) {
		result, _ := h.HandleGet(ctx, makeRequest(map[string]any{"id": 5}))
		assertErrorCode(t, result, "NOT_FOUND")
	})

	t.Run("get without id", func(t *testing.T) {
		result, _ := h.HandleGet(ctx, makeRequest(map[string]any{}))
		assertErrorCode(t, result, "INVALID_REQUEST")
	})

	t.Run("get negative id", func(t *testing.T) {
		result, _ := h.HandleGet(ctx, makeRequest(map[string]any{"id": -1}))
		assertErrorCode(t, result, "INVALID_REQUEST")
	})
}

func TestHandleClear(t *testing.T) {
	env, _, _ := testSetup(t)
	h := NewHandlers(env)
	ctx := context.Background()

	if _, err := ops.AddInput(ctx, env, "one"); err != nil {
		t.Fatalf("AddInput failed: %v", err)
	}

	t.Run("without confirm", func(t *testing.T) {
		result, _ := h.HandleClear(ctx, makeRequest(map[string]any{"confirm": false}))
		assertErrorCode(t, result, "USER_DECLINED")

		listResult, _ := h.HandleList(ctx, makeRequest(nil))
		if total := parseOutput(t, listResult)["total"]; total != float64(1) {
			t.Errorf("total = %v after declined clear, want 1", total)
		}
	})

	t.Run("with confirm", func(t *testing.T) {
		result, err := h.HandleClear(ctx, makeRequest(map[string]any{"confirm": true}))
		if err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		output := parseOutput(t, result)
		if output["cleared"] != float64(1) {
			t.Errorf("cleared = %v, want 1", output["cleared"])
		}
	})
}

func TestServerRegistration(t *testing.T) {
	env, cfg, _ := testSetup(t)

	s := NewServer(env, cfg, "test")
	tools := s.ListTools()

	expectedTools := []string{
		"bookmark_add",
		"bookmark_classify",
		"bookmark_list",
		"bookmark_get",
		"bookmark_clear",
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("registered tool count = %d, want %d", len(tools), len(expectedTools))
	}
	for _, name := range expectedTools {
		if _, ok := tools[name]; !ok {
			t.Errorf("missing registered tool: %s", name)
		}
	}
}

func TestServerRegistration_WithDisabledTools(t *testing.T) {
	env, cfg, _ := testSetup(t)

	cfg.DisabledTools = []string{"bookmark_clear", "bookmark_clear"}
	s := NewServer(env, cfg, "test")
	tools := s.ListTools()

	if len(tools) != 4 {
		t.Errorf("registered tool count = %d, want 4", len(tools))
	}
	if _, ok := tools["bookmark_clear"]; ok {
		t.Error("disabled tool 'bookmark_clear' should not be registered")
	}
}

func TestServerRegistration_AllToolsDisabled(t *testing.T) {
	env, cfg, _ := testSetup(t)

	cfg.DisabledTools = AllToolNames()
	s := NewServer(env, cfg, "test")

	if tools := s.ListTools(); len(tools) != 0 {
		t.Errorf("registered tool count = %d, want 0 (all disabled)", len(tools))
	}
}

func TestValidateDisabledTools(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		wantLen int
	}{
		{"all valid", []string{"bookmark_clear", "bookmark_add"}, 0},
		{"one unknown", []string{"bookmark_clear", "bookmark_export"}, 1},
		{"all unknown", []string{"foo", "bar", "baz"}, 3},
		{"empty list", []string{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unknown := ValidateDisabledTools(tt.input)
			if len(unknown) != tt.wantLen {
				t.Errorf("ValidateDisabledTools() returned %d unknown, want %d", len(unknown), tt.wantLen)
			}
		})
	}
}

func TestAllToolNames(t *testing.T) {
	names := AllToolNames()
	if len(names) != 5 {
		t.Errorf("AllToolNames() returned %d names, want 5", len(names))
	}
	if unknown := ValidateDisabledTools(names); len(unknown) != 0 {
		t.Errorf("AllToolNames() returned invalid names: %v", unknown)
	}
}

func TestErrorResult_InternalDoesNotExposeDetails(t *testing.T) {
	internal := errors.NewInternal(fmt.Errorf("sql error: open /tmp/secret.db: permission denied"))
	internal.Details = map[string]any{"path": "/tmp/secret.db"}

	errObj := errorObject(t, errorResult(internal))
	if errObj["code"] != string(errors.ErrInternal) {
		t.Fatalf("code=%v, want %v", errObj["code"], errors.ErrInternal)
	}
	if _, ok := errObj["details"]; ok {
		t.Fatal("expected INTERNAL errors to omit details")
	}
}

func TestErrorResult_WrappedErrorPreservesContext(t *testing.T) {
	wrapped := fmt.Errorf("select: %w", errors.NewNotFound(5))

	errObj := errorObject(t, errorResult(wrapped))
	if errObj["code"] != string(errors.ErrNotFound) {
		t.Errorf("code=%v, want %v", errObj["code"], errors.ErrNotFound)
	}
	if msg := errObj["message"].(string); !strings.HasPrefix(msg, "select:") {
		t.Errorf("message should keep wrapper context, got: %s", msg)
	}
}

func TestErrorResult_NonInternalIncludesDetails(t *testing.T) {
	errObj := errorObject(t, errorResult(errors.NewNotFound(3)))
	if errObj["code"] != string(errors.ErrNotFound) {
		t.Fatalf("code=%v, want %v", errObj["code"], errors.ErrNotFound)
	}
	if _, ok := errObj["details"]; !ok {
		t.Fatal("expected non-INTERNAL errors to include details when present")
	}
}

func TestErrorResult_PlainError(t *testing.T) {
	errObj := errorObject(t, errorResult(fmt.Errorf("boom")))
	if errObj["code"] != string(errors.ErrInternal) {
		t.Errorf("code=%v, want INTERNAL", errObj["code"])
	}
	if errObj["message"] == "boom" {
		t.Error("plain errors should not leak their message")
	}
}

// Helper functions

// parseOutput extracts and unmarshals the JSON output from an MCP result.
func parseOutput(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()
	if result.IsError {
		t.Fatalf("expected success, got error: %v", extractErrorMessage(result))
	}
	var output map[string]any
	if err := json.Unmarshal([]byte(result.Content[0].(mcp.TextContent).Text), &output); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	return output
}

func errorObject(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()
	if !result.IsError {
		t.Fatal("expected IsError=true")
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(result.Content[0].(mcp.TextContent).Text), &payload); err != nil {
		t.Fatalf("failed to unmarshal error payload: %v", err)
	}
	return payload["error"].(map[string]any)
}

func assertErrorCode(t *testing.T, result *mcp.CallToolResult, expectedCode string) {
	t.Helper()

	if !result.IsError {
		t.Errorf("expected error %s, got success", expectedCode)
		return
	}
	if code := errorObject(t, result)["code"]; code != expectedCode {
		t.Errorf("got error code %q, want %q", code, expectedCode)
	}
}

func extractErrorMessage(result *mcp.CallToolResult) string {
	if len(result.Content) == 0 {
		return "<no content>"
	}

	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		return "<not text content>"
	}

	return text.Text
}

func TestDecode(t *testing.T) {
	req := makeRequest(map[string]any{"id": 3})
	req.Params.Name = "bookmark_get"

	got, err := decode[GetRequest](req)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got.ID == nil || *got.ID != 3 {
		t.Errorf("ID = %v, want 3", got.ID)
	}

	missing, err := decode[GetRequest](makeRequest(nil))
	if err != nil || missing.ID != nil {
		t.Errorf("decode without arguments = %+v, %v; want zero value", missing, err)
	}

	req = makeRequest(map[string]any{"id": "three"})
	req.Params.Name = "bookmark_get"
	_, err = decode[GetRequest](req)
	if err == nil || !strings.Contains(err.Error(), "invalid bookmark_get arguments") {
		t.Errorf("decode wrong type error = %v", err)
	}
}
