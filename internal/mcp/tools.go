package mcp

import "github.com/mark3labs/mcp-go/mcp"

var addToolDef = mcp.NewTool("bookmark_add",
	mcp.WithDescription("Classify text and store it as a bookmark. "+
		"The first matching interpreter (link, url, email, path, text) decides its kind."),
	mcp.WithString("text",
		mcp.Required(),
		mcp.Description("Text to bookmark, stored exactly as given"),
	),
)

var classifyToolDef = mcp.NewTool("bookmark_classify",
	mcp.WithDescription("Report which interpreter would accept text and its short form, without storing anything."),
	mcp.WithReadOnlyHintAnnotation(true),
	mcp.WithString("text",
		mcp.Required(),
		mcp.Description("Text to classify"),
	),
)

var listToolDef = mcp.NewTool("bookmark_list",
	mcp.WithDescription("List all bookmarks in insertion order. "+
		"Each item's id is its zero-based position, usable with bookmark_get."),
	mcp.WithReadOnlyHintAnnotation(true),
)

var getToolDef = mcp.NewTool("bookmark_get",
	mcp.WithDescription("Get the full text of the bookmark at a listing position. Does not touch the clipboard."),
	mcp.WithReadOnlyHintAnnotation(true),
	mcp.WithNumber("id",
		mcp.Required(),
		mcp.Description("Zero-based position from bookmark_list"),
	),
)

var clearToolDef = mcp.NewTool("bookmark_clear",
	mcp.WithDescription("Permanently delete every bookmark. Irreversible; requires confirm: true."),
	mcp.WithDestructiveHintAnnotation(true),
	mcp.WithBoolean("confirm",
		mcp.Required(),
		mcp.Description("Must be true to clear"),
	),
)
