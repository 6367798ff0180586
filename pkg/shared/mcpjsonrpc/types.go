// Package mcpjsonrpc holds the JSON-RPC 2.0 wire types used to talk to the
// MCP server in integration tests and ad-hoc clients.
//
// Based on JSON-RPC 2.0 Specification: https://www.jsonrpc.org/specification
// and the MCP method surface (initialize, tools/list, tools/call).
package mcpjsonrpc

// Request represents a JSON-RPC request object. Leaving ID unset produces a
// notification.
type Request struct {
	Version string `json:"jsonrpc"`          // MUST be "2.0"
	Method  string `json:"method"`           // Method to be invoked
	Params  any    `json:"params,omitempty"` // Parameters (structured value or array)
	ID      any    `json:"id,omitempty"`     // Request identifier (string, number, or null)
}

// Response represents a JSON-RPC response object.
type Response struct {
	Version string `json:"jsonrpc"`          // MUST be "2.0"
	Result  any    `json:"result,omitempty"` // Required on success
	Error   *Error `json:"error,omitempty"`  // Required on error
	ID      any    `json:"id"`               // Must match request ID (or null if could not be determined)
}

// Error represents a JSON-RPC error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Error codes (subset, based on JSON-RPC spec)
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// CallToolParams is the "params" payload for the "tools/call" method.
type CallToolParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// ToolDescriptor is one entry of a "tools/list" result.
type ToolDescriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	InputSchema map[string]any `json:"inputSchema,omitempty"`
}

// ListToolsResult is the "result" payload of a "tools/list" response.
type ListToolsResult struct {
	Tools []ToolDescriptor `json:"tools"`
}

// ContentPart is one entry of a "tools/call" result's content array.
type ContentPart struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// CallToolResult is the "result" payload of a "tools/call" response.
type CallToolResult struct {
	Content []ContentPart `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}
