package domain

// Tool describes one callable entry in this server's catalog, as exposed
// over the Model Context Protocol and on the admin listing endpoint.
// The catalog is the single source of truth for the tool table: protocol
// registrations are derived from these descriptors at startup.
type Tool struct {
	// Name MUST be unique within the server.
	Name string `json:"name"`

	// Description tells the model when to reach for the tool.
	Description string `json:"description"`

	// Params documents the accepted arguments in declaration order.
	Params []ToolParam `json:"params,omitempty"`
}

// ToolParam is one named argument of a Tool.
type ToolParam struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // "string", "number" or "boolean"
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required,omitempty"`
}
