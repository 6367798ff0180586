package memrepo

import (
	"context"
	"log/slog"
	"sync"

	"mlb-statsapi-mcp/internal/domain"
	"mlb-statsapi-mcp/internal/usecase"
)

// InMemoryToolCatalog is the registration table behind the /tools listing.
// It is populated once during startup; List returns tools in registration
// order.
type InMemoryToolCatalog struct {
	mu     sync.RWMutex
	tools  map[string]domain.Tool
	order  []string
	logger *slog.Logger
}

// NewInMemoryToolCatalog creates an empty catalog.
func NewInMemoryToolCatalog(logger *slog.Logger) *InMemoryToolCatalog {
	return &InMemoryToolCatalog{
		tools:  make(map[string]domain.Tool),
		logger: logger.With("component", "tool_catalog"),
	}
}

// Save stores the given tool definitions. Re-registering a name overwrites
// the definition but keeps its original position.
func (c *InMemoryToolCatalog) Save(ctx context.Context, tools []domain.Tool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, tool := range tools {
		if tool.Name == "" {
			c.logger.Warn("Skipping tool with empty name", slog.Int("index", i))
			continue
		}
		if _, exists := c.tools[tool.Name]; !exists {
			c.order = append(c.order, tool.Name)
		}
		c.tools[tool.Name] = tool
	}
	c.logger.Info("Saved tool definitions", slog.Int("total_tools", len(c.tools)))
	return nil
}

// List returns all registered tools in registration order.
func (c *InMemoryToolCatalog) List(ctx context.Context) ([]domain.Tool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	list := make([]domain.Tool, 0, len(c.order))
	for _, name := range c.order {
		list = append(list, c.tools[name])
	}
	c.logger.Debug("Listed tools from catalog", slog.Int("count", len(list)))
	return list, nil
}

// FindToolByName retrieves a tool definition by its name.
func (c *InMemoryToolCatalog) FindToolByName(ctx context.Context, name string) (*domain.Tool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tool, ok := c.tools[name]
	if !ok {
		c.logger.Warn("Tool definition not found", slog.String("tool_name", name))
		return nil, usecase.ErrToolNotFound
	}
	return &tool, nil
}
