package websearch

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
)

func TestHandleWebSearchRequiresQuery(t *testing.T) {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = map[string]interface{}{}

	_, err := HandleWebSearch(context.Background(), request)
	assert.Error(t, err)

	request.Params.Arguments = map[string]interface{}{"query": "   "}
	_, err = HandleWebSearch(context.Background(), request)
	assert.Error(t, err)
}
