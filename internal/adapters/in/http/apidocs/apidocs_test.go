package apidocs_test

import (
	"testing"

	"fooddelivery/internal/adapters/in/http/apidocs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestLoad(t *testing.T) {
	doc, err := apidocs.Load()
	require.NoError(t, err)

	for _, path := range []string{"/api/v1/orders", "/api/v1/orders/{id}", "/api/v1/orders/{id}/status"} {
		assert.NotNil(t, doc.Paths.Value(path), path)
	}
	assert.Equal(t, "createOrder", doc.Paths.Value("/api/v1/orders").Post.OperationID)
	assert.Equal(t, "updateOrderStatus", doc.Paths.Value("/api/v1/orders/{id}/status").Put.OperationID)
}

func TestLoad_ReturnsIndependentCopies(t *testing.T) {
	first, err := apidocs.Load()
	require.NoError(t, err)
	first.Servers = nil

	second, err := apidocs.Load()
	require.NoError(t, err)
	assert.NotEmpty(t, second.Servers)
}

func TestRegister(t *testing.T) {
	doc, err := apidocs.Load()
	require.NoError(t, err)

	require.NoError(t, apidocs.Register(doc))
	require.NoError(t, apidocs.Register(doc), "second registration is a no-op")

	raw, err := swag.ReadDoc()
	require.NoError(t, err)
	assert.Contains(t, raw, `"openapi":"3.0.3"`)
	assert.Contains(t, raw, "/api/v1/orders/{id}/status")
}
