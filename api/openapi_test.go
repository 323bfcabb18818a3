package api

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Load_DocumentIsValid(t *testing.T) {
	doc, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Dispatch", doc.Info.Title)
	assert.NotNil(t, doc.Paths.Find("/api/v1/orders"))
	assert.NotNil(t, doc.Paths.Find("/api/v1/delivery-persons/{id}"))
	assert.NotNil(t, doc.Paths.Find("/api/v1/assignments/{id}/status"))
}

func Test_JSON_RendersValidJSON(t *testing.T) {
	raw, err := JSON(context.Background())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "3.0.3", decoded["openapi"])
}
