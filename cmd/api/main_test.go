package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El middleware de swagger entra en pánico al arrancar si el archivo no
// existe, así que el spec estático debe venir en el árbol del repositorio.
func TestSwaggerSpecExisteYEsValido(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "docs", "swagger.json"))
	require.NoError(t, err, "docs/swagger.json debe existir en la raíz del repositorio")

	var doc struct {
		Swagger string `json:"swagger"`
		Info    struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))

	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "Supermarket POS API", doc.Info.Title)
	for _, path := range []string{
		"/api/auth/login",
		"/api/sales",
		"/api/purchase-orders/{id}/receive",
		"/api/reports/sales",
		"/api/dashboard",
	} {
		assert.Contains(t, doc.Paths, path)
	}
}
