package searchadclient

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSign(t *testing.T) {
	signature := Sign("GET", "/ncc/campaigns", "1700000000000", "segredo")

	// SHA-256 produz 32 bytes, sempre em base64 padrão
	decoded, err := base64.StdEncoding.DecodeString(signature)
	require.NoError(t, err)
	assert.Len(t, decoded, 32)

	// Determinística para a mesma entrada
	assert.Equal(t, signature, Sign("GET", "/ncc/campaigns", "1700000000000", "segredo"))
}

func TestSign_SensibilidadeDaMensagem(t *testing.T) {
	base := Sign("GET", "/ncc/campaigns", "1700000000000", "segredo")

	tests := []struct {
		name      string
		method    string
		path      string
		timestamp string
		secret    string
	}{
		{"método diferente", "POST", "/ncc/campaigns", "1700000000000", "segredo"},
		{"path diferente", "GET", "/ncc/adgroups", "1700000000000", "segredo"},
		{"timestamp diferente", "GET", "/ncc/campaigns", "1700000000001", "segredo"},
		{"segredo diferente", "GET", "/ncc/campaigns", "1700000000000", "outro"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, base, Sign(tt.method, tt.path, tt.timestamp, tt.secret))
		})
	}
}
