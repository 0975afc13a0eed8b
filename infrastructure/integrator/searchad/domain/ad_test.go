package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCreativeField(t *testing.T) {
	tests := []struct {
		name     string
		creative map[string]interface{}
		keys     []string
		expected string
	}{
		{
			name:     "primeiro candidato presente vence",
			creative: map[string]interface{}{"headline": "Título A", "title": "Título B"},
			keys:     CreativeTitleKeys,
			expected: "Título A",
		},
		{
			name:     "cai para o próximo candidato quando vazio",
			creative: map[string]interface{}{"headline": "", "title": "Título B"},
			keys:     CreativeTitleKeys,
			expected: "Título B",
		},
		{
			name:     "valor aninhado no formato final",
			creative: map[string]interface{}{"pc": map[string]interface{}{"final": "https://loja.example.com"}},
			keys:     CreativePCURLKeys,
			expected: "https://loja.example.com",
		},
		{
			name:     "mapa nulo",
			creative: nil,
			keys:     CreativeTitleKeys,
			expected: "",
		},
		{
			name:     "nenhum candidato presente",
			creative: map[string]interface{}{"outro": "valor"},
			keys:     CreativeDescKeys,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveCreativeField(tt.creative, tt.keys))
		})
	}
}

func TestCreativeText(t *testing.T) {
	assert.Equal(t, "Título | Descrição", CreativeText("Título", "Descrição"))
	assert.Equal(t, "Título", CreativeText("Título", ""))
	assert.Equal(t, "Descrição", CreativeText("", "Descrição"))
	assert.Equal(t, "", CreativeText("", ""))
}

func TestCreativeText_TruncaEm500Runes(t *testing.T) {
	// Texto multibyte: truncar por runes, nunca por bytes
	long := strings.Repeat("광", 600)
	text := CreativeText(long, "desc")

	runes := []rune(text)
	assert.Len(t, runes, 500)
	assert.Equal(t, "광", string(runes[499]))
}

func TestBizmoneyTotal(t *testing.T) {
	b := Bizmoney{PayMoney: 100, FreeMoney: 50, CouponMoney: 30, PayCouponMoney: 20}
	assert.Equal(t, int64(200), b.Total())
}
