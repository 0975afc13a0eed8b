package domain

// Ad representa um anúncio retornado por /ncc/ads. O bloco "ad" varia de
// esquema conforme o tipo do anúncio (TEXT_45, RSA_AD, CATALOG_AD...), por
// isso é mantido como mapa e resolvido pelas tabelas de preferência abaixo.
type Ad struct {
	NccAdID      string                 `json:"nccAdId"`
	NccAdgroupID string                 `json:"nccAdgroupId"`
	CustomerID   int64                  `json:"customerId"`
	Type         string                 `json:"type"`
	Status       string                 `json:"status"`
	Creative     map[string]interface{} `json:"ad"`
}

// AdExtension é um material estendido (확장소재) de um grupo de anúncios,
// presente em campanhas de shopping.
type AdExtension struct {
	NccAdExtensionID string                 `json:"nccAdExtensionId"`
	OwnerID          string                 `json:"ownerId"`
	ExtensionType    string                 `json:"type"`
	Status           string                 `json:"status"`
	Extension        map[string]interface{} `json:"adExtension"`
}

// Tabelas de preferência para os campos de criativo. O esquema upstream varia
// por tipo de anúncio; o primeiro candidato não vazio vence. A ordem é
// comportamento observável e está coberta por teste.
var (
	CreativeTitleKeys     = []string{"headline", "title", "name"}
	CreativeDescKeys      = []string{"description", "adDescription", "text"}
	CreativePCURLKeys     = []string{"pcLandingUrl", "pc", "finalUrl"}
	CreativeMobileURLKeys = []string{"mobileLandingUrl", "mobile", "finalUrlMobile"}

	// Texto promocional de materiais estendidos.
	ExtensionTextKeys = []string{"promoText", "addPromoText", "subLinkName", "pcText"}
)

// ResolveCreativeField percorre os candidatos em ordem e retorna o primeiro
// valor não vazio. Valores aninhados no formato {"final": "..."} (usado pelos
// campos de landing page) também são aceitos.
func ResolveCreativeField(creative map[string]interface{}, candidates []string) string {
	if creative == nil {
		return ""
	}

	for _, key := range candidates {
		raw, ok := creative[key]
		if !ok || raw == nil {
			continue
		}

		switch v := raw.(type) {
		case string:
			if v != "" {
				return v
			}
		case map[string]interface{}:
			if final, ok := v["final"].(string); ok && final != "" {
				return final
			}
		}
	}

	return ""
}

// CreativeText concatena título e descrição em um texto único de até 500
// caracteres (seguro para runes multibyte).
func CreativeText(title, desc string) string {
	text := title
	if desc != "" {
		if text != "" {
			text += " | "
		}
		text += desc
	}

	runes := []rune(text)
	if len(runes) > 500 {
		return string(runes[:500])
	}
	return text
}
