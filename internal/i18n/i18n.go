// Package i18n holds the display-string catalogs for the presentation
// layer. The bundle is an explicit value handed to its consumers, not a
// mutable global.
package i18n

type Catalog map[string]string

var catalogs = map[string]Catalog{
	"en": {
		"title":      "Beverage Tracker",
		"today":      "Today",
		"thisWeek":   "This Week",
		"thisMonth":  "This Month",
		"thisYear":   "This Year",
		"statistics": "Statistics",
		"count":      "Count",
		"average":    "Average",
		"total":      "Total",
		"liters":     "Liters",
		"beverages":  "Beverages",
		"logs":       "Logs",
		"noData":     "No data available",
		"cannotDelete": "Cannot Delete: Default beverages cannot be removed.",
		"saveFailed":   "Failed to save data",
		"importFailed": "Failed to import data",
		"exportFailed": "Failed to export CSV file",
	},
	"pt": {
		"title":      "Rastreador de Bebidas",
		"today":      "Hoje",
		"thisWeek":   "Esta Semana",
		"thisMonth":  "Este Mês",
		"thisYear":   "Este Ano",
		"statistics": "Estatísticas",
		"count":      "Contagem",
		"average":    "Média",
		"total":      "Total",
		"liters":     "Litros",
		"beverages":  "Bebidas",
		"logs":       "Registos",
		"noData":     "Sem dados disponíveis",
		"cannotDelete": "Não é possível eliminar: as bebidas padrão não podem ser removidas.",
		"saveFailed":   "Falha ao guardar os dados",
		"importFailed": "Falha ao importar os dados",
		"exportFailed": "Falha ao exportar o ficheiro CSV",
	},
}

// Bundle resolves language codes to catalogs, falling back to the
// configured default for unknown codes.
type Bundle struct {
	fallback string
}

func NewBundle(defaultLang string) *Bundle {
	if _, ok := catalogs[defaultLang]; !ok {
		defaultLang = "en"
	}
	return &Bundle{fallback: defaultLang}
}

func (b *Bundle) Lang(code string) Catalog {
	if c, ok := catalogs[code]; ok {
		return c
	}
	return catalogs[b.fallback]
}

func (b *Bundle) Languages() []string {
	out := make([]string, 0, len(catalogs))
	for code := range catalogs {
		out = append(out, code)
	}
	return out
}
