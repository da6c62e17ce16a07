package models

// defaultCatalog holds the six built-in beverages shipped on first run.
// Ids "1".."6" are reserved for these entries.
var defaultCatalog = []Beverage{
	{ID: "1", Name: "Beer", Image: "pint.png", Color: "#FDB913", Variants: []string{"20cl", "33cl", "Pint"}},
	{ID: "2", Name: "Guinness", Image: "guinness.png", Color: "#000000"},
	{ID: "3", Name: "Wine", Image: "wine.png", Color: "#8B2F3B", Variants: []string{"Red", "White", "Rosé"}},
	{ID: "4", Name: "Cidra", Image: "cider.png", Color: "#A0522D"},
	{ID: "5", Name: "Shots", Image: "shots.png", Color: "#DC143C"},
	{ID: "6", Name: "Cocktails", Image: "cocktails.png", Color: "#FF69B4", Variants: []string{"Rum and Coke", "Gin Tonic", "Others"}},
}

// DefaultBeverages returns a fresh copy of the built-in catalog so that
// callers can never mutate the template.
func DefaultBeverages() []Beverage {
	out := make([]Beverage, len(defaultCatalog))
	copy(out, defaultCatalog)
	for i, b := range defaultCatalog {
		if b.Variants != nil {
			out[i].Variants = append([]string(nil), b.Variants...)
		}
	}
	return out
}

// DefaultData returns the document written on first run and substituted
// whenever the stored one cannot be read.
func DefaultData() *AppData {
	return &AppData{
		Beverages: DefaultBeverages(),
		Logs:      []BeverageLog{},
		Version:   SchemaVersion,
	}
}
