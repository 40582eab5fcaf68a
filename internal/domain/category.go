package domain

import (
	"fmt"
	"strings"
)

// CategorySubcategories lists the canonical subcategory keys under each
// category key used by the listing pages.
var CategorySubcategories = map[string][]string{
	"electronics":   {"consoles", "televisions", "cameras_drones", "laptops", "audio_equipments"},
	"real":          {"house", "apartments", "land", "storage_units"},
	"transport":     {"cars", "motorcycles", "bicycles_scooters", "buses"},
	"events":        {"tents", "furnitures", "lighting_decorations", "wedding_grounds"},
	"miscellaneous": {"construction_equipments", "farming_equipments", "books", "musical_equipments"},
}

// categoryAliases maps a category key to the category value stored in the
// items collection. The catalog accumulated several historical spellings,
// so the stored value is not always the key itself.
var categoryAliases = map[string]string{
	"transport":     "Vehicle & Transportation",
	"electronics":   "Electronics",
	"real":          "real",
	"events":        "events",
	"miscellaneous": "miscellaneous",
}

// subcategoryAliases maps each canonical subcategory key to every spelling
// of it known to exist in the items collection. Matching is case-insensitive
// on top of these entries.
var subcategoryAliases = map[string][]string{
	"cars":              {"Cars", "car", "cars"},
	"motorcycles":       {"Motorcycles", "motorcycle", "bikes"},
	"bicycles_scooters": {"Bicycles & Scooters", "bicycles", "scooters"},
	"buses":             {"Buses", "bus"},

	"house":         {"house", "houses", "House", "Houses"},
	"apartments":    {"apartments", "Apartment", "Apartments", "flat"},
	"land":          {"land", "Land", "plots"},
	"storage_units": {"storage_units", "storage", "Storage Units"},

	"consoles":         {"consoles", "Consoles", "gaming"},
	"televisions":      {"televisions", "TVs", "Televisions", "tv"},
	"cameras_drones":   {"cameras_drones", "Cameras", "Drones"},
	"laptops":          {"laptops", "Laptops", "notebook"},
	"audio_equipments": {"audio_equipments", "Audio", "speakers"},

	"tents":                {"tents", "Tents", "tent"},
	"furnitures":           {"furnitures", "Furniture", "furniture"},
	"lighting_decorations": {"lighting_decorations", "Lighting", "decorations"},
	"wedding_grounds":      {"wedding_grounds", "Wedding Grounds", "venue"},

	"construction_equipments": {"construction_equipments", "Construction", "tools"},
	"farming_equipments":      {"farming_equipments", "Farming", "agricultural"},
	"books":                   {"books", "Books", "book"},
	"musical_equipments":      {"musical_equipments", "Musical", "instruments"},
}

// DatabaseCategory resolves a category key to the value stored in the items
// collection. Unknown keys pass through unchanged.
func DatabaseCategory(key string) string {
	if stored, ok := categoryAliases[key]; ok {
		return stored
	}
	return key
}

// CanonicalSubcategory resolves a stored subcategory value to its canonical
// key. It returns false when no alias entry matches.
func CanonicalSubcategory(raw string) (string, bool) {
	for key, variants := range subcategoryAliases {
		for _, v := range variants {
			if raw == v || strings.EqualFold(raw, v) {
				return key, true
			}
		}
	}
	return "", false
}

// ValidateCategoryTables checks the alias tables against the canonical
// subcategory keys. Called at startup so an unmapped key fails fast instead
// of silently dropping items from listings.
func ValidateCategoryTables() error {
	for category, keys := range CategorySubcategories {
		if _, ok := categoryAliases[category]; !ok {
			return fmt.Errorf("category %q has no database alias", category)
		}
		for _, key := range keys {
			variants, ok := subcategoryAliases[key]
			if !ok || len(variants) == 0 {
				return fmt.Errorf("subcategory %q in category %q has no alias entries", key, category)
			}
		}
	}
	return nil
}

// GroupBySubcategory buckets items under the given canonical subcategory
// keys. Items whose stored subcategory matches no alias are returned
// separately so callers can log them; they are excluded from the groups.
func GroupBySubcategory(items []Item, keys []string) (map[string][]Item, []string) {
	wanted := make(map[string]bool, len(keys))
	for _, k := range keys {
		wanted[k] = true
	}

	groups := make(map[string][]Item)
	var unmatched []string
	for _, item := range items {
		key, ok := CanonicalSubcategory(item.Subcategory)
		if !ok || !wanted[key] {
			unmatched = append(unmatched, item.Subcategory)
			continue
		}
		groups[key] = append(groups[key], item)
	}
	return groups, unmatched
}
