package domain

import "strings"

// Category is the closed set of ingredient categories
type Category string

const (
	CategoryVegetables Category = "VEGETABLES"
	CategoryFruits     Category = "FRUITS"
	CategoryMeat       Category = "MEAT"
	CategoryDairy      Category = "DAIRY"
	CategorySpices     Category = "SPICES"
	CategoryOther      Category = "OTHER"
)

// Unit is the closed set of measurement units
type Unit string

const (
	UnitGrams       Unit = "GRAMS"
	UnitKilograms   Unit = "KILOGRAMS"
	UnitLiters      Unit = "LITERS"
	UnitMilliliters Unit = "MILLILITERS"
	UnitPieces      Unit = "PIECES"
)

// Categories lists categories in display order
var Categories = []Category{
	CategoryVegetables, CategoryFruits, CategoryMeat, CategoryDairy, CategorySpices, CategoryOther,
}

// Units lists units in display order
var Units = []Unit{
	UnitGrams, UnitKilograms, UnitLiters, UnitMilliliters, UnitPieces,
}

var categoryLabels = map[Category]string{
	CategoryVegetables: "Vegetables",
	CategoryFruits:     "Fruits",
	CategoryMeat:       "Meat",
	CategoryDairy:      "Dairy",
	CategorySpices:     "Spices",
	CategoryOther:      "Other",
}

var unitLabels = map[Unit]string{
	UnitGrams:       "Grams",
	UnitKilograms:   "Kilograms",
	UnitLiters:      "Liters",
	UnitMilliliters: "Milliliters",
	UnitPieces:      "Pieces",
}

var unitAbbreviations = map[Unit]string{
	UnitGrams:       "g",
	UnitKilograms:   "kg",
	UnitLiters:      "l",
	UnitMilliliters: "ml",
	UnitPieces:      "pcs",
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the display label, or the raw value when unknown
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Valid reports whether u is one of the known units
func (u Unit) Valid() bool {
	_, ok := unitLabels[u]
	return ok
}

// Label returns the display label, or the raw value when unknown
func (u Unit) Label() string {
	if l, ok := unitLabels[u]; ok {
		return l
	}
	return string(u)
}

// Abbreviation is the short unit label used next to quantities
func (u Unit) Abbreviation() string {
	if a, ok := unitAbbreviations[u]; ok {
		return a
	}
	return strings.ToLower(string(u))
}

