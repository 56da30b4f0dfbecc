package emojidata

import "golang.org/x/text/cases"

// Group is a canonical category as rendered by the UI.
type Group struct {
	ID   string
	Name string
}

var (
	groupActivity = Group{ID: "activity", Name: "Activities"}
	groupFlags    = Group{ID: "flags", Name: "Flags"}
	groupFoods    = Group{ID: "foods", Name: "Food & Drink"}
	groupNature   = Group{ID: "nature", Name: "Animals & Nature"}
	groupObjects  = Group{ID: "objects", Name: "Objects"}
	groupPeople   = Group{ID: "people", Name: "Smileys & People"}
	groupPlaces   = Group{ID: "places", Name: "Travel & Places"}
	groupSymbols  = Group{ID: "symbols", Name: "Symbols & Components"}
)

// categoryGroups maps case-folded source categories to their canonical group.
var categoryGroups = map[string]Group{
	"activities":        groupActivity,
	"flags":             groupFlags,
	"food & drink":      groupFoods,
	"animals & nature":  groupNature,
	"objects":           groupObjects,
	"people & body":     groupPeople,
	"smileys & emotion": groupPeople,
	"travel & places":   groupPlaces,
	"symbols":           groupSymbols,
	"component":         groupSymbols,
}

// FoldCategory returns the lookup key for a source category.
func FoldCategory(category string) string {
	// A Caser keeps state between calls, so each lookup gets its own.
	return cases.Fold().String(category)
}

// GroupFor resolves the canonical group of a source category.
func GroupFor(category string) (Group, bool) {
	g, ok := categoryGroups[FoldCategory(category)]
	return g, ok
}

// RecordGroup resolves the canonical group of r, failing with a CategoryError.
func RecordGroup(r *Record) (Group, error) {
	g, ok := GroupFor(r.Category)
	if !ok {
		return Group{}, &CategoryError{Category: r.Category, ShortName: r.ShortName}
	}
	return g, nil
}
