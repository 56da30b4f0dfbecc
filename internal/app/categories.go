package app

import (
	"github.com/haytac/elm-emoji-gen/internal/emojidata"
	"github.com/haytac/elm-emoji-gen/pkg/interfaces"
)

// categoryGrouper collects short names per source category, then merges source
// categories into canonical groups. Both levels keep first-seen order.
type categoryGrouper struct {
	sourceOrder []string
	members     map[string][]string
	groups      map[string]emojidata.Group
}

func newCategoryGrouper() *categoryGrouper {
	return &categoryGrouper{
		members: make(map[string][]string),
		groups:  make(map[string]emojidata.Group),
	}
}

// add places rec in its source category. An unmapped category is a CategoryError.
func (g *categoryGrouper) add(rec *emojidata.Record) error {
	group, err := emojidata.RecordGroup(rec)
	if err != nil {
		return err
	}
	key := emojidata.FoldCategory(rec.Category)
	if _, ok := g.members[key]; !ok {
		g.sourceOrder = append(g.sourceOrder, key)
		g.groups[key] = group
	}
	g.members[key] = append(g.members[key], rec.ShortName)
	return nil
}

// bindings returns the canonical groups in first-seen order.
func (g *categoryGrouper) bindings() []interfaces.CategoryBinding {
	var out []interfaces.CategoryBinding
	position := make(map[string]int)
	seen := make(map[string]bool)

	for _, key := range g.sourceOrder {
		group := g.groups[key]
		i, ok := position[group.ID]
		if !ok {
			i = len(out)
			position[group.ID] = i
			out = append(out, interfaces.CategoryBinding{ID: group.ID, Name: group.Name})
		}
		for _, name := range g.members[key] {
			if seen[name] {
				continue
			}
			seen[name] = true
			out[i].ShortNames = append(out[i].ShortNames, name)
		}
	}
	return out
}

// GroupCategories groups records by canonical category.
func GroupCategories(records []emojidata.Record) ([]interfaces.CategoryBinding, error) {
	g := newCategoryGrouper()
	for i := range records {
		if err := g.add(&records[i]); err != nil {
			return nil, err
		}
	}
	return g.bindings(), nil
}
