package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haytac/elm-emoji-gen/internal/emojidata"
)

func rec(shortName, category string) emojidata.Record {
	order := 0
	return emojidata.Record{ShortName: shortName, Name: shortName, Unified: "1F600", SortOrder: &order, Category: category}
}

func TestGroupCategories_PeopleAndNature(t *testing.T) {
	groups, err := GroupCategories([]emojidata.Record{
		rec("grinning", "Smileys & Emotion"),
		rec("dog", "Animals & Nature"),
	})
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "people", groups[0].ID)
	assert.Equal(t, "Smileys & People", groups[0].Name)
	assert.Equal(t, []string{"grinning"}, groups[0].ShortNames)

	assert.Equal(t, "nature", groups[1].ID)
	assert.Equal(t, "Animals & Nature", groups[1].Name)
	assert.Equal(t, []string{"dog"}, groups[1].ShortNames)
}

func TestGroupCategories_MergesSourceCategoriesInFirstSeenOrder(t *testing.T) {
	groups, err := GroupCategories([]emojidata.Record{
		rec("wave", "People & Body"),
		rec("dog", "animals & nature"),
		rec("grinning", "Smileys & Emotion"),
		rec("ok_hand", "PEOPLE & BODY"),
		rec("keycap_ten", "Symbols"),
		rec("regional_indicator_a", "Component"),
	})
	require.NoError(t, err)

	ids := make([]string, len(groups))
	for i, g := range groups {
		ids[i] = g.ID
	}
	assert.Equal(t, []string{"people", "nature", "symbols"}, ids)
	assert.Equal(t, []string{"wave", "ok_hand", "grinning"}, groups[0].ShortNames)
	assert.Equal(t, []string{"keycap_ten", "regional_indicator_a"}, groups[2].ShortNames)
}

func TestGroupCategories_NoDuplicateMembers(t *testing.T) {
	groups, err := GroupCategories([]emojidata.Record{
		rec("grinning", "Smileys & Emotion"),
		rec("grinning", "People & Body"),
		rec("grinning", "Smileys & Emotion"),
	})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"grinning"}, groups[0].ShortNames)
}

func TestGroupCategories_Unknown(t *testing.T) {
	groups, err := GroupCategories([]emojidata.Record{
		rec("grinning", "Smileys & Emotion"),
		rec("mystery", "nonsense"),
	})
	assert.Nil(t, groups)
	var catErr *emojidata.CategoryError
	require.True(t, errors.As(err, &catErr))
	assert.Equal(t, "mystery", catErr.ShortName)
}

func TestShortNameIndex(t *testing.T) {
	idx := make(shortNameIndex)
	require.NoError(t, idx.claim(0, "grinning"))
	require.NoError(t, idx.claim(1, "dog"))

	err := idx.claim(4, "grinning")
	var dupErr *emojidata.DuplicateKeyError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, "grinning", dupErr.ShortName)
	assert.Equal(t, 0, dupErr.First)
	assert.Equal(t, 4, dupErr.Index)
}
