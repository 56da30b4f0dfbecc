package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haytac/elm-emoji-gen/internal/config"
	"github.com/haytac/elm-emoji-gen/internal/emojidata"
	"github.com/haytac/elm-emoji-gen/internal/formatter"
	"github.com/haytac/elm-emoji-gen/internal/metrics"
)

var fixtureDir = filepath.Join("..", "emojidata", "testdata")

// setupGenerator builds a Generator over the shared fixtures.
func setupGenerator(t *testing.T, mutate func(cfg *config.AppConfig)) *Generator {
	t.Helper()
	cfg := &config.AppConfig{
		Input:       filepath.Join(fixtureDir, "emoji.json"),
		Annotations: filepath.Join(fixtureDir, "annotations.xml"),
		DecodeMode:  emojidata.ModeStream,
		ModuleName:  formatter.DefaultModuleName,
	}
	if mutate != nil {
		mutate(cfg)
	}
	g, err := NewGenerator(cfg, metrics.NewRecorder())
	require.NoError(t, err)
	return g
}

func fixture(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(fixtureDir, "emoji.json"))
	require.NoError(t, err)
	return string(data)
}

func runTable(t *testing.T, g *Generator, input string) (string, error) {
	t.Helper()
	ann, err := g.LoadAnnotations()
	require.NoError(t, err)
	out, err := g.Table(context.Background(), strings.NewReader(input), ann)
	return string(out), err
}

func TestNewRecordSource(t *testing.T) {
	src, err := NewRecordSource("bulk")
	require.NoError(t, err)
	assert.Equal(t, emojidata.ModeBulk, src.Mode())

	src, err = NewRecordSource("")
	require.NoError(t, err)
	assert.Equal(t, emojidata.ModeStream, src.Mode())

	_, err = NewRecordSource("mmap")
	assert.Error(t, err)
}

func TestNewGenerator_InvalidModule(t *testing.T) {
	_, err := NewGenerator(&config.AppConfig{ModuleName: "lowercase"}, nil)
	assert.Error(t, err)
}

func TestGenerator_Table(t *testing.T) {
	g := setupGenerator(t, nil)
	out, err := runTable(t, g, fixture(t))
	require.NoError(t, err)

	assert.Contains(t, out, "( \"grinning\", { name = \"GRINNING FACE\", native = \"\U0001F600\", sortOrder = 1, skinVariations = Dict.fromList [], keywords = [ \"face\", \"grin\", \"happy\" ], imgUrl = Nothing } )")
	assert.Contains(t, out, "skinVariations = Dict.fromList [ ( \"1F3FB\", \"\U0001F44D\U0001F3FB\" ), ( \"1F3FC\", \"\U0001F44D\U0001F3FC\" ) ]")
	assert.Contains(t, out, "( \"blush\", { name = \"SMILING FACE WITH SMILING EYES\", native = \"\U0001F60A\", sortOrder = 3, skinVariations = Dict.fromList [], keywords = [], imgUrl = Nothing } )")
	assert.True(t, strings.HasSuffix(out, formatter.TableFooter))

	// input order is kept without sorting
	assert.Less(t, strings.Index(out, `( "+1"`), strings.Index(out, `( "dog"`))

	assert.Equal(t, 5.0, testutil.ToFloat64(g.Metrics.RecordsProcessed.WithLabelValues(ArtifactTable)))
	assert.Equal(t, 2.0, testutil.ToFloat64(g.Metrics.SkinVariations))
	assert.Equal(t, 3.0, testutil.ToFloat64(g.Metrics.KeywordLookups.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(g.Metrics.KeywordLookups.WithLabelValues("miss")))
	assert.Equal(t, 3.0, testutil.ToFloat64(g.Metrics.AnnotationsLoaded))
}

func TestGenerator_TableWithoutAnnotations(t *testing.T) {
	g := setupGenerator(t, func(cfg *config.AppConfig) { cfg.Annotations = "" })
	out, err := runTable(t, g, fixture(t))
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(out, "keywords = []"))
}

func TestGenerator_TableSortByOrder(t *testing.T) {
	g := setupGenerator(t, func(cfg *config.AppConfig) { cfg.SortByOrder = true })
	out, err := runTable(t, g, fixture(t))
	require.NoError(t, err)

	pos := func(name string) int { return strings.Index(out, `( "`+name+`", {`) }
	// sort_order: grinning 1, one 2, dog 3, blush 3, +1 180; dog precedes blush in input
	assert.Less(t, pos("grinning"), pos("one"))
	assert.Less(t, pos("one"), pos("dog"))
	assert.Less(t, pos("dog"), pos("blush"))
	assert.Less(t, pos("blush"), pos("+1"))
}

func TestGenerator_TableModesAgree(t *testing.T) {
	stream, err := runTable(t, setupGenerator(t, nil), fixture(t))
	require.NoError(t, err)
	bulk, err := runTable(t, setupGenerator(t, func(cfg *config.AppConfig) { cfg.DecodeMode = emojidata.ModeBulk }), fixture(t))
	require.NoError(t, err)
	assert.Equal(t, stream, bulk)
}

func TestGenerator_TableByteIdenticalReruns(t *testing.T) {
	first, err := runTable(t, setupGenerator(t, nil), fixture(t))
	require.NoError(t, err)
	second, err := runTable(t, setupGenerator(t, nil), fixture(t))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerator_TableErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, err error)
	}{
		{
			name:  "bad codepoint",
			input: `[{"short_name": "x", "name": "X", "unified": "ZZZZ", "sort_order": 1, "category": "Flags"}]`,
			check: func(t *testing.T, err error) {
				var e *emojidata.DecodeError
				assert.True(t, errors.As(err, &e))
			},
		},
		{
			name:  "bad skin variation",
			input: `[{"short_name": "x", "name": "X", "unified": "1F44D", "sort_order": 1, "category": "People & Body", "skin_variations": {"1F3FB": {"unified": "1F44D-GGGG"}}}]`,
			check: func(t *testing.T, err error) {
				var e *emojidata.DecodeError
				require.True(t, errors.As(err, &e))
				assert.Equal(t, "GGGG", e.Token)
				assert.Contains(t, err.Error(), "skin variation 1F3FB")
			},
		},
		{
			name:  "unknown category",
			input: `[{"short_name": "x", "name": "X", "unified": "1F600", "sort_order": 1, "category": "nonsense"}]`,
			check: func(t *testing.T, err error) {
				var e *emojidata.CategoryError
				require.True(t, errors.As(err, &e))
				assert.Equal(t, "nonsense", e.Category)
			},
		},
		{
			name: "duplicate short name",
			input: `[{"short_name": "x", "name": "X", "unified": "1F600", "sort_order": 1, "category": "Flags"},
				{"short_name": "x", "name": "Y", "unified": "1F601", "sort_order": 2, "category": "Flags"}]`,
			check: func(t *testing.T, err error) {
				var e *emojidata.DuplicateKeyError
				require.True(t, errors.As(err, &e))
				assert.Equal(t, 0, e.First)
				assert.Equal(t, 1, e.Index)
			},
		},
		{
			name:  "malformed json",
			input: `[{"short_name": "x"`,
			check: func(t *testing.T, err error) {
				var e *emojidata.InputFormatError
				assert.True(t, errors.As(err, &e))
			},
		},
	}
	for _, tt := range tests {
		for _, mode := range []string{emojidata.ModeStream, emojidata.ModeBulk} {
			t.Run(tt.name+"/"+mode, func(t *testing.T) {
				g := setupGenerator(t, func(cfg *config.AppConfig) { cfg.DecodeMode = mode })
				out, err := runTable(t, g, tt.input)
				require.Error(t, err)
				assert.Empty(t, out)
				tt.check(t, err)
			})
		}
	}
}

func TestGenerator_LoadAnnotationsMissingFile(t *testing.T) {
	g := setupGenerator(t, func(cfg *config.AppConfig) { cfg.Annotations = filepath.Join(t.TempDir(), "absent.xml") })
	_, err := g.LoadAnnotations()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGenerator_Categories(t *testing.T) {
	g := setupGenerator(t, nil)
	out, err := g.Categories(context.Background(), strings.NewReader(fixture(t)))
	require.NoError(t, err)
	text := string(out)

	assert.True(t, strings.HasPrefix(text, "people : ( Category, Attribute msg -> Html msg )\n"))
	assert.Contains(t, text, `      , emojis = [ "grinning", "blush", "+1" ]`)
	assert.Contains(t, text, `      , emojis = [ "dog" ]`)
	assert.Contains(t, text, `      , emojis = [ "one" ]`)
	assert.Contains(t, text, "    , helperFun symbols_path\n")
	assert.Equal(t, 3.0, testutil.ToFloat64(g.Metrics.GroupsEmitted))
}

func TestGenerator_CategoriesUnknownCategory(t *testing.T) {
	g := setupGenerator(t, nil)
	input := `[{"short_name": "grinning", "name": "GRINNING FACE", "unified": "1F600", "sort_order": 1, "category": "nonsense"}]`
	out, err := g.Categories(context.Background(), strings.NewReader(input))
	var e *emojidata.CategoryError
	require.True(t, errors.As(err, &e))
	assert.Nil(t, out)
}

func TestGenerator_Audit(t *testing.T) {
	g := setupGenerator(t, nil)
	report, err := g.Audit(context.Background(), strings.NewReader(fixture(t)))
	require.NoError(t, err)
	assert.Equal(t, 5, report.Checked)
	assert.Equal(t, 5.0, testutil.ToFloat64(g.Metrics.RecordsProcessed.WithLabelValues(ArtifactAudit)))
}
