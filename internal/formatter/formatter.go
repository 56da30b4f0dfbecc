package formatter

import (
	"bytes"
	"fmt"
	"regexp"
	"text/template"

	"github.com/rs/zerolog/log"

	"github.com/haytac/elm-emoji-gen/pkg/interfaces"
)

// SchemaVersion identifies the Emoji record layout written by FormatTable.
// Version 3 carries sortOrder, keywords and imgUrl.
const SchemaVersion = 3

// DefaultModuleName is the Elm module declared by the table artifact.
const DefaultModuleName = "Emojis"

// TableFooter closes emojiDict; its absence marks a truncated artifact.
const TableFooter = "        ]\n"

var moduleNameRe = regexp.MustCompile(`^[A-Z][A-Za-z0-9_]*(\.[A-Z][A-Za-z0-9_]*)*$`)

const tableTemplate = `module {{.Module}} exposing (Category, Emoji, emojiDict)

{-| Generated by elm-emoji-gen (schema v{{.Schema}}). Do not edit.
-}

import Dict exposing (Dict)



-- A category groups emoji short names for the picker.


type alias Category =
    { id : String -- canonical category id
    , name : String -- category label shown in the picker
    , emojis : List String -- member short names
    }



-- Emoji describes a single glyph.


type alias Emoji =
    { name : String -- display name
    , native : String -- rendered glyph
    , sortOrder : Int -- CLDR ordering index
    , skinVariations : Dict String String -- glyph per skin-tone modifier
    , keywords : List String -- CLDR annotation keywords
    , imgUrl : Maybe String -- custom emoji image, Nothing for Unicode glyphs
    }


emojiDict : Dict String Emoji
emojiDict =
    Dict.fromList
{{- if .Entries}}
        [ {{range $i, $e := .Entries}}{{if $i}}
        , {{end}}{{entry $e}}{{end}}
{{else}}
        [
{{end}}` + TableFooter

const categoriesTemplate = `{{range $i, $g := .Groups}}{{if $i}}
{{end}}{{$g.ID}} : ( Category, Attribute msg -> Html msg )
{{$g.ID}} =
    ( { id = {{elm $g.ID}}
      , name = {{elm $g.Name}}
      , emojis = {{elmList $g.ShortNames}}
      }
    , helperFun {{$g.ID}}_path
    )
{{end}}`

// ElmFormatter renders artifacts as Elm source.
type ElmFormatter struct {
	module string
}

// NewElmFormatter creates an ElmFormatter declaring module. An empty name selects
// DefaultModuleName.
func NewElmFormatter(module string) (*ElmFormatter, error) {
	if module == "" {
		module = DefaultModuleName
	}
	if !moduleNameRe.MatchString(module) {
		return nil, fmt.Errorf("invalid Elm module name %q", module)
	}
	return &ElmFormatter{module: module}, nil
}

// FormatTable renders the emojiDict module for entries, in the given order.
func (f *ElmFormatter) FormatTable(entries []interfaces.Entry) ([]byte, error) {
	data := map[string]interface{}{
		"Module":  f.module,
		"Schema":  SchemaVersion,
		"Entries": entries,
	}
	out, err := renderTemplate("table", tableTemplate, data)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("entries", len(entries)).Int("bytes", len(out)).Msg("Rendered emoji table")
	return out, nil
}

// FormatCategories renders one binding per canonical category.
func (f *ElmFormatter) FormatCategories(groups []interfaces.CategoryBinding) ([]byte, error) {
	return renderTemplate("categories", categoriesTemplate, map[string]interface{}{"Groups": groups})
}

func renderTemplate(name, tmplStr string, data interface{}) ([]byte, error) {
	tmpl, err := template.New(name).Funcs(template.FuncMap{
		"elm":     elmString,
		"elmList": elmList,
		"entry":   entryLiteral,
	}).Parse(tmplStr)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
