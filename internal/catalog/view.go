package catalog

import (
	"fmt"
	"strconv"

	"github.com/pokeview/pokedex-api/internal/entities/pokedex"
)

// spriteURLFormat is the deterministic image fallback for ids whose detail
// record carries no sprite reference.
const spriteURLFormat = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/%d.png"

// TypeBadge is one rendered category chip.
type TypeBadge struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// Card is the render-entry for one visible catalog item.
type Card struct {
	ID          int         `json:"id"`
	DisplayName string      `json:"display_name"`
	Number      string      `json:"number"`
	Types       []TypeBadge `json:"types"`
	ImageURL    string      `json:"image_url"`
}

// MoveLabels are the per-language UI strings around the move list.
type MoveLabels struct {
	Button      string `json:"button"`
	TitleFormat string `json:"title_format"`
	Close       string `json:"close"`
}

var moveLabels = map[string]MoveLabels{
	"en": {Button: "View moves", TitleFormat: "Moves of %s", Close: "Close"},
	"fr": {Button: "Voir les attaques", TitleFormat: "Attaques de %s", Close: "Fermer"},
	"de": {Button: "Attacken anzeigen", TitleFormat: "Attacken von %s", Close: "Schließen"},
	"es": {Button: "Ver ataques", TitleFormat: "Ataques de %s", Close: "Cerrar"},
	"ja": {Button: "わざを見る", TitleFormat: "%sのわざ", Close: "閉じる"},
}

// MoveLabelsFor returns the move-list labels for a language, defaulting to
// the default language for unknown codes.
func MoveLabelsFor(language string) MoveLabels {
	if l, ok := moveLabels[language]; ok {
		return l
	}
	return moveLabels[DefaultLanguage]
}

// SpriteURL derives the fallback image URL for an id.
func SpriteURL(id int) string {
	return fmt.Sprintf(spriteURLFormat, id)
}

// NumberLabel formats the padded catalog number, e.g. "#025".
func NumberLabel(id int) string {
	return fmt.Sprintf("#%03d", id)
}

// FormatHeight renders an upstream height in decimeters as meters when at
// least one meter, centimeters otherwise.
func FormatHeight(dm int) string {
	if dm >= 10 {
		return trimFloat(float64(dm)/10) + " m"
	}
	return strconv.Itoa(dm*10) + " cm"
}

// FormatWeight renders an upstream weight in hectograms as kilograms.
func FormatWeight(hg int) string {
	return trimFloat(float64(hg)/10) + " kg"
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// NewCard builds the render-entry for one visible id. It returns nil while
// the detail record has not arrived; entries are withheld rather than
// rendered with missing fields.
func NewCard(detail *pokedex.Detail, ns *pokedex.NameSet, canonical, language string) *Card {
	if detail == nil {
		return nil
	}

	fallback := canonical
	if fallback == "" {
		fallback = detail.Name
	}

	badges := make([]TypeBadge, 0, len(detail.Types))
	for _, key := range detail.Types {
		badges = append(badges, TypeBadge{
			Key:   key,
			Label: TypeLabel(key, language),
			Color: TypeColor(key),
		})
	}

	imageURL := detail.ImageURL
	if imageURL == "" {
		imageURL = SpriteURL(detail.ID)
	}

	return &Card{
		ID:          detail.ID,
		DisplayName: ResolveName(ns, language, fallback),
		Number:      NumberLabel(detail.ID),
		Types:       badges,
		ImageURL:    imageURL,
	}
}

// PaginateMoves returns one page of humanized move names plus the total
// count. Page is zero-based; size defaults to the full list when zero.
func PaginateMoves(moves []string, page, size int) ([]string, int) {
	total := len(moves)
	if size <= 0 {
		size = total
	}

	start := page * size
	if page < 0 || start >= total {
		return []string{}, total
	}

	end := start + size
	if end > total {
		end = total
	}

	out := make([]string, 0, end-start)
	for _, m := range moves[start:end] {
		out = append(out, humanizeMove(m))
	}
	return out, total
}

func humanizeMove(name string) string {
	out := []byte(name)
	for i := range out {
		if out[i] == '-' {
			out[i] = ' '
		}
	}
	return string(out)
}
