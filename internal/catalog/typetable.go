package catalog

// TypeInfo is the static descriptor for one category tag: its chip color and
// per-language labels. The table is fixed at build time and never fetched.
type TypeInfo struct {
	Color  string
	Labels map[string]string
}

// defaultTypeColor is used for tags missing from the table.
const defaultTypeColor = "#A8A77A"

// TypeKeys is the fixed set of filterable type keys, in display order.
var TypeKeys = []string{
	"normal",
	"fighting",
	"flying",
	"poison",
	"ground",
	"rock",
	"bug",
	"ghost",
	"steel",
	"fire",
	"water",
	"grass",
	"electric",
	"psychic",
	"ice",
	"dragon",
	"fairy",
}

var typeTable = map[string]TypeInfo{
	"normal": {
		Color:  "#A8A77A",
		Labels: map[string]string{"en": "Normal", "fr": "Normal", "de": "Normal", "es": "Normal", "ja": "ノーマル"},
	},
	"fighting": {
		Color:  "#C22E28",
		Labels: map[string]string{"en": "Fighting", "fr": "Combat", "de": "Kampf", "es": "Lucha", "ja": "かくとう"},
	},
	"flying": {
		Color:  "#A98FF3",
		Labels: map[string]string{"en": "Flying", "fr": "Vol", "de": "Flug", "es": "Volador", "ja": "ひこう"},
	},
	"poison": {
		Color:  "#A33EA1",
		Labels: map[string]string{"en": "Poison", "fr": "Poison", "de": "Gift", "es": "Veneno", "ja": "どく"},
	},
	"ground": {
		Color:  "#E2BF65",
		Labels: map[string]string{"en": "Ground", "fr": "Sol", "de": "Boden", "es": "Tierra", "ja": "じめん"},
	},
	"rock": {
		Color:  "#B6A136",
		Labels: map[string]string{"en": "Rock", "fr": "Roche", "de": "Gestein", "es": "Roca", "ja": "いわ"},
	},
	"bug": {
		Color:  "#A6B91A",
		Labels: map[string]string{"en": "Bug", "fr": "Insecte", "de": "Käfer", "es": "Bicho", "ja": "むし"},
	},
	"ghost": {
		Color:  "#735797",
		Labels: map[string]string{"en": "Ghost", "fr": "Spectre", "de": "Geist", "es": "Fantasma", "ja": "ゴースト"},
	},
	"steel": {
		Color:  "#B7B7CE",
		Labels: map[string]string{"en": "Steel", "fr": "Acier", "de": "Stahl", "es": "Acero", "ja": "はがね"},
	},
	"fire": {
		Color:  "#EE8130",
		Labels: map[string]string{"en": "Fire", "fr": "Feu", "de": "Feuer", "es": "Fuego", "ja": "ほのお"},
	},
	"water": {
		Color:  "#6390F0",
		Labels: map[string]string{"en": "Water", "fr": "Eau", "de": "Wasser", "es": "Agua", "ja": "みず"},
	},
	"grass": {
		Color:  "#7AC74C",
		Labels: map[string]string{"en": "Grass", "fr": "Plante", "de": "Pflanze", "es": "Planta", "ja": "くさ"},
	},
	"electric": {
		Color:  "#F7D02C",
		Labels: map[string]string{"en": "Electric", "fr": "Électrik", "de": "Elektro", "es": "Eléctrico", "ja": "でんき"},
	},
	"psychic": {
		Color:  "#F95587",
		Labels: map[string]string{"en": "Psychic", "fr": "Psy", "de": "Psycho", "es": "Psíquico", "ja": "エスパー"},
	},
	"ice": {
		Color:  "#96D9D6",
		Labels: map[string]string{"en": "Ice", "fr": "Glace", "de": "Eis", "es": "Hielo", "ja": "こおり"},
	},
	"dragon": {
		Color:  "#6F35FC",
		Labels: map[string]string{"en": "Dragon", "fr": "Dragon", "de": "Drache", "es": "Dragón", "ja": "ドラゴン"},
	},
	"fairy": {
		Color:  "#D685AD",
		Labels: map[string]string{"en": "Fairy", "fr": "Fée", "de": "Fee", "es": "Hada", "ja": "フェアリー"},
	},
}

// TypeLabel returns the label for a type key in the given language, falling
// back to the default language and then to the raw key.
func TypeLabel(key, language string) string {
	info, ok := typeTable[key]
	if !ok {
		return key
	}
	if label := info.Labels[language]; label != "" {
		return label
	}
	if label := info.Labels[DefaultLanguage]; label != "" {
		return label
	}
	return key
}

// TypeColor returns the chip color for a type key.
func TypeColor(key string) string {
	if info, ok := typeTable[key]; ok {
		return info.Color
	}
	return defaultTypeColor
}
