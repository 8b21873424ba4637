package text

import (
	"strings"

	"github.com/go-text/typesetting/font"
)

var styleWeights = map[string]font.Weight{
	"thin":       font.WeightThin,
	"hairline":   font.WeightThin,
	"extralight": font.WeightExtraLight,
	"ultralight": font.WeightExtraLight,
	"light":      font.WeightLight,
	"regular":    font.WeightNormal,
	"normal":     font.WeightNormal,
	"book":       font.WeightNormal,
	"medium":     font.WeightMedium,
	"semibold":   font.WeightSemibold,
	"demibold":   font.WeightSemibold,
	"bold":       font.WeightBold,
	"extrabold":  font.WeightExtraBold,
	"ultrabold":  font.WeightExtraBold,
	"black":      font.WeightBlack,
	"heavy":      font.WeightBlack,
}

var styleStretches = map[string]font.Stretch{
	"condensed":     font.StretchCondensed,
	"semicondensed": font.StretchSemiCondensed,
	"expanded":      font.StretchExpanded,
	"semiexpanded":  font.StretchSemiExpanded,
}

// ParseStyle converts a style name such as "Light", "Bold Italic" or
// "SemiBold" into a font aspect. Unknown words are ignored; an empty style
// is the regular upright face.
func ParseStyle(style string) font.Aspect {
	aspect := font.Aspect{
		Style:   font.StyleNormal,
		Weight:  font.WeightNormal,
		Stretch: font.StretchNormal,
	}

	for _, word := range strings.FieldsFunc(strings.ToLower(style), isStyleSeparator) {
		for _, slant := range []string{"italic", "oblique"} {
			if strings.HasSuffix(word, slant) {
				aspect.Style = font.StyleItalic
				word = strings.TrimSuffix(word, slant)
			}
		}
		if w, ok := styleWeights[word]; ok {
			aspect.Weight = w
		}
		if s, ok := styleStretches[word]; ok {
			aspect.Stretch = s
		}
	}
	return aspect
}

func isStyleSeparator(r rune) bool {
	return r == ' ' || r == '-' || r == '_'
}
