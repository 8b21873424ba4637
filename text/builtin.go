package text

import (
	"math"
	"strings"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// builtinFace is one bundled font file.
type builtinFace struct {
	family string
	aspect font.Aspect
	ttf    []byte
}

func goAspect(weight font.Weight, style font.Style) font.Aspect {
	return font.Aspect{Style: style, Weight: weight, Stretch: font.StretchNormal}
}

// builtinFaces are the Go fonts, always available without system lookup.
var builtinFaces = []builtinFace{
	{"Go", goAspect(font.WeightNormal, font.StyleNormal), goregular.TTF},
	{"Go", goAspect(font.WeightNormal, font.StyleItalic), goitalic.TTF},
	{"Go", goAspect(font.WeightMedium, font.StyleNormal), gomedium.TTF},
	{"Go", goAspect(font.WeightMedium, font.StyleItalic), gomediumitalic.TTF},
	{"Go", goAspect(font.WeightBold, font.StyleNormal), gobold.TTF},
	{"Go", goAspect(font.WeightBold, font.StyleItalic), gobolditalic.TTF},
	{"Go Mono", goAspect(font.WeightNormal, font.StyleNormal), gomono.TTF},
	{"Go Mono", goAspect(font.WeightNormal, font.StyleItalic), gomonoitalic.TTF},
	{"Go Mono", goAspect(font.WeightBold, font.StyleNormal), gomonobold.TTF},
	{"Go Mono", goAspect(font.WeightBold, font.StyleItalic), gomonobolditalic.TTF},
}

// FallbackFamily is the bundled family used when fallback is enabled.
const FallbackFamily = "Go"

// findBuiltin returns the bundled face of family closest to aspect: the
// slant must match if the family has it, then the nearest weight wins.
func findBuiltin(family string, aspect font.Aspect) ([]byte, bool) {
	var (
		best     []byte
		bestCost = math.MaxFloat64
	)
	for _, f := range builtinFaces {
		if !strings.EqualFold(f.family, family) {
			continue
		}
		cost := math.Abs(float64(f.aspect.Weight - aspect.Weight))
		if f.aspect.Style != aspect.Style {
			cost += 1000
		}
		if cost < bestCost {
			best, bestCost = f.ttf, cost
		}
	}
	return best, best != nil
}
