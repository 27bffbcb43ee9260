// Package wordcloud turns a text corpus into word frequencies and renders
// them as a word-cloud image via psykhi/wordclouds.
package wordcloud

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"unicode"

	"github.com/psykhi/wordclouds"
)

// stopwords is a small English stopword set; tokens in it never reach the
// cloud. Extend per call via the extraStopwords argument of Frequencies.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"but": {}, "by": {}, "for": {}, "from": {}, "had": {}, "has": {},
	"have": {}, "he": {}, "her": {}, "his": {}, "i": {}, "in": {}, "is": {},
	"it": {}, "its": {}, "my": {}, "not": {}, "of": {}, "on": {}, "or": {},
	"she": {}, "that": {}, "the": {}, "their": {}, "there": {}, "they": {},
	"this": {}, "to": {}, "was": {}, "we": {}, "were": {}, "will": {},
	"with": {}, "you": {}, "your": {},
}

// Frequencies tokenizes text into lowercase words and counts occurrences,
// dropping stopwords and tokens shorter than two characters. Tokens are
// split on any rune that is not a letter or digit, so punctuation never
// produces spurious words.
func Frequencies(text string, extraStopwords ...string) map[string]int {
	extra := make(map[string]struct{}, len(extraStopwords))
	for _, w := range extraStopwords {
		extra[strings.ToLower(w)] = struct{}{}
	}

	freqs := make(map[string]int)

	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	for _, token := range tokens {
		if len(token) < 2 {
			continue
		}
		if _, ok := stopwords[token]; ok {
			continue
		}
		if _, ok := extra[token]; ok {
			continue
		}
		freqs[token]++
	}

	return freqs
}

type options struct {
	fontFile    string
	width       int
	height      int
	fontMin     int
	fontMax     int
	colors      []color.Color
	background  color.Color
	randomPlace bool
}

// Option configures Render.
type Option func(*options)

// WithFontFile sets the TTF font used for rasterization. Mandatory: there is
// no sensible bundled default.
func WithFontFile(path string) Option {
	return func(o *options) {
		o.fontFile = path
	}
}

// WithSize sets the output image dimensions in pixels (default 1024x1024).
func WithSize(width, height int) Option {
	return func(o *options) {
		if width > 0 && height > 0 {
			o.width = width
			o.height = height
		}
	}
}

// WithFontRange sets the smallest and largest font sizes used
// (default 12 and 96).
func WithFontRange(min, max int) Option {
	return func(o *options) {
		if min > 0 && max >= min {
			o.fontMin = min
			o.fontMax = max
		}
	}
}

// WithColors sets the palette words are drawn with.
func WithColors(colors []color.Color) Option {
	return func(o *options) {
		if len(colors) > 0 {
			o.colors = colors
		}
	}
}

// WithBackground sets the background color (default white).
func WithBackground(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.background = c
		}
	}
}

// WithRandomPlacement places words at random positions instead of spiraling
// out from the center.
func WithRandomPlacement(random bool) Option {
	return func(o *options) {
		o.randomPlace = random
	}
}

// Render rasterizes the frequency map into a word-cloud image. Higher-count
// words are drawn larger. Frequencies maps are typically produced by
// Frequencies, but any map works.
func Render(freqs map[string]int, optFns ...Option) (image.Image, error) {
	if len(freqs) == 0 {
		return nil, fmt.Errorf("wordcloud: no words to render")
	}

	o := options{
		width:   1024,
		height:  1024,
		fontMin: 12,
		fontMax: 96,
		colors: []color.Color{
			color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
			color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
			color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
			color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
		},
		background: color.White,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	if o.fontFile == "" {
		return nil, fmt.Errorf("wordcloud: font file is required (use WithFontFile)")
	}

	w := wordclouds.NewWordcloud(freqs,
		wordclouds.FontFile(o.fontFile),
		wordclouds.FontMinSize(o.fontMin),
		wordclouds.FontMaxSize(o.fontMax),
		wordclouds.Width(o.width),
		wordclouds.Height(o.height),
		wordclouds.Colors(o.colors),
		wordclouds.BackgroundColor(o.background),
		wordclouds.RandomPlacement(o.randomPlace),
	)

	return w.Draw(), nil
}
