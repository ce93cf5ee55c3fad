package textfit

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// OpenTypeProvider measures text with real glyph metrics from parsed
// OpenType/TrueType fonts. Faces are created lazily per (family, size)
// and cached. Measurement is serialized internally because the
// underlying faces are not safe for concurrent use; the engine's LRU
// cache sits in front of the provider, so contention stays low.
type OpenTypeProvider struct {
	mu      sync.Mutex
	fonts   map[string]*opentype.Font
	aliases map[string]string
	faces   map[faceKey]font.Face
}

type faceKey struct {
	family string
	size   int
}

// NewOpenTypeProvider creates a provider preloaded with the Go Regular
// face. The common presentation families (Arial, Calibri, Helvetica)
// are aliased to it as metric substitutes, so decks styled with those
// families measure with real glyph metrics rather than the width
// table. Register exact fonts with RegisterFont to improve accuracy.
func NewOpenTypeProvider() (*OpenTypeProvider, error) {
	p := &OpenTypeProvider{
		fonts:   make(map[string]*opentype.Font),
		aliases: make(map[string]string),
		faces:   make(map[faceKey]font.Face),
	}
	if err := p.RegisterFont("Go", goregular.TTF); err != nil {
		return nil, err
	}
	for _, alias := range []string{"Arial", "Calibri", "Helvetica"} {
		p.RegisterAlias(alias, "Go")
	}
	return p, nil
}

// RegisterFont parses font data and registers it under the given
// family name, replacing any previous registration.
func (p *OpenTypeProvider) RegisterFont(family string, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("textfit: parsing font %q: %w", family, err)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fonts[normalizeFamily(family)] = f
	return nil
}

// RegisterAlias maps an unavailable family name onto a registered one.
func (p *OpenTypeProvider) RegisterAlias(alias, family string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.aliases[normalizeFamily(alias)] = normalizeFamily(family)
}

// Families returns the registered family names, aliases included.
func (p *OpenTypeProvider) Families() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.fonts)+len(p.aliases))
	for name := range p.fonts {
		out = append(out, name)
	}
	for name := range p.aliases {
		out = append(out, name)
	}
	return out
}

// Measure implements Provider.
func (p *OpenTypeProvider) Measure(text, family string, size int) (Size, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	face, err := p.faceLocked(family, size)
	if err != nil {
		return Size{}, err
	}

	adv := font.MeasureString(face, text)
	m := face.Metrics()
	return Size{
		Width:  fixedToPoints(adv),
		Height: fixedToPoints(m.Ascent + m.Descent),
	}, nil
}

func (p *OpenTypeProvider) faceLocked(family string, size int) (font.Face, error) {
	name := normalizeFamily(family)
	if target, ok := p.aliases[name]; ok {
		name = target
	}
	f, ok := p.fonts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFamily, family)
	}

	key := faceKey{family: name, size: size}
	if face, ok := p.faces[key]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72, // 1 pixel == 1 point
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("textfit: creating face %s@%d: %w", family, size, err)
	}
	p.faces[key] = face
	return face, nil
}

func normalizeFamily(family string) string {
	return strings.ToLower(strings.TrimSpace(family))
}

// fixedToPoints converts a 26.6 fixed-point length to points.
func fixedToPoints(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
