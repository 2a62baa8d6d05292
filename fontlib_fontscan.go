// SPDX-License-Identifier: Unlicense OR MIT

package kastext

import (
	"sync"

	gofont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	"github.com/go-text/typesetting/language"

	kasfont "github.com/kas-gui/kas-text-sub000/font"
)

// FontscanLibrary is a FontLibrary backed by a single shared
// fontscan.FontMap, the real production font database/matcher used by the
// go-text/typesetting ecosystem.
//
// Grounded on cogentcore-typesetting/fontscan/fontmap.go: wraps
// FontMap.SetQuery + FontMap.SetScript + FontMap.ResolveFace. Where
// fontscan resolves one rune at a time against mutable query/script state,
// FontscanLibrary resolves a whole FontSelector once into a stable FontId
// and caches the resulting face list, since FaceId/FontId must stay valid
// for the process lifetime (spec.md §5) while fontscan's own state is
// scoped to the next ResolveFace call.
type FontscanLibrary struct {
	mu sync.Mutex

	fm *fontscan.FontMap

	faces     []gofont.Face
	faceIndex map[faceKey]FaceId

	fonts      []fontEntry
	fontCache  selectorCache
	emojiFont  FontId
	emojiReady bool
}

type fontEntry struct {
	sel   FontSelector
	faces []FaceId
}

// faceKey names a resolved face by family and aspect. internFace does not
// consult it; faces are deduplicated by pointer identity.
type faceKey struct {
	family string
	aspect gofont.Aspect
}

// NewFontscanLibrary wraps fm, an already-initialized fontscan.FontMap
// (typically built with fontscan.FontMap.UseSystemFonts), as a FontLibrary.
func NewFontscanLibrary(fm *fontscan.FontMap) *FontscanLibrary {
	return &FontscanLibrary{
		fm:        fm,
		faceIndex: make(map[faceKey]FaceId),
	}
}

func toAspect(style kasfont.Style, weight kasfont.Weight) gofont.Aspect {
	a := gofont.Aspect{
		Weight: gofont.Weight(400 + int(weight)),
	}
	if style == kasfont.Italic {
		a.Style = gofont.StyleItalic
	} else {
		a.Style = gofont.StyleNormal
	}
	return a
}

// ResolveFont implements FontLibrary.
func (l *FontscanLibrary) ResolveFont(sel FontSelector) (FontId, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if id, ok := l.fontCache.Get(sel); ok {
		return id, nil
	}

	family := string(sel.Typeface)
	if sel.Variant != "" {
		family = family + " " + string(sel.Variant)
	}
	l.fm.SetQuery(fontscan.Query{
		Families: []string{family},
		Aspect:   toAspect(sel.Style, sel.Weight),
	})

	// Probe with a representative ASCII rune; per-character fallback
	// during shaping is handled separately via GlyphForChar, which
	// re-queries fontscan with the script hint set (§4.1).
	face := l.fm.ResolveFace('A')
	if face == nil {
		return 0, NoFontMatch{Selector: sel}
	}

	faceId := l.internFace(face)
	id := FontId(len(l.fonts))
	l.fonts = append(l.fonts, fontEntry{sel: sel, faces: []FaceId{faceId}})
	l.fontCache.Put(sel, id)
	return id, nil
}

// EmojiFont implements FontLibrary, resolving (and caching) the system's
// emoji font on first use, per spec.md §4.1.
func (l *FontscanLibrary) EmojiFont() (FontId, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.emojiReady {
		return l.emojiFont, nil
	}

	l.fm.SetQuery(fontscan.Query{Families: []string{"emoji"}})
	face := l.fm.ResolveFace(0x1F600) // U+1F600 GRINNING FACE
	if face == nil {
		return 0, NoFontMatch{Selector: FontSelector{Typeface: "emoji"}}
	}
	faceId := l.internFace(face)
	id := FontId(len(l.fonts))
	l.fonts = append(l.fonts, fontEntry{faces: []FaceId{faceId}})
	l.emojiFont = id
	l.emojiReady = true
	return id, nil
}

// Faces implements FontLibrary.
func (l *FontscanLibrary) Faces(id FontId) []FaceId {
	l.mu.Lock()
	defer l.mu.Unlock()
	if int(id) >= len(l.fonts) {
		return nil
	}
	return l.fonts[id].faces
}

// Face implements FontLibrary.
func (l *FontscanLibrary) Face(id FaceId) gofont.Face {
	l.mu.Lock()
	defer l.mu.Unlock()
	if int(id) >= len(l.faces) {
		return nil
	}
	return l.faces[id]
}

// GlyphForChar implements FontLibrary. It re-resolves against fontscan with
// the script of r set, so that character-level fallback (§4.1) picks a
// substitute face covering r even when the primary face does not.
func (l *FontscanLibrary) GlyphForChar(id FaceId, r rune) (gofont.GID, bool) {
	l.mu.Lock()
	face := l.faceAt(id)
	l.mu.Unlock()
	if face == nil {
		return 0, false
	}
	if gid, ok := face.NominalGlyph(r); ok {
		return gid, true
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.fm.SetScript(language.LookupScript(r))
	fallback := l.fm.ResolveFace(r)
	if fallback == nil {
		return 0, false
	}
	return fallback.NominalGlyph(r)
}

// Metrics implements FontLibrary.
func (l *FontscanLibrary) Metrics(id FaceId, dpem float32) (ascent, descent, lineGap, spaceAdvance float32) {
	l.mu.Lock()
	face := l.faceAt(id)
	l.mu.Unlock()
	if face == nil {
		return 0, 0, 0, 0
	}
	upem := float32(face.Upem())
	scale := dpem / upem
	if ext, ok := face.FontHExtents(nil); ok {
		ascent = ext.Ascender * scale
		descent = ext.Descender * scale
		lineGap = ext.LineGap * scale
	}
	if gid, ok := face.NominalGlyph(' '); ok {
		spaceAdvance = face.HorizontalAdvance(gid, nil) * scale
	}
	return
}

func (l *FontscanLibrary) faceAt(id FaceId) gofont.Face {
	if int(id) >= len(l.faces) {
		return nil
	}
	return l.faces[id]
}

// internFace assigns a stable FaceId to face, reusing an existing one when
// the same face pointer has been seen before.
func (l *FontscanLibrary) internFace(face gofont.Face) FaceId {
	// fontscan's font.Face has no exported identity beyond its metrics, so
	// we key on pointer identity: fontscan's own LRU already guarantees a
	// stable *font.Face per (query, script, rune) as long as the map isn't
	// rebuilt, which is sufficient for a single TextDisplay's lifetime.
	for i, f := range l.faces {
		if f == face {
			return FaceId(i)
		}
	}
	id := FaceId(len(l.faces))
	l.faces = append(l.faces, face)
	return id
}
