// Package assets tracks the asynchronous asset loads one scene requests,
// so the scene manager can gate scene startup on load progress and
// release everything when the scene goes away.
package assets

import (
	"encoding/json"
	"log/slog"
	"sync/atomic"

	"github.com/pixlgo/pixl/pkg/gfx"
)

type Loader struct {
	factory  *gfx.TextureFactory
	textures []*gfx.Texture
	jsons    []*atomic.Bool
}

func NewLoader(factory *gfx.TextureFactory) *Loader {
	return &Loader{factory: factory}
}

// Texture requests an asynchronous texture load and tracks it for
// progress reporting and release. See gfx.TextureFactory.CreateTexture
// for the width/height semantics.
func (l *Loader) Texture(src string, width, height int) *gfx.Texture {
	t := l.factory.CreateTexture(src, width, height)
	l.textures = append(l.textures, t)
	return t
}

// JSON fetches src and unmarshals it into v in the background. A fetch or
// parse failure is logged and leaves v as it was, so callers start from
// an empty manifest. v must not be read before Done reports true.
func (l *Loader) JSON(src string, v any) {
	done := &atomic.Bool{}
	l.jsons = append(l.jsons, done)
	go func() {
		defer done.Store(true)
		data, err := l.factory.Fetch(src)
		if err != nil {
			slog.Warn("asset manifest fetch failed", "src", src, "error", err)
			return
		}
		if err := json.Unmarshal(data, v); err != nil {
			slog.Warn("asset manifest parse failed", "src", src, "error", err)
		}
	}()
}

// Progress reports completed loads over requested loads, in [0,1].
// Missing textures count as completed; they carry the placeholder.
func (l *Loader) Progress() float64 {
	total := len(l.textures) + len(l.jsons)
	if total == 0 {
		return 1
	}
	done := 0
	for _, t := range l.textures {
		if t.Loaded() {
			done++
		}
	}
	for _, j := range l.jsons {
		if j.Load() {
			done++
		}
	}
	return float64(done) / float64(total)
}

func (l *Loader) Done() bool { return l.Progress() == 1 }

// Release destroys every texture this loader created.
func (l *Loader) Release() {
	for _, t := range l.textures {
		l.factory.DestroyTexture(t)
	}
	l.textures = nil
	l.jsons = nil
}
