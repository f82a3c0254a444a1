package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixlgo/pixl/internal/glctx"
	"github.com/pixlgo/pixl/internal/platform"
	"github.com/pixlgo/pixl/pkg/gfx"
)

type fakeSurface struct {
	frames  int
	handler platform.KeyHandler
}

func (s *fakeSurface) Size() (int, int)                     { return 320, 240 }
func (s *fakeSurface) GL() glctx.Context                    { return nil }
func (s *fakeSurface) Context2D() any                       { return nil }
func (s *fakeSurface) SetKeyHandler(h platform.KeyHandler)  { s.handler = h }
func (s *fakeSurface) Close()                               {}

func (s *fakeSurface) Run(frame func(dt float64) bool) {
	for i := 0; i < s.frames; i++ {
		if !frame(0.016) {
			return
		}
	}
}

type callRecorder struct {
	calls []string
}

func (r *callRecorder) record(call string) { r.calls = append(r.calls, call) }

type recordingRenderer struct{ rec *callRecorder }

func (r *recordingRenderer) Resize(int, int)                           {}
func (r *recordingRenderer) Clear()                                    {}
func (r *recordingRenderer) ApplyTexture(*gfx.Texture)                 {}
func (r *recordingRenderer) DrawTexture(_, _, _, _, _, _, _, _ float32) {}
func (r *recordingRenderer) SetTint(_, _, _, _ byte)                   {}
func (r *recordingRenderer) OnPreDraw()                                { r.rec.record("pre") }
func (r *recordingRenderer) OnPostDraw()                               { r.rec.record("post") }
func (r *recordingRenderer) Destroy()                                  { r.rec.record("destroy") }

type recordingScene struct {
	stubScene
	rec *callRecorder
}

func (s *recordingScene) Draw(r gfx.Renderer) {
	s.stubScene.Draw(r)
	s.rec.record("draw")
}

func TestLoopFrameOrder(t *testing.T) {
	rec := &callRecorder{}
	surface := &fakeSurface{frames: 2}
	scene := &recordingScene{rec: rec}
	factory := gfx.NewTextureFactory(nil)

	loop := NewLoop(surface, &recordingRenderer{rec: rec}, factory, scene)
	loop.Run()

	// The empty loader completes on the first update, so both frames draw
	// between the clear and the final flush; teardown destroys last.
	assert.Equal(t, []string{"pre", "draw", "post", "pre", "draw", "post", "destroy"}, rec.calls)
	assert.Equal(t, 1, scene.unloads)
}

func TestLoopRunsPostedUpdatesBeforeTheFrame(t *testing.T) {
	rec := &callRecorder{}
	surface := &fakeSurface{frames: 1}
	scene := &recordingScene{rec: rec}
	factory := gfx.NewTextureFactory(nil)
	loop := NewLoop(surface, &recordingRenderer{rec: rec}, factory, scene)

	loop.Post(func() { rec.record("completion") })
	loop.Run()

	require.NotEmpty(t, rec.calls)
	assert.Equal(t, "completion", rec.calls[0])
}

func TestLoopFeedsKeyboardFromSurface(t *testing.T) {
	surface := &fakeSurface{}
	factory := gfx.NewTextureFactory(nil)
	loop := NewLoop(surface, &recordingRenderer{rec: &callRecorder{}}, factory, &stubScene{})

	require.NotNil(t, surface.handler)
	surface.handler("ArrowLeft", true)
	assert.True(t, loop.kb.IsDown("ArrowLeft"))
	surface.handler("ArrowLeft", false)
	assert.False(t, loop.kb.IsDown("ArrowLeft"))
}

func TestLoopStopsWhenSceneQuits(t *testing.T) {
	rec := &callRecorder{}
	surface := &fakeSurface{frames: 100}
	scene := &recordingScene{rec: rec}
	scene.action = ActionQuit
	factory := gfx.NewTextureFactory(nil)

	loop := NewLoop(surface, &recordingRenderer{rec: rec}, factory, scene)
	loop.Run()

	assert.Equal(t, 1, scene.updates, "the quit frame is the last one")
}
