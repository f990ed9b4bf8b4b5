package textcache

import (
	"log/slog"
	"sync"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/memcanvas"
	"github.com/gogpu/memcanvas/imagebuf"
	"github.com/gogpu/memcanvas/internal/cache"
	"github.com/gogpu/memcanvas/pixel"
)

// DefaultCapacity is the number of runs a Font keeps when New is given a
// capacity below one.
const DefaultCapacity = 256

// Font caches the runs of a Rasterizer. It implements memcanvas.Font and
// is safe for concurrent use.
type Font struct {
	// mu serializes rasterizer calls.
	mu   sync.Mutex
	r    Rasterizer
	runs *cache.Cache[string, *imagebuf.Writable[pixel.Luminosity8]]
}

var _ memcanvas.Font = (*Font)(nil)

// New returns a Font holding up to capacity rendered runs.
func New(r Rasterizer, capacity int) *Font {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	runs := cache.New[string, *imagebuf.Writable[pixel.Luminosity8]](capacity)
	runs.OnEvict(func(text string, _ *imagebuf.Writable[pixel.Luminosity8]) {
		memcanvas.Logger().Debug("textcache: run dropped", slog.String("text", text))
	})
	return &Font{r: r, runs: runs}
}

// Render returns the cached run for text, rasterizing it on a miss.
// Canonically equivalent strings share one entry. Evicted runs stay
// valid for callers still holding them.
func (f *Font) Render(text string) (imagebuf.Const[pixel.Luminosity8], bool) {
	if text == "" {
		return imagebuf.Const[pixel.Luminosity8]{}, false
	}
	key := norm.NFC.String(text)
	buf := f.runs.GetOrCreate(key, func() *imagebuf.Writable[pixel.Luminosity8] {
		f.mu.Lock()
		defer f.mu.Unlock()
		b := f.r.Rasterize(key)
		if b != nil {
			memcanvas.Logger().Debug("textcache: run rendered",
				slog.String("text", key),
				slog.Int("width", b.Width()),
				slog.Int("height", b.Height()))
		}
		return b
	})
	if buf == nil {
		return imagebuf.Const[pixel.Luminosity8]{}, false
	}
	return buf.Const(), true
}

// TextSize measures text without rendering it.
func (f *Font) TextSize(text string) (width, height int) {
	if text == "" {
		return 0, 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.r.Measure(norm.NFC.String(text))
}

// Height returns the line height of the rasterizer.
func (f *Font) Height() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.r.Height()
}

// Stats reports run cache usage.
type Stats = cache.Stats

// Stats returns the run cache statistics.
func (f *Font) Stats() Stats { return f.runs.Stats() }

// Purge drops every cached run.
func (f *Font) Purge() { f.runs.Clear() }
