// Package assets preloads the shell's images.
//
// Paths are queued up front, decoded concurrently by LoadAll and handed out by
// Get once loading has finished. A failed image is counted and logged but never
// blocks completion; callers simply get nil for it and draw nothing.
package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"log/slog"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"

	"github.com/younwookim/dreamroom/internal/infrastructure/logger"
)

// Stats counts load outcomes
type Stats struct {
	Queued int
	Loaded int
	Failed int
}

// Resolved returns how many queued paths have finished, successfully or not
func (s Stats) Resolved() int {
	return s.Loaded + s.Failed
}

// Store is an image cache keyed by path.
//
// Decoding happens on worker goroutines; conversion to *ebiten.Image is
// deferred to the first Get so it runs on the game goroutine.
type Store struct {
	fsys        fs.FS
	concurrency int
	log         *slog.Logger

	mu      sync.Mutex
	queue   []string
	queued  map[string]bool
	decoded map[string]image.Image
	images  map[string]*ebiten.Image
	loaded  int
	failed  int
	started bool
	done    chan struct{}
}

// NewStore creates a store reading from fsys with at most concurrency
// simultaneous decodes. A nil logger uses the process logger.
func NewStore(fsys fs.FS, concurrency int, log *slog.Logger) *Store {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Store{
		fsys:        fsys,
		concurrency: concurrency,
		log:         logger.OrDefault(log),
		queued:      make(map[string]bool),
		decoded:     make(map[string]image.Image),
		images:      make(map[string]*ebiten.Image),
		done:        make(chan struct{}),
	}
}

// Queue registers path for loading. Duplicates are loaded once.
// Paths queued after LoadAll has started are ignored.
func (s *Store) Queue(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		s.log.Warn("asset queued after loading started, ignoring", "path", path)
		return
	}
	if s.queued[path] {
		return
	}
	s.queued[path] = true
	s.queue = append(s.queue, path)
}

// LoadAll starts loading every queued path and returns the completion channel.
// The channel is closed exactly once, after every path has either loaded or
// failed; with nothing queued it is closed before LoadAll returns.
// Calling LoadAll again only returns the same channel.
// Cancelling ctx fails the paths that have not started decoding yet.
func (s *Store) LoadAll(ctx context.Context) <-chan struct{} {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return s.done
	}
	s.started = true
	paths := append([]string(nil), s.queue...)
	s.mu.Unlock()

	if len(paths) == 0 {
		close(s.done)
		return s.done
	}

	s.log.Debug("loading assets", "count", len(paths), "concurrency", s.concurrency)

	go func() {
		var g errgroup.Group
		g.SetLimit(s.concurrency)

		for _, path := range paths {
			g.Go(func() error {
				img, err := s.decode(ctx, path)
				s.record(path, img, err)
				// Failures are counted, not propagated: one bad image must not stop the rest
				return nil
			})
		}

		_ = g.Wait()

		stats := s.Stats()
		s.log.Info("assets loaded", "loaded", stats.Loaded, "failed", stats.Failed)
		close(s.done)
	}()

	return s.done
}

func (s *Store) decode(ctx context.Context, path string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	f, err := s.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

func (s *Store) record(path string, img image.Image, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.failed++
		s.log.Error("failed to load asset", "path", path, "err", err)
		return
	}
	s.loaded++
	s.decoded[path] = img
}

// Done returns the channel closed when loading has finished
func (s *Store) Done() <-chan struct{} {
	return s.done
}

// Ready reports, without blocking, whether loading has finished
func (s *Store) Ready() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Progress returns the resolved fraction of queued paths in [0, 1]
func (s *Store) Progress() float64 {
	st := s.Stats()
	if st.Queued == 0 {
		return 1
	}
	return float64(st.Resolved()) / float64(st.Queued)
}

// Stats returns a snapshot of the load counters
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{Queued: len(s.queue), Loaded: s.loaded, Failed: s.failed}
}

// Get returns the image for path, or nil if it is not (or not yet) loaded.
// Must be called from the game goroutine.
func (s *Store) Get(path string) *ebiten.Image {
	s.mu.Lock()
	defer s.mu.Unlock()

	if img, ok := s.images[path]; ok {
		return img
	}
	src, ok := s.decoded[path]
	if !ok {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	s.images[path] = img
	delete(s.decoded, path)
	return img
}
