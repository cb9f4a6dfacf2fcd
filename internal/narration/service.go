package narration

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/ytget/names72/internal/model"
)

// DefaultClipPattern maps a 1-based name number to its clip file
const DefaultClipPattern = "name%d.mp3"

var (
	// ErrClipNotFound is reported when no clip exists for a position
	ErrClipNotFound = errors.New("narration clip not found")

	// ErrStopped is reported to a clip that was pre-empted or stopped
	ErrStopped = errors.New("narration stopped")

	// ErrNoOutput is reported when no audio output is available
	ErrNoOutput = errors.New("no audio output")

	// ErrClosed is reported after Close
	ErrClosed = errors.New("narration service closed")
)

// Options configures a new Service
type Options struct {
	FS      fs.FS
	Pattern string
	Sink    Sink
	Decode  DecodeFunc
}

// Service plays one clip at a time. A new Play pre-empts the current clip.
type Service struct {
	mu      sync.Mutex
	fsys    fs.FS
	pattern string
	sink    Sink
	decode  DecodeFunc

	current *playback
	closed  bool

	playCounter metric.Int64Counter
}

// playback tracks one started clip and guarantees its completion callback
// runs exactly once
type playback struct {
	position int
	onDone   func(error)
	once     sync.Once
	stopWait func() bool
}

func (p *playback) finish(err error) {
	p.once.Do(func() {
		if p.stopWait != nil {
			p.stopWait()
		}
		if p.onDone != nil {
			p.onDone(err)
		}
	})
}

// NewService creates a narration service reading clips from opts.FS. A nil
// Sink leaves the service usable but silent: every Play reports ErrNoOutput.
func NewService(opts Options) *Service {
	pattern := opts.Pattern
	if pattern == "" {
		pattern = DefaultClipPattern
	}
	decode := opts.Decode
	if decode == nil {
		decode = DecodeMP3
	}

	counter, err := meter.Int64Counter(
		"names72.narration.plays",
		metric.WithDescription("Number of narration clips started"),
	)
	if err != nil {
		logger.Warn("failed to create play counter", "error", err)
	}

	return &Service{
		fsys:        opts.FS,
		pattern:     pattern,
		sink:        opts.Sink,
		decode:      decode,
		playCounter: counter,
	}
}

// ClipName returns the clip file name for a 0-based position
func ClipName(pattern string, position int) string {
	return fmt.Sprintf(pattern, model.NumberAt(position))
}

// Play loads the clip for position and plays it, pre-empting any clip that
// is still playing. onDone receives nil when the clip plays to the end,
// ErrStopped when it is pre-empted, stopped or ctx is cancelled, and the
// load error otherwise. A missing clip leaves the current clip untouched.
func (s *Service) Play(ctx context.Context, position int, onDone func(error)) {
	ctx, span := tracer.Start(ctx, "play narration")
	defer span.End()
	span.SetAttributes(attribute.Int("narration.position", position))

	fail := func(err error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if onDone != nil {
			onDone(err)
		}
	}

	pcm, err := s.load(position)
	if err != nil {
		if errors.Is(err, ErrClipNotFound) {
			logger.Warn("narration clip missing", "position", position, "error", err)
		} else {
			logger.Error("failed to load narration clip", "position", position, "error", err)
		}
		fail(err)
		return
	}

	pb := &playback{position: position, onDone: onDone}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		fail(ErrClosed)
		return
	}
	if s.sink == nil {
		s.mu.Unlock()
		fail(ErrNoOutput)
		return
	}

	prev := s.current
	s.current = nil
	if prev != nil {
		s.sink.Stop()
	}

	if err := s.sink.Play(pcm, func() { s.finished(pb) }); err != nil {
		s.mu.Unlock()
		if prev != nil {
			prev.finish(ErrStopped)
		}
		logger.Error("failed to start narration", "position", position, "error", err)
		fail(fmt.Errorf("failed to start narration: %w", err))
		return
	}
	s.current = pb
	pb.stopWait = context.AfterFunc(ctx, func() { s.stopPlayback(pb) })
	s.mu.Unlock()

	if prev != nil {
		prev.finish(ErrStopped)
	}
	if s.playCounter != nil {
		s.playCounter.Add(ctx, 1)
	}
	span.SetAttributes(attribute.Int64("narration.duration_ms", pcm.Duration().Milliseconds()))
	logger.Info("narration started", "position", position, "duration", pcm.Duration())
}

// Stop silences the current clip, if any
func (s *Service) Stop() {
	s.mu.Lock()
	pb := s.current
	s.current = nil
	if pb != nil && s.sink != nil {
		s.sink.Stop()
	}
	s.mu.Unlock()

	if pb != nil {
		pb.finish(ErrStopped)
	}
}

// IsPlaying reports whether a clip is currently playing
func (s *Service) IsPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// Verify checks that a clip exists for every position and returns the names
// of the missing ones
func (s *Service) Verify() []string {
	var missing []string
	for pos := model.FirstPosition; pos <= model.LastPosition; pos++ {
		name := ClipName(s.pattern, pos)
		if s.fsys == nil {
			missing = append(missing, name)
			continue
		}
		if _, err := fs.Stat(s.fsys, name); err != nil {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		logger.Warn("narration clips missing", "count", len(missing), "clips", missing)
	} else {
		logger.Info("all narration clips present", "count", model.NameCount)
	}
	return missing
}

// Close stops playback and releases the sink. Later Play calls report
// ErrClosed.
func (s *Service) Close() error {
	s.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.sink == nil {
		return nil
	}
	if err := s.sink.Close(); err != nil {
		return fmt.Errorf("failed to close audio output: %w", err)
	}
	return nil
}

func (s *Service) load(position int) (PCM, error) {
	if !model.ValidPosition(position) {
		return PCM{}, fmt.Errorf("%w: position %d", ErrClipNotFound, position)
	}
	name := ClipName(s.pattern, position)
	if s.fsys == nil {
		return PCM{}, fmt.Errorf("%w: %s", ErrClipNotFound, name)
	}

	f, err := s.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return PCM{}, fmt.Errorf("%w: %s", ErrClipNotFound, name)
		}
		return PCM{}, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	pcm, err := s.decode(f)
	if err != nil {
		return PCM{}, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return pcm, nil
}

// finished is called by the sink when the buffer drains
func (s *Service) finished(pb *playback) {
	s.mu.Lock()
	if s.current == pb {
		s.current = nil
	}
	s.mu.Unlock()

	logger.Debug("narration finished", "position", pb.position)
	pb.finish(nil)
}

func (s *Service) stopPlayback(pb *playback) {
	s.mu.Lock()
	if s.current != pb {
		s.mu.Unlock()
		return
	}
	s.current = nil
	s.sink.Stop()
	s.mu.Unlock()

	pb.finish(ErrStopped)
}
