package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/reveal/pkg/animation"
	"github.com/go-drift/reveal/pkg/geometry"
	"github.com/go-drift/reveal/pkg/mask"
	"github.com/go-drift/reveal/pkg/preview"
)

const (
	defaultWidth  = 400
	defaultHeight = 300
	defaultFrames = 60
	frameInterval = 16 * time.Millisecond
)

// simulation describes a mask session replayed without a display: the
// container is mounted, the pointer events are dispatched and a fixed
// number of frames is stepped on a synthetic clock.
type simulation struct {
	width   float64
	height  float64
	pointer *geometry.Offset
	enter   bool
	focus   bool
	cursor  bool
	frames  int
}

func newSimulation() *simulation {
	return &simulation{frames: defaultFrames}
}

// parseFlag consumes the simulation flag at args[i], if it is one, and
// returns the index of the last argument used.
func (s *simulation) parseFlag(args []string, i int) (int, bool, error) {
	switch args[i] {
	case "--enter":
		s.enter = true
	case "--focus":
		s.focus = true
	case "--cursor":
		s.cursor = true
	case "--width", "--height", "--frames", "--at":
		value, err := flagValue(args, i, args[i])
		if err != nil {
			return i, true, err
		}
		if err := s.set(args[i], value); err != nil {
			return i, true, err
		}
		return i + 1, true, nil
	default:
		return i, false, nil
	}
	return i, true, nil
}

func (s *simulation) set(flag, value string) error {
	switch flag {
	case "--at":
		x, y, ok := strings.Cut(value, ",")
		px, errX := strconv.ParseFloat(strings.TrimSpace(x), 64)
		py, errY := strconv.ParseFloat(strings.TrimSpace(y), 64)
		if !ok || errX != nil || errY != nil {
			return fmt.Errorf("--at wants X,Y, got %q", value)
		}
		s.pointer = &geometry.Offset{X: px, Y: py}
	case "--frames":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("--frames wants a non-negative integer, got %q", value)
		}
		s.frames = n
	default:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || !(f > 0 && f <= preview.MaxSide) {
			return fmt.Errorf("%s wants a number of pixels in (0, %d], got %q", flag, preview.MaxSide, value)
		}
		if flag == "--width" {
			s.width = f
		} else {
			s.height = f
		}
	}
	return nil
}

// simHost is a fixed container that also hands document pointer events to
// the engine when it asks for them.
type simHost struct {
	mask.StaticHost
	document func(x, y float64)
}

func (h *simHost) ListenDocumentPointer(fn func(float64, float64)) mask.Subscription {
	h.document = fn
	return mask.SubscriptionFunc(func() { h.document = nil })
}

// result is the state of the mask after the last simulated frame.
type result struct {
	Vars      mask.Vars
	Animating bool
}

// run replays the session against cfg and returns the final state.
func (s *simulation) run(env *Env, cfg mask.Config, size geometry.Size) result {
	if s.cursor {
		cfg.WithCursorMask = true
	}
	if s.width > 0 {
		size.Width = s.width
	}
	if s.height > 0 {
		size.Height = s.height
	}

	// Time only moves when a frame is stepped.
	now := time.Unix(0, 0)
	prev := animation.SetClock(animation.ClockFunc(func() time.Time { return now }))
	defer animation.SetClock(prev)

	host := &simHost{StaticHost: mask.StaticHost{Rect: geometry.RectFromLTWH(0, 0, size.Width, size.Height)}}
	e := mask.New(cfg, host, mask.WithLogger(env.Log))
	e.Mount()
	defer e.Unmount()

	if s.enter {
		e.PointerEnter()
	}
	if s.focus {
		e.Focus()
	}
	if p := s.pointer; p != nil {
		if host.document != nil {
			host.document(p.X, p.Y)
		} else {
			e.PointerMove(p.X, p.Y)
		}
	}
	for range s.frames {
		now = now.Add(frameInterval)
		animation.StepTickers()
	}
	env.Log.Debug("simulation finished", "frames", s.frames, "animating", e.Animating(), "tickers", animation.RunningTickers())
	return result{Vars: e.Vars(), Animating: e.Animating()}
}
