// Package player paces a sort run with a timer and publishes every step to
// its observers.
package player

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/san-kum/sortviz/internal/shuffle"
	"github.com/san-kum/sortviz/internal/sorting"
)

const DefaultCount = 16

var ErrInvalidCount = errors.New("player: count must be positive")

type State int

const (
	Idle State = iota
	Running
	Paused
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Frame is what observers receive: the applied step and where it sits in its run.
type Frame struct {
	RunID uuid.UUID
	Seq   int
	Step  sorting.Step
	State State
}

// Observer is called for every applied step, in order, while the step's run
// is still current. Implementations must not block or call back into the Player.
type Observer interface {
	OnStep(f Frame)
}

type ObserverFunc func(f Frame)

func (fn ObserverFunc) OnStep(f Frame) { fn(f) }

type Option func(*Player)

func WithCount(n int) Option { return func(p *Player) { p.count = n } }

func WithDelay(d time.Duration) Option {
	return func(p *Player) {
		p.delay = d
		p.delaySet = true
	}
}

func WithSeed(seed int64) Option {
	return func(p *Player) { p.shuffler = shuffle.NewShuffler(seed) }
}

func WithShuffler(s *shuffle.Shuffler) Option { return func(p *Player) { p.shuffler = s } }

func WithLogger(log logr.Logger) Option { return func(p *Player) { p.log = log } }

func WithObserver(o Observer) Option {
	return func(p *Player) { p.observers = append(p.observers, o) }
}

type run struct {
	id     uuid.UUID
	gen    sorting.Generator
	timer  *time.Timer
	seq    int
	done   chan struct{}
	closed bool
}

func (r *run) close() {
	if r.timer != nil {
		r.timer.Stop()
	}
	if !r.closed {
		r.closed = true
		close(r.done)
	}
}

type Player struct {
	mu        sync.Mutex
	alg       sorting.Algorithm
	count     int
	delay     time.Duration
	delaySet  bool
	shuffler  *shuffle.Shuffler
	log       logr.Logger
	observers []Observer

	run   *run
	state State
	frame Frame
}

func New(alg sorting.Algorithm, opts ...Option) (*Player, error) {
	if _, err := sorting.ParseAlgorithm(string(alg)); err != nil {
		return nil, err
	}
	p := &Player{
		alg:   alg,
		count: DefaultCount,
		log:   logr.Discard(),
		state: Idle,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.count <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, p.count)
	}
	if !p.delaySet {
		p.delay = sorting.DefaultDelay(alg)
	}
	if p.delay < 0 {
		p.delay = 0
	}
	if p.shuffler == nil {
		p.shuffler = shuffle.NewShuffler(time.Now().UnixNano())
	}
	p.frame = Frame{Step: sorting.Initial(nil), State: Idle}
	return p, nil
}

func (p *Player) AddObserver(o Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, o)
}

// Start begins a new run over values, or over a fresh shuffle when values is nil.
// Any run in progress is discarded first.
func (p *Player) Start(values []int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.startLocked(values)
}

// Reset cancels the pending tick of the current run and starts over.
func (p *Player) Reset(values []int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.run != nil {
		p.log.V(1).Info("run reset", "run", p.run.id, "seq", p.run.seq)
	}
	return p.startLocked(values)
}

func (p *Player) startLocked(values []int) error {
	if values == nil {
		perm, err := p.shuffler.Permutation(p.count)
		if err != nil {
			return err
		}
		values = perm
	}

	gen, err := sorting.New(p.alg, values)
	if err != nil {
		return err
	}

	p.stopLocked()
	r := &run{
		id:   uuid.New(),
		gen:  gen,
		done: make(chan struct{}),
	}
	p.run = r
	p.state = Running
	p.apply(r, sorting.Initial(values))
	p.schedule(r, p.delay)

	p.log.V(1).Info("run started", "run", r.id, "algorithm", p.alg, "size", len(values), "delay", p.delay)
	return nil
}

// Stop cancels the current run without starting another.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Player) stopLocked() {
	if p.run == nil {
		return
	}
	p.run.close()
	p.run = nil
	p.state = Idle
	p.frame.State = Idle
}

func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Running {
		return
	}
	p.run.timer.Stop()
	p.state = Paused
	p.frame.State = Paused
}

func (p *Player) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Paused {
		return
	}
	p.state = Running
	p.frame.State = Running
	p.schedule(p.run, p.delay)
}

// SetDelay changes the pacing from the next scheduled tick on.
func (p *Player) SetDelay(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if d < 0 {
		d = 0
	}
	p.delay = d
	p.delaySet = true
}

func (p *Player) Delay() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.delay
}

// SetAlgorithm switches the algorithm used by the next Start or Reset.
// Without an explicit delay the pacing follows the new algorithm.
func (p *Player) SetAlgorithm(alg sorting.Algorithm) error {
	if _, err := sorting.ParseAlgorithm(string(alg)); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.alg = alg
	if !p.delaySet {
		p.delay = sorting.DefaultDelay(alg)
	}
	return nil
}

func (p *Player) Algorithm() sorting.Algorithm {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.alg
}

func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Snapshot returns the most recently applied frame.
func (p *Player) Snapshot() Frame {
	p.mu.Lock()
	defer p.mu.Unlock()
	f := p.frame
	f.Step.Array = append([]int(nil), p.frame.Step.Array...)
	return f
}

// Done is closed when the current run finishes or is discarded.
func (p *Player) Done() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.run == nil {
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	return p.run.done
}

func (p *Player) schedule(r *run, d time.Duration) {
	r.timer = time.AfterFunc(d, func() { p.tick(r) })
}

func (p *Player) tick(r *run) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// a reset or stop may have raced with this timer
	if p.run != r || p.state != Running {
		return
	}

	step, ok := r.gen.Next()
	if !ok {
		p.finishLocked(r)
		return
	}

	r.seq++
	if step.Terminal() {
		p.state = Finished
	}
	p.apply(r, step)

	if step.Terminal() {
		p.finishLocked(r)
		return
	}

	d := p.delay
	if step.FastForward {
		d = 0
	}
	p.schedule(r, d)
}

func (p *Player) apply(r *run, step sorting.Step) {
	p.frame = Frame{
		RunID: r.id,
		Seq:   r.seq,
		Step:  step,
		State: p.state,
	}
	for _, o := range p.observers {
		o.OnStep(p.frame)
	}
}

func (p *Player) finishLocked(r *run) {
	p.state = Finished
	p.frame.State = Finished
	r.close()
	p.log.V(1).Info("run finished", "run", r.id, "steps", r.seq)
}
