package switches

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/on-the-ground/switchcase/cases"
	"go.uber.org/zap"
)

// Switch is an ordered set of cases resolved to the value of the first selected one.
//
// Cases are scanned in the order they were added. In cached mode, the default,
// the first successful result is kept and every later Eval returns it without
// running any body again.
//
// A Switch must be defined with New or Of; the zero value is rejected with
// ErrInstantiation. Cases must all be added before the switch is evaluated
// from more than one goroutine.
type Switch[T any] struct {
	id      string
	cfg     config
	defined bool
	cases   []cases.Case[T]

	mu     sync.Mutex
	result atomic.Pointer[T]
	sealed atomic.Bool
}

// New defines an empty switch.
func New[T any](opts ...Option) *Switch[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Switch[T]{
		id:      uuid.New().String(),
		cfg:     cfg,
		defined: true,
	}
}

// Of defines a switch holding cs, in order, with default options.
func Of[T any](cs ...cases.Case[T]) *Switch[T] {
	return New[T]().Add(cs...)
}

// Add appends cases in declaration order.
func (s *Switch[T]) Add(cs ...cases.Case[T]) *Switch[T] {
	s.mustBeOpen()
	s.cases = append(s.cases, cs...)
	return s
}

// Case appends a case built from predicate and body.
func (s *Switch[T]) Case(predicate bool, body func() T) *Switch[T] {
	return s.Add(cases.When(predicate, body))
}

// Named appends a labelled case.
func (s *Switch[T]) Named(label string, predicate bool, body func() T) *Switch[T] {
	return s.Add(cases.Named(label, predicate, body))
}

// Default appends an always-selected case. Cases added after it are unreachable.
func (s *Switch[T]) Default(body func() T) *Switch[T] {
	return s.Add(cases.Otherwise(body))
}

func (s *Switch[T]) mustBeOpen() {
	if s == nil || !s.defined {
		panic(ErrInstantiation)
	}
	if s.sealed.Load() {
		panic(fmt.Errorf("%w: %s", ErrSealed, s.cfg.name))
	}
}

// Eval resolves the switch.
//
// It returns the value of the earliest selected case; cases after it are never
// invoked. If none is selected it returns ErrNoMatch, or the zero value when the
// switch was defined WithExhaustion(ZeroOnExhaustion).
func (s *Switch[T]) Eval() (T, error) {
	var zero T
	if s == nil || !s.defined {
		return zero, ErrInstantiation
	}
	if !s.cfg.cached {
		v, _, err := s.scan()
		return v, err
	}

	if v := s.result.Load(); v != nil {
		s.cfg.logger.Debug("cache hit", s.fields()...)
		return *v, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if v := s.result.Load(); v != nil {
		return *v, nil
	}
	v, matched, err := s.scan()
	if err != nil || !matched {
		return v, err
	}
	s.result.Store(&v)
	return v, nil
}

// MustEval is the panic-on-failure variant of Eval.
func (s *Switch[T]) MustEval() T {
	v, err := s.Eval()
	if err != nil {
		panic(err)
	}
	return v
}

// scan invokes cases in order until one is selected.
func (s *Switch[T]) scan() (T, bool, error) {
	for i, c := range s.cases {
		v, ok := c.Invoke()
		if !ok {
			continue
		}
		s.sealed.Store(true)
		s.cfg.logger.Debug("case selected", append(s.fields(),
			zap.Int("index", i),
			zap.String("label", labelOf(i, c)),
		)...)
		return v, true, nil
	}

	s.cfg.logger.Debug("no case matched", append(s.fields(),
		zap.Int("scanned", len(s.cases)),
		zap.Stringer("exhaustion", s.cfg.exhaustion),
	)...)

	var zero T
	if s.cfg.exhaustion == ZeroOnExhaustion {
		return zero, false, nil
	}
	return zero, false, fmt.Errorf("%w: %s scanned %d cases", ErrNoMatch, s.cfg.name, len(s.cases))
}

func (s *Switch[T]) fields() []zap.Field {
	return []zap.Field{
		zap.String("switch_id", s.id),
		zap.String("switch", s.cfg.name),
	}
}

func labelOf[T any](i int, c cases.Case[T]) string {
	if c.Label() != "" {
		return c.Label()
	}
	return fmt.Sprintf("#%d", i)
}

// ID is a unique identifier assigned at definition, reported in log entries.
// It is empty for a switch that was not defined.
func (s *Switch[T]) ID() string {
	if s == nil {
		return ""
	}
	return s.id
}

func (s *Switch[T]) Name() string {
	if s == nil {
		return ""
	}
	return s.cfg.name
}

// Len returns the number of cases.
func (s *Switch[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.cases)
}

// Evaluated reports whether a case has been selected at least once.
func (s *Switch[T]) Evaluated() bool {
	return s != nil && s.sealed.Load()
}
