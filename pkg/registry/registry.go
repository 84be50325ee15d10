package registry

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/aretw0/knobs/pkg/domain"
)

// Registry holds named parameters partitioned by kind into three mappings.
//
// A Registry is mutated in place and is not safe for concurrent use. Callers that
// share one across goroutines must serialize access themselves.
type Registry struct {
	bools    map[string]*domain.BoolParameter
	numerics map[string]*domain.NumericParameter
	strings  map[string]*domain.StringParameter

	descriptions map[string]string

	hooks  domain.Hooks
	logger *slog.Logger
	now    func() time.Time
}

// Option defines a functional option for configuring the Registry.
type Option func(*Registry)

// WithLogger sets a structured logger for assignment diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(r *Registry) {
		r.hooks = hooks
	}
}

// New creates a new empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		bools:    make(map[string]*domain.BoolParameter),
		numerics: make(map[string]*domain.NumericParameter),
		strings:  make(map[string]*domain.StringParameter),

		descriptions: make(map[string]string),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// --- Registration ---

func (r *Registry) checkName(name string) error {
	if name == "" || strings.Contains(name, "=") {
		return fmt.Errorf("%w: %q", domain.ErrInvalidName, name)
	}
	if kind, ok := r.Lookup(name); ok {
		return fmt.Errorf("%w: %q is already registered as %s", domain.ErrDuplicateParameter, name, kind)
	}
	return nil
}

// AddBool registers a boolean parameter under name.
func (r *Registry) AddBool(name string, p *domain.BoolParameter) error {
	if err := r.checkName(name); err != nil {
		return err
	}
	r.bools[name] = p
	return nil
}

// AddNumeric registers a numeric parameter under name.
func (r *Registry) AddNumeric(name string, p *domain.NumericParameter) error {
	if err := r.checkName(name); err != nil {
		return err
	}
	r.numerics[name] = p
	return nil
}

// AddString registers an enumerated string parameter under name.
func (r *Registry) AddString(name string, p *domain.StringParameter) error {
	if err := r.checkName(name); err != nil {
		return err
	}
	r.strings[name] = p
	return nil
}

// DefineBool creates and registers a boolean parameter.
func (r *Registry) DefineBool(name string, defaultValue bool) error {
	return r.AddBool(name, domain.NewBoolParameter(defaultValue))
}

// DefineNumeric creates and registers a numeric parameter.
func (r *Registry) DefineNumeric(name string, defaultValue, lower, upper, step float64) error {
	p, err := domain.NewNumericParameter(defaultValue, lower, upper, step)
	if err != nil {
		return fmt.Errorf("parameter %q: %w", name, err)
	}
	return r.AddNumeric(name, p)
}

// DefineString creates and registers an enumerated string parameter.
func (r *Registry) DefineString(name, defaultValue string, possibilities []string) error {
	p, err := domain.NewStringParameter(defaultValue, possibilities)
	if err != nil {
		return fmt.Errorf("parameter %q: %w", name, err)
	}
	return r.AddString(name, p)
}

// SetDescription attaches human readable text to a registered parameter.
// An empty text removes it.
func (r *Registry) SetDescription(name, text string) error {
	if _, ok := r.Lookup(name); !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownParameter, name)
	}
	if text == "" {
		delete(r.descriptions, name)
		return nil
	}
	r.descriptions[name] = text
	return nil
}

// Description returns the text attached to name, if any.
func (r *Registry) Description(name string) string {
	return r.descriptions[name]
}

// --- Introspection ---

// Lookup reports which mapping holds name, checking booleans, then numerics, then
// strings.
func (r *Registry) Lookup(name string) (domain.Kind, bool) {
	if _, ok := r.bools[name]; ok {
		return domain.KindBool, true
	}
	if _, ok := r.numerics[name]; ok {
		return domain.KindNumeric, true
	}
	if _, ok := r.strings[name]; ok {
		return domain.KindString, true
	}
	return "", false
}

// Names returns every registered name in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.Len())
	for name := range r.bools {
		names = append(names, name)
	}
	for name := range r.numerics {
		names = append(names, name)
	}
	for name := range r.strings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered parameters.
func (r *Registry) Len() int {
	return len(r.bools) + len(r.numerics) + len(r.strings)
}

// BoolParameter returns the boolean parameter registered under name.
func (r *Registry) BoolParameter(name string) (*domain.BoolParameter, error) {
	p, ok := r.bools[name]
	if !ok {
		return nil, unknown(domain.KindBool, name)
	}
	return p, nil
}

// NumericParameter returns the numeric parameter registered under name, e.g. to
// adjust its bounds.
func (r *Registry) NumericParameter(name string) (*domain.NumericParameter, error) {
	p, ok := r.numerics[name]
	if !ok {
		return nil, unknown(domain.KindNumeric, name)
	}
	return p, nil
}

// StringParameter returns the string parameter registered under name.
func (r *Registry) StringParameter(name string) (*domain.StringParameter, error) {
	p, ok := r.strings[name]
	if !ok {
		return nil, unknown(domain.KindString, name)
	}
	return p, nil
}

// --- Typed getters ---

// Param returns the value of the numeric parameter name.
// Returns an error wrapping domain.ErrUnknownParameter if it is not registered.
func (r *Registry) Param(name string) (float64, error) {
	p, err := r.NumericParameter(name)
	if err != nil {
		return 0, err
	}
	return p.Get(), nil
}

// ParamBool returns the value of the boolean parameter name.
// Returns an error wrapping domain.ErrUnknownParameter if it is not registered.
func (r *Registry) ParamBool(name string) (bool, error) {
	p, err := r.BoolParameter(name)
	if err != nil {
		return false, err
	}
	return p.Get(), nil
}

// ParamStr returns the value of the string parameter name.
// Returns an error wrapping domain.ErrUnknownParameter if it is not registered.
func (r *Registry) ParamStr(name string) (string, error) {
	p, err := r.StringParameter(name)
	if err != nil {
		return "", err
	}
	return p.Get(), nil
}

func unknown(kind domain.Kind, name string) error {
	return fmt.Errorf("%w: no %s parameter named %q", domain.ErrUnknownParameter, kind, name)
}

// --- Copies ---

// Clone returns a deep copy of the registry sharing its logger and hooks.
func (r *Registry) Clone() *Registry {
	c := New(WithLogger(r.logger), WithHooks(r.hooks))
	c.now = r.now
	for name, p := range r.bools {
		c.bools[name] = p.Clone()
	}
	for name, p := range r.numerics {
		c.numerics[name] = p.Clone()
	}
	for name, p := range r.strings {
		c.strings[name] = p.Clone()
	}
	for name, text := range r.descriptions {
		c.descriptions[name] = text
	}
	return c
}

// Snapshot captures the current value of every parameter.
func (r *Registry) Snapshot() *domain.Snapshot {
	s := domain.NewSnapshot()
	for name, p := range r.bools {
		s.Bools[name] = p.Get()
	}
	for name, p := range r.numerics {
		s.Numerics[name] = p.Get()
	}
	for name, p := range r.strings {
		s.Strings[name] = p.Get()
	}
	return s
}
