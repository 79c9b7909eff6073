package builder

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"structmapper/classmap"
	"structmapper/internal/logging"
	"structmapper/introspect"
	"structmapper/options"
)

// Builder creates default class maps and fills gaps in declared ones.
// It holds no mutable state and is safe for concurrent use; each class map
// is mutated only by the pass resolving it.
type Builder struct {
	env Env
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger replaces the component logger.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Builder) {
		b.env.Log = l
	}
}

// WithExclusion replaces the member-name exclusion predicate derived from
// the configuration.
func WithExclusion(ex introspect.Exclusion) Option {
	return func(b *Builder) {
		b.env.Exclude = ex
	}
}

// New creates a Builder. A nil cfg means classmap.DefaultConfiguration. A
// nil directives falls back to the oracle when it also implements
// introspect.DirectiveSource.
func New(
	cfg *classmap.Configuration,
	oracle introspect.Oracle,
	directives introspect.DirectiveSource,
	opts ...Option,
) *Builder {
	if cfg == nil {
		def := classmap.DefaultConfiguration()
		cfg = &def
	}

	if directives == nil {
		if ds, ok := oracle.(introspect.DirectiveSource); ok {
			directives = ds
		} else {
			directives = noDirectives{}
		}
	}

	b := &Builder{
		env: Env{
			Config:     cfg,
			Oracle:     oracle,
			Directives: directives,
			Exclude:    cfg.Exclusion(),
			Log:        logging.GetLogger("builder"),
		},
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Configuration returns the global configuration.
func (b *Builder) Configuration() *classmap.Configuration {
	return b.env.Config
}

// NewClass describes t, seeded from the global configuration.
func (b *Builder) NewClass(t introspect.Type) *classmap.Class {
	return &classmap.Class{
		Type:           t,
		Shape:          b.env.Oracle.Shape(t),
		BeanFactory:    b.env.Config.BeanFactory,
		MapNull:        options.FromBool(b.env.Config.MapNull),
		MapEmptyString: options.FromBool(b.env.Config.MapEmptyString),
	}
}

// CreateDefaultClassMap builds a class map for a pair that was never
// declared, running the build-time pipeline.
func (b *Builder) CreateDefaultClassMap(src, dest introspect.Type) (*classmap.ClassMap, error) {
	cm := classmap.New(b.env.Config, b.NewClass(src), b.NewClass(dest))

	if err := b.Resolve(cm, buildTimeGenerators); err != nil {
		return nil, err
	}

	return cm, nil
}

// AddDefaultFieldMappings runs the run-time pipeline over every declared
// class map. All maps are processed; failures are joined.
func (b *Builder) AddDefaultFieldMappings(mappings *classmap.ClassMappings) error {
	var errs []error

	for _, cm := range mappings.All() {
		if err := b.Resolve(cm, runTimeGenerators); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// ClassMapFor returns the class map registered for the pair, creating and
// registering a default one on first use. Concurrent callers for the same
// pair share a single resolution.
func (b *Builder) ClassMapFor(
	mappings *classmap.ClassMappings,
	src, dest introspect.Type,
) (*classmap.ClassMap, error) {
	return mappings.GetOrCreate(src, dest, func() (*classmap.ClassMap, error) {
		return b.CreateDefaultClassMap(src, dest)
	})
}

// Resolve runs generators over cm in order. Nothing happens unless cm wants
// wildcard inference, checked once on entry. The pass stops at the first
// accepting generator that reports itself terminal.
func (b *Builder) Resolve(cm *classmap.ClassMap, generators []Generator) error {
	env := b.env
	env.Log = b.env.Log.With().Stringer("pair", cm).Logger()

	if !cm.Wildcard() {
		env.Log.Trace().Msg("Wildcard disabled, nothing to resolve")
		return nil
	}

	for _, g := range generators {
		if !g.Accepts(cm) {
			continue
		}

		terminal, err := g.Apply(cm, &env)
		if err != nil {
			return fmt.Errorf("resolve %s: %s: %w", cm, g.Name(), err)
		}

		env.Log.Debug().
			Str("generator", g.Name()).
			Bool("terminal", terminal).
			Int("fields", cm.Len()).
			Msg("Generator applied")

		if terminal {
			return nil
		}
	}

	return nil
}

type noDirectives struct{}

func (noDirectives) TypeOptions(introspect.Type) (*options.Bundle, error) { return nil, nil }

func (noDirectives) PropertyDirective(introspect.Type, introspect.Property) (introspect.Directive, bool) {
	return introspect.Directive{}, false
}

func (noDirectives) FieldDirective(introspect.Type, introspect.Field) (introspect.Directive, bool) {
	return introspect.Directive{}, false
}
