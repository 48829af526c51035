package theme

import (
	"context"
	"sync"

	"github.com/phyten/termtheme/internal/logging"
)

// Probe is one way of finding out the terminal background.
type Probe interface {
	Source() Source
	Probe(ctx context.Context) Answer
}

type funcProbe struct {
	source Source
	fn     func(context.Context) Answer
}

// ProbeFunc adapts a function to the Probe interface.
func ProbeFunc(source Source, fn func(context.Context) Answer) Probe {
	return funcProbe{source: source, fn: fn}
}

func (p funcProbe) Source() Source { return p.source }

func (p funcProbe) Probe(ctx context.Context) Answer { return p.fn(ctx) }

// Detector runs its probe list at most once and remembers the result for its
// lifetime. It is safe for concurrent use; concurrent first calls wait for the
// single run to finish.
type Detector struct {
	probes []Probe
	once   sync.Once
	result Result
}

// NewDetector returns a Detector over probes, consulted in order.
func NewDetector(probes ...Probe) *Detector {
	return &Detector{probes: append([]Probe(nil), probes...)}
}

// Detect returns the cached result, running the probes on the first call.
func (d *Detector) Detect(ctx context.Context) Result {
	d.once.Do(func() {
		d.result = run(ctx, d.probes)
	})
	return d.result.clone()
}

// Step records what one probe answered during a Trace.
type Step struct {
	Source Source
	Answer Answer
}

// Trace asks every probe in order, without stopping at the first answer and
// without touching the cache.
func (d *Detector) Trace(ctx context.Context) []Step {
	steps := make([]Step, 0, len(d.probes))
	for _, p := range d.probes {
		steps = append(steps, Step{Source: p.Source(), Answer: ask(ctx, p)})
	}
	return steps
}

func run(ctx context.Context, probes []Probe) Result {
	log := logging.FromContext(ctx)
	for _, p := range probes {
		answer := ask(ctx, p)
		if !answer.OK() {
			log.Debug().Str("source", string(p.Source())).Msg("probe has no answer")
			continue
		}
		res := answer.result(p.Source())
		log.Debug().
			Str("source", string(res.Source)).
			Str("mode", res.Mode.String()).
			Str("bg", res.Background()).
			Msg("background detected")
		return res
	}
	// Nothing answered: assume dark.
	log.Debug().Msg("no probe answered, defaulting to dark")
	return Result{Mode: Dark, Source: SourceDefault}
}

func ask(ctx context.Context, p Probe) (answer Answer) {
	defer func() {
		if r := recover(); r != nil {
			logging.FromContext(ctx).Error().
				Str("source", string(p.Source())).
				Interface("panic", r).
				Msg("probe panicked")
			answer = NotAvailable()
		}
	}()
	return p.Probe(ctx)
}
