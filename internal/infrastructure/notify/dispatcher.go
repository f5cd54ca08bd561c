// Package notify delivers lifecycle events to observers best-effort: a
// sharded dispatcher keeps per-applicant ordering and a sink failure is
// logged, never propagated into the transition that produced the event.
package notify

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/peopleops/onboarding-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Sink is the delivery target for lifecycle events (Redis pub/sub in
// production, a recorder in tests).
type Sink interface {
	Deliver(ctx context.Context, event ports.LifecycleEvent) error
}

// Dispatcher routes lifecycle events to a fixed set of workers using
// consistent hashing on the applicant id, guaranteeing per-applicant event
// ordering. It implements ports.Notifier.
type Dispatcher struct {
	workers []chan ports.LifecycleEvent
	sink    Sink
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink Sink, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.LifecycleEvent, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.LifecycleEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Publish enqueues an event on the worker responsible for its applicant.
// When the worker's buffer is full the event is dropped with a warning:
// notification is best-effort and must never block a transition.
func (d *Dispatcher) Publish(event ports.LifecycleEvent) {
	select {
	case d.workers[d.shardIndex(event.ApplicantID)] <- event:
	default:
		d.log.Warn().
			Str("applicant_id", event.ApplicantID).
			Str("transition", string(event.Transition)).
			Msg("notification buffer full, event dropped")
	}
}

// shardIndex maps an applicant id deterministically to a worker index.
func (d *Dispatcher) shardIndex(applicantID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(applicantID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.LifecycleEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.sink.Deliver(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("applicant_id", event.ApplicantID).
					Int("worker_id", id).
					Msg("event delivery failed")
			}
		}
	}
}
