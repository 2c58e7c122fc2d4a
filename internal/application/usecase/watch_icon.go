package usecase

import (
	"context"
	"errors"
	"iter"

	"github.com/bnema/webpageicon/internal/domain/entity"
)

// IconResolver is the single-shot resolution the progress emitters wrap.
type IconResolver interface {
	Resolve(ctx context.Context, domain string) (*entity.Icon, error)
}

// WatchIconUseCase turns a single resolution into a sequence of progress events.
type WatchIconUseCase struct {
	resolver IconResolver
}

// NewWatchIconUseCase creates a new WatchIconUseCase.
func NewWatchIconUseCase(resolver IconResolver) *WatchIconUseCase {
	return &WatchIconUseCase{resolver: resolver}
}

// Observe is the publisher form. The returned channel already holds
// ProgressStarted, then receives exactly one terminal event and is closed.
// Errors are delivered as ProgressFailed values.
//
// An empty domain yields only ProgressFailed(ErrInvalidURL), without
// ProgressStarted and without calling the resolver.
func (uc *WatchIconUseCase) Observe(ctx context.Context, domain string) <-chan entity.ProgressEvent {
	// Room for both events so the resolving goroutine never blocks on a
	// consumer that stopped reading.
	events := make(chan entity.ProgressEvent, 2)

	if domain == "" {
		events <- entity.Failed(entity.NewIconError(entity.IconErrorKindInvalidURL, domain, errors.New("empty domain")))
		close(events)
		return events
	}

	events <- entity.Started()
	go func() {
		defer close(events)
		icon, err := uc.resolver.Resolve(ctx, domain)
		if err != nil {
			events <- entity.Failed(err)
			return
		}
		events <- entity.Completed(icon)
	}()
	return events
}

// Stream is the iterator form. It always yields ProgressStarted first, then
// either ProgressCompleted or a final (zero event, error) pair.
func (uc *WatchIconUseCase) Stream(ctx context.Context, domain string) iter.Seq2[entity.ProgressEvent, error] {
	return func(yield func(entity.ProgressEvent, error) bool) {
		if !yield(entity.Started(), nil) {
			return
		}
		icon, err := uc.resolver.Resolve(ctx, domain)
		if err != nil {
			yield(entity.ProgressEvent{}, err)
			return
		}
		yield(entity.Completed(icon), nil)
	}
}
