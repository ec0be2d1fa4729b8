package source

import (
	"context"

	"empdir/internal/domain/directory"
)

type FetchObserver interface {
	RecordFetch(err error)
}

type observed struct {
	inner    directory.Source
	observer FetchObserver
}

// Observe reports every fetch outcome to observer.
func Observe(src directory.Source, observer FetchObserver) directory.Source {
	if observer == nil {
		return src
	}
	return &observed{inner: src, observer: observer}
}

func (o *observed) FetchRecords(ctx context.Context) ([]directory.RawRecord, error) {
	records, err := o.inner.FetchRecords(ctx)
	o.observer.RecordFetch(err)
	return records, err
}

func (o *observed) Ping(ctx context.Context) error {
	if pinger, ok := o.inner.(directory.Pinger); ok {
		return pinger.Ping(ctx)
	}
	return nil
}
