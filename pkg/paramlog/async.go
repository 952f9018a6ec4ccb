package paramlog

import (
	"context"
	"sync"
	"time"
)

// BatchSink stores entries in bulk.
type BatchSink interface {
	Configure(destination, format string) error
	AppendBatch(ctx context.Context, entries []Entry) error
}

// AsyncOptions tunes AsyncSink. Zero values select the defaults.
type AsyncOptions struct {
	BufferSize     int           // entries queued before Append writes synchronously
	BatchSize      int           // entries per batch
	BatchTimeout   time.Duration // max wait for a partial batch
	StorageTimeout time.Duration // per-batch write timeout
	OnError        func(error)   // called with failed batch writes
}

// AsyncSink queues entries and writes them in batches from one goroutine.
type AsyncSink struct {
	next    BatchSink
	opts    AsyncOptions
	entries chan Entry
	flush   chan chan error
	done    chan struct{}
	wg      sync.WaitGroup

	// mu guards closed. Append holds it while enqueueing so Close never
	// returns with an accepted entry left behind the worker's final drain.
	mu     sync.RWMutex
	closed bool
}

// NewAsyncSink starts the batching worker. Call Close to drain it.
func NewAsyncSink(next BatchSink, opts AsyncOptions) *AsyncSink {
	if next == nil {
		panic(ErrNilSink)
	}
	if opts.BufferSize <= 0 {
		opts.BufferSize = 1000
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 100
	}
	if opts.BatchTimeout <= 0 {
		opts.BatchTimeout = 100 * time.Millisecond
	}
	if opts.StorageTimeout <= 0 {
		opts.StorageTimeout = 5 * time.Second
	}

	s := &AsyncSink{
		next:    next,
		opts:    opts,
		entries: make(chan Entry, opts.BufferSize),
		flush:   make(chan chan error),
		done:    make(chan struct{}),
	}
	s.wg.Add(1)
	go s.worker()
	return s
}

func (s *AsyncSink) Configure(destination, format string) error {
	return s.next.Configure(destination, format)
}

// Append queues e. A full queue falls back to a synchronous write. Every
// entry accepted before Close is written by the final drain.
func (s *AsyncSink) Append(ctx context.Context, e Entry) error {
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return ErrSinkClosed
	}
	select {
	case s.entries <- e:
		s.mu.RUnlock()
		return nil
	default:
	}
	s.mu.RUnlock()

	return s.next.AppendBatch(ctx, []Entry{e})
}

// Flush writes the queued entries and waits for the result.
func (s *AsyncSink) Flush(ctx context.Context) error {
	result := make(chan error, 1)
	select {
	case s.flush <- result:
	case <-s.done:
		return ErrSinkClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting entries, writes what is queued and waits for the
// worker until ctx expires.
func (s *AsyncSink) Close(ctx context.Context) error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.done)
	}
	s.mu.Unlock()

	stopped := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *AsyncSink) worker() {
	defer s.wg.Done()

	batch := make([]Entry, 0, s.opts.BatchSize)
	ticker := time.NewTicker(s.opts.BatchTimeout)
	defer ticker.Stop()

	write := func() error {
		if len(batch) == 0 {
			return nil
		}
		ctx, cancel := context.WithTimeout(context.Background(), s.opts.StorageTimeout)
		defer cancel()

		err := s.next.AppendBatch(ctx, batch)
		if err != nil && s.opts.OnError != nil {
			s.opts.OnError(err)
		}
		clear(batch)
		batch = batch[:0]
		return err
	}

	for {
		select {
		case e := <-s.entries:
			batch = append(batch, e)
			if len(batch) >= s.opts.BatchSize {
				_ = write()
			}

		case result := <-s.flush:
			batch = s.drain(batch)
			result <- write()

		case <-ticker.C:
			_ = write()

		case <-s.done:
			batch = s.drain(batch)
			_ = write()
			return
		}
	}
}

// drain moves every queued entry into batch without blocking.
func (s *AsyncSink) drain(batch []Entry) []Entry {
	for {
		select {
		case e := <-s.entries:
			batch = append(batch, e)
		default:
			return batch
		}
	}
}
