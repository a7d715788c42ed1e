package clicklog

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	domainClicklog "github.com/NeuralTrust/ClickGuard/pkg/domain/clicklog"
	"github.com/sirupsen/logrus"
)

const (
	DefaultBufferSize    = 4096
	DefaultBatchSize     = 100
	DefaultFlushInterval = 2 * time.Second
	DefaultWorkers       = 2
)

type Config struct {
	BufferSize    int           `mapstructure:"buffer_size"`
	BatchSize     int           `mapstructure:"batch_size"`
	FlushInterval time.Duration `mapstructure:"flush_interval"`
	Workers       int           `mapstructure:"workers"`
}

// Writer persists click logs off the request path. Entries are dropped
// rather than blocking when the buffer is full.
//
//go:generate mockery --name=Writer --dir=. --output=./mocks --filename=writer_mock.go --case=underscore --with-expecter
type Writer interface {
	Write(entry *domainClicklog.Entry) bool
	Start()
	Shutdown(ctx context.Context) error
}

type writer struct {
	logger *logrus.Logger
	repo   domainClicklog.Repository
	cfg    Config

	mu      sync.RWMutex
	closed  bool
	entries chan *domainClicklog.Entry
	wg      sync.WaitGroup
	dropped atomic.Int64
}

func NewWriter(logger *logrus.Logger, repo domainClicklog.Repository, cfg Config) Writer {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = DefaultBufferSize
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = DefaultFlushInterval
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	return &writer{
		logger:  logger,
		repo:    repo,
		cfg:     cfg,
		entries: make(chan *domainClicklog.Entry, cfg.BufferSize),
	}
}

func (w *writer) Write(entry *domainClicklog.Entry) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return false
	}
	select {
	case w.entries <- entry:
		return true
	default:
		n := w.dropped.Add(1)
		w.logger.WithFields(logrus.Fields{
			"ip":      entry.IP,
			"dropped": n,
		}).Warn("click log buffer is full, dropping entry")
		return false
	}
}

func (w *writer) Start() {
	for i := 0; i < w.cfg.Workers; i++ {
		w.wg.Add(1)
		go w.loop(i)
	}
}

func (w *writer) loop(id int) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.cfg.FlushInterval)
	defer ticker.Stop()

	batch := make([]*domainClicklog.Entry, 0, w.cfg.BatchSize)
	for {
		select {
		case entry, ok := <-w.entries:
			if !ok {
				w.flush(id, batch)
				return
			}
			batch = append(batch, entry)
			if len(batch) >= w.cfg.BatchSize {
				w.flush(id, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				w.flush(id, batch)
				batch = batch[:0]
			}
		}
	}
}

func (w *writer) flush(id int, batch []*domainClicklog.Entry) {
	if len(batch) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := w.repo.CreateBatch(ctx, batch); err != nil {
		w.logger.WithError(err).WithFields(logrus.Fields{
			"worker": id,
			"size":   len(batch),
		}).Error("failed to persist click logs")
	}
}

// Shutdown stops accepting entries and waits for buffered ones to be flushed.
func (w *writer) Shutdown(ctx context.Context) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.entries)
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		w.logger.Info("click log writer stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
