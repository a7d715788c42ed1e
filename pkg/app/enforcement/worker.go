package enforcement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/app/notify"
	"github.com/NeuralTrust/ClickGuard/pkg/domain"
	"github.com/NeuralTrust/ClickGuard/pkg/domain/action"
	"github.com/NeuralTrust/ClickGuard/pkg/domain/blocked"
	"github.com/NeuralTrust/ClickGuard/pkg/domain/decision"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/adplatform"
	infraPrometheus "github.com/NeuralTrust/ClickGuard/pkg/infra/prometheus"
	"github.com/NeuralTrust/ClickGuard/pkg/infra/queue"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var DefaultBackoff = []time.Duration{
	5 * time.Second,
	15 * time.Second,
	30 * time.Second,
	60 * time.Second,
}

type Config struct {
	// Backoff holds one delay per attempt; its length is the attempt cap.
	// The delay of the last attempt is never waited.
	Backoff        []time.Duration `mapstructure:"backoff"`
	Concurrency    int             `mapstructure:"concurrency"`
	BlockTTL       time.Duration   `mapstructure:"block_ttl"`
	ExpiryInterval time.Duration   `mapstructure:"expiry_interval"`
	// DrainTimeout bounds how long an in-flight message may keep running
	// after shutdown starts. Zero waits for it to finish.
	DrainTimeout time.Duration `mapstructure:"drain_timeout"`
}

//go:generate mockery --name=Worker --dir=. --output=./mocks --filename=worker_mock.go --case=underscore --with-expecter
type Worker interface {
	Apply(ctx context.Context, msg action.Message) action.Result
	Run(ctx context.Context, consumers ...queue.Consumer) error
	Unblock(ctx context.Context, accountRef, target string, scope decision.Scope) (*blocked.Entry, error)
	ExpireDue(ctx context.Context) (int, error)
}

type worker struct {
	logger   *logrus.Logger
	repo     blocked.Repository
	client   adplatform.Client
	notifier notify.Notifier
	cfg      Config
	now      func() time.Time
	after    func(time.Duration) <-chan time.Time
}

func NewWorker(
	logger *logrus.Logger,
	repo blocked.Repository,
	client adplatform.Client,
	notifier notify.Notifier,
	cfg Config,
) Worker {
	if len(cfg.Backoff) == 0 {
		cfg.Backoff = DefaultBackoff
	}
	return &worker{
		logger:   logger,
		repo:     repo,
		client:   client,
		notifier: notifier,
		cfg:      cfg,
		now:      time.Now,
		after:    time.After,
	}
}

func (w *worker) Apply(ctx context.Context, msg action.Message) action.Result {
	res := w.apply(ctx, msg)
	infraPrometheus.EnforcementTotal.WithLabelValues(string(res.Status)).Inc()
	if res.Attempts > 0 {
		infraPrometheus.EnforcementAttempts.Observe(float64(res.Attempts))
	}
	return res
}

func (w *worker) apply(ctx context.Context, msg action.Message) action.Result {
	fields := logrus.Fields{
		"action_id":   msg.ID,
		"account_ref": msg.AccountRef,
		"target":      msg.Target,
		"scope":       msg.Scope,
	}

	if err := msg.Validate(); err != nil {
		w.logger.WithError(err).WithFields(fields).Error("invalid action message")
		w.alert(ctx, msg, "error", fmt.Sprintf("Rejected block instruction for %s: %v", msg.Target, err))
		return action.Result{Status: action.StatusInvalid, Err: err}
	}

	now := w.now()
	existing, err := w.repo.FindActive(ctx, msg.AccountRef, msg.Target, msg.Scope)
	if err != nil && !domain.IsNotFoundError(err) {
		w.logger.WithError(err).WithFields(fields).Warn("failed to look up blocked entry, applying anyway")
	}
	if err == nil && existing != nil && !existing.Expired(now) {
		if err := w.repo.TouchHit(ctx, existing.ID, now); err != nil {
			w.logger.WithError(err).WithFields(fields).Warn("failed to bump blocked entry hits")
		}
		w.logger.WithFields(fields).Debug("target already blocked")
		return action.Result{Status: action.StatusAlreadyActive, Entry: existing, OperationID: existing.OperationID}
	}

	op, attempts, err := w.blockWithRetry(ctx, msg, fields)
	if err != nil {
		if ctx.Err() != nil {
			return action.Result{Status: action.StatusFailed, Attempts: attempts, Err: err}
		}
		w.logger.WithError(err).WithFields(fields).Error("failed to block target")
		w.alert(ctx, msg, "error", fmt.Sprintf("Failed to block %s on the ad platform. Error: %v", msg.Target, err))
		return action.Result{Status: action.StatusFailed, Attempts: attempts, Err: err}
	}

	entry := &blocked.Entry{
		AccountRef:     msg.AccountRef,
		Target:         msg.Target,
		Scope:          msg.Scope,
		Reason:         msg.Reason,
		Reasons:        pq.StringArray{msg.Reason},
		Active:         true,
		Hits:           1,
		LastSeenAt:     now,
		OperationID:    op.ID,
		AlreadyBlocked: op.AlreadyExists,
	}
	if w.cfg.BlockTTL > 0 {
		expiresAt := now.Add(w.cfg.BlockTTL)
		entry.ExpiresAt = &expiresAt
	}

	if err := w.repo.Upsert(ctx, entry); err != nil {
		w.logger.WithError(err).WithFields(fields).Error("failed to persist blocked entry, message will be redelivered")
		w.compensate(ctx, msg, op, fields)
		w.alert(ctx, msg, "error", fmt.Sprintf("Failed to record block of %s, retrying. Error: %v", msg.Target, err))
		return action.Result{Status: action.StatusRetry, OperationID: op.ID, Attempts: attempts, Err: err}
	}

	w.logger.WithFields(fields).WithFields(logrus.Fields{
		"operation_id":    op.ID,
		"already_blocked": op.AlreadyExists,
		"attempts":        attempts,
	}).Info("target blocked")

	w.publish(ctx, msg, notify.EventIPBlocked, map[string]interface{}{
		"target":          msg.Target,
		"scope":           msg.Scope,
		"reason":          msg.Reason,
		"operation_id":    op.ID,
		"already_blocked": op.AlreadyExists,
	})
	w.alert(ctx, msg, "success", fmt.Sprintf("%s has been blocked on the ad platform. Reason: %s", msg.Target, msg.Reason))

	return action.Result{Status: action.StatusApplied, Entry: entry, OperationID: op.ID, Attempts: attempts}
}

// blockWithRetry waits between attempts without holding the goroutine past
// cancellation. Rejections by the platform are not retried.
func (w *worker) blockWithRetry(ctx context.Context, msg action.Message, fields logrus.Fields) (adplatform.Operation, int, error) {
	maxAttempts := len(w.cfg.Backoff)
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		op, err := w.client.Block(ctx, msg.AccountRef, msg.Target)
		if err == nil {
			return op, attempt, nil
		}
		lastErr = err
		w.logger.WithError(err).WithFields(fields).WithField("attempt", attempt).Warn("block attempt failed")

		if errors.Is(err, adplatform.ErrRejected) {
			return adplatform.Operation{}, attempt, err
		}
		if attempt == maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return adplatform.Operation{}, attempt, ctx.Err()
		case <-w.after(w.cfg.Backoff[attempt-1]):
		}
	}
	return adplatform.Operation{}, maxAttempts, fmt.Errorf("%w after %d attempts: %v", domain.ErrRetriesExhausted, maxAttempts, lastErr)
}

// compensate reverts a block whose persistence failed. Blocks that already
// existed on the platform, or that another delivery has recorded since, are
// left alone.
func (w *worker) compensate(ctx context.Context, msg action.Message, op adplatform.Operation, fields logrus.Fields) {
	if op.AlreadyExists {
		return
	}
	ctx = context.WithoutCancel(ctx)
	if active, err := w.repo.FindActive(ctx, msg.AccountRef, msg.Target, msg.Scope); err == nil && active != nil {
		w.logger.WithFields(fields).Warn("block kept, already recorded by a concurrent delivery")
		return
	}
	if _, err := w.client.Unblock(ctx, msg.AccountRef, msg.Target); err != nil {
		w.logger.WithError(err).WithFields(fields).Error("compensating unblock failed")
		return
	}
	w.logger.WithFields(fields).Warn("block reverted after persistence failure")
}

func (w *worker) Unblock(ctx context.Context, accountRef, target string, scope decision.Scope) (*blocked.Entry, error) {
	entry, err := w.repo.Find(ctx, accountRef, target, scope)
	if err != nil {
		return nil, err
	}
	if !entry.Active {
		return entry, nil
	}
	if err := w.deactivate(ctx, entry); err != nil {
		return nil, err
	}
	w.publish(ctx, action.Message{AccountRef: accountRef}, notify.EventSystemAlert, map[string]interface{}{
		"level":   "info",
		"message": fmt.Sprintf("%s has been unblocked on the ad platform.", target),
	})
	return entry, nil
}

func (w *worker) deactivate(ctx context.Context, entry *blocked.Entry) error {
	if _, err := w.client.Unblock(ctx, entry.AccountRef, entry.Target); err != nil {
		return fmt.Errorf("failed to unblock %s: %w", entry.Target, err)
	}
	at := w.now()
	if err := w.repo.Deactivate(ctx, entry.ID, at); err != nil {
		return fmt.Errorf("failed to deactivate blocked entry: %w", err)
	}
	entry.Active = false
	entry.UnblockedAt = &at
	return nil
}

// ExpireDue lifts temporary blocks whose expiry has passed.
func (w *worker) ExpireDue(ctx context.Context) (int, error) {
	entries, err := w.repo.ListExpired(ctx, w.now(), 100)
	if err != nil {
		return 0, fmt.Errorf("failed to list expired blocks: %w", err)
	}
	lifted := 0
	for _, entry := range entries {
		if err := w.deactivate(ctx, entry); err != nil {
			w.logger.WithError(err).WithField("target", entry.Target).Warn("failed to lift expired block")
			continue
		}
		lifted++
	}
	return lifted, nil
}

// Run drives one goroutine per consumer until ctx is cancelled and every
// in-flight delivery is settled. Cancellation only stops new pulls; handlers
// run detached from it, bounded by DrainTimeout.
func (w *worker) Run(ctx context.Context, consumers ...queue.Consumer) error {
	g, gctx := errgroup.WithContext(ctx)
	for i, c := range consumers {
		id, consumer := i, c
		g.Go(func() error {
			w.logger.WithField("consumer", id).Info("enforcement consumer started")
			defer w.logger.WithField("consumer", id).Info("enforcement consumer stopped")
			return consumer.Consume(gctx, w.handle)
		})
	}
	if w.cfg.BlockTTL > 0 {
		g.Go(func() error {
			w.expiryLoop(gctx)
			return nil
		})
	}
	return g.Wait()
}

func (w *worker) handle(ctx context.Context, d *queue.Delivery) error {
	hctx, cancel := w.drainContext(ctx)
	defer cancel()

	res := w.Apply(hctx, d.Message)
	switch {
	case res.Status == action.StatusRetry:
		w.logger.WithError(res.Err).WithFields(logrus.Fields{
			"action_id": d.Message.ID,
			"attempt":   d.Attempt,
		}).Warn("requeueing action message")
		w.pauseBeforeRequeue(ctx)
		return d.Nack(true)
	case res.Status == action.StatusFailed && hctx.Err() != nil:
		return d.Nack(true)
	}
	return d.Ack()
}

// drainContext detaches the handler from the pull context. Once ctx is
// cancelled the handler gets DrainTimeout more before its context is too.
func (w *worker) drainContext(ctx context.Context) (context.Context, context.CancelFunc) {
	hctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	if w.cfg.DrainTimeout <= 0 {
		return hctx, cancel
	}
	stop := context.AfterFunc(ctx, func() {
		select {
		case <-hctx.Done():
		case <-w.after(w.cfg.DrainTimeout):
			cancel()
		}
	})
	return hctx, func() {
		stop()
		cancel()
	}
}

// pauseBeforeRequeue keeps a persistent storage outage from spinning the
// queue. Shutdown cuts the pause short.
func (w *worker) pauseBeforeRequeue(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-w.after(w.cfg.Backoff[0]):
	}
}

func (w *worker) expiryLoop(ctx context.Context) {
	interval := w.cfg.ExpiryInterval
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n, err := w.ExpireDue(ctx); err != nil {
				w.logger.WithError(err).Warn("expiry sweep failed")
			} else if n > 0 {
				w.logger.WithField("lifted", n).Info("expired blocks lifted")
			}
		}
	}
}

func (w *worker) alert(ctx context.Context, msg action.Message, level, message string) {
	w.publish(ctx, msg, notify.EventSystemAlert, map[string]interface{}{
		"level":   level,
		"message": message,
	})
}

func (w *worker) publish(ctx context.Context, msg action.Message, event notify.EventName, payload map[string]interface{}) {
	if w.notifier == nil {
		return
	}
	if err := w.notifier.Publish(context.WithoutCancel(ctx), notify.Target{Group: msg.AccountRef}, event, payload); err != nil {
		w.logger.WithError(err).WithField("event", event).Warn("failed to publish notification")
	}
}
