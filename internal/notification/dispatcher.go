package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"

	"reinsure/internal/pkg/metrics"
)

const defaultTimeout = 30 * time.Second

// Dispatcher sends quote notifications to the company inbox. It never
// reports failure to its caller; outcomes are logged and counted.
type Dispatcher struct {
	sender  Sender
	from    string
	to      string
	timeout time.Duration
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time

	wg sync.WaitGroup
}

type DispatcherConfig struct {
	From    string
	To      string
	Timeout time.Duration
}

// NewDispatcher builds a dispatcher. A nil sender means the mail relay is
// not configured and every notification is skipped.
func NewDispatcher(sender Sender, cfg DispatcherConfig, m *metrics.Metrics, logger *slog.Logger) *Dispatcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	if sender == nil {
		logger.Warn("email notifications disabled: mail relay not configured")
	}
	return &Dispatcher{
		sender:  sender,
		from:    cfg.From,
		to:      cfg.To,
		timeout: cfg.Timeout,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

// SendQuoteNotification makes one delivery attempt and reports whether the
// message was handed to the relay.
func (d *Dispatcher) SendQuoteNotification(ctx context.Context, details QuoteDetails) bool {
	if d.sender == nil {
		d.logger.Warn("quote notification skipped: mail relay not configured")
		d.metrics.Notification("skipped")
		return false
	}
	if d.to == "" {
		d.logger.Warn("quote notification skipped: COMPANY_EMAIL not set")
		d.metrics.Notification("skipped")
		return false
	}

	html, text, err := renderQuote(details, d.now())
	if err != nil {
		d.logger.Error("quote notification render failed", "error", err)
		d.metrics.Notification("failed")
		return false
	}

	err = d.sender.Send(ctx, Message{
		From:    d.from,
		To:      d.to,
		Subject: quoteSubject(details),
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		d.logger.Error("quote notification failed", "to", d.to, "error", err)
		sentry.CaptureException(err)
		d.metrics.Notification("failed")
		return false
	}

	d.logger.Info("quote notification sent", "to", d.to)
	d.metrics.Notification("sent")
	return true
}

// Dispatch sends the notification in the background and returns at once.
// The send runs under its own deadline, detached from any request.
func (d *Dispatcher) Dispatch(details QuoteDetails) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				d.logger.Error("quote notification panicked", "panic", r)
				sentry.CurrentHub().Recover(r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		d.SendQuoteNotification(ctx, details)
	}()
}

// Wait blocks until in-flight dispatches finish or ctx is done.
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
