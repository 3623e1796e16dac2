package notification

import (
	"context"
	"errors"
	"time"

	"github.com/wb-go/wbf/logger"
)

var (
	// ErrUnavailable marks a transient delivery failure worth retrying.
	ErrUnavailable = errors.New("notification channel unavailable")
	// ErrInvalidRecipient marks a permanently undeliverable address.
	ErrInvalidRecipient = errors.New("invalid recipient")
)

// IsTransient classifies a delivery error for retry purposes.
func IsTransient(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// BatchResult summarizes a multi-recipient send.
type BatchResult struct {
	Total        int
	Successful   int
	Failed       int
	FailedEmails []string
}

type Sender interface {
	SendOrderConfirmation(ctx context.Context, orderID, email string) error
	SendOrderCancellation(ctx context.Context, orderID, email string) error
	SendEventCancellationBatch(ctx context.Context, eventID, title string, date time.Time, emails []string) BatchResult
	SendEventReminder(ctx context.Context, eventID, title string, date time.Time, location, email string) error
}

// EmailSender writes outgoing mail to the log. A real deployment would
// swap in an SMTP or provider-backed implementation of Sender.
type EmailSender struct {
	from   string
	logger logger.Logger
}

func NewEmailSender(from string, log logger.Logger) *EmailSender {
	return &EmailSender{from: from, logger: log}
}

func (s *EmailSender) SendOrderConfirmation(ctx context.Context, orderID, email string) error {
	return s.send(ctx, email, "Order Confirmation #"+orderID,
		logger.String("order_id", orderID))
}

func (s *EmailSender) SendOrderCancellation(ctx context.Context, orderID, email string) error {
	return s.send(ctx, email, "Order Cancellation #"+orderID,
		logger.String("order_id", orderID))
}

func (s *EmailSender) SendEventCancellationBatch(ctx context.Context, eventID, title string, date time.Time, emails []string) BatchResult {
	res := BatchResult{Total: len(emails)}
	for _, email := range emails {
		err := s.send(ctx, email, "Event Cancellation: "+title,
			logger.String("event_id", eventID),
			logger.String("event_date", date.Format(time.RFC3339)),
		)
		if err != nil {
			res.Failed++
			res.FailedEmails = append(res.FailedEmails, email)
			continue
		}
		res.Successful++
	}
	return res
}

func (s *EmailSender) SendEventReminder(ctx context.Context, eventID, title string, date time.Time, location, email string) error {
	return s.send(ctx, email, "Reminder: "+title+" is coming up!",
		logger.String("event_id", eventID),
		logger.String("event_date", date.Format(time.RFC3339)),
		logger.String("location", location),
	)
}

func (s *EmailSender) send(ctx context.Context, to, subject string, attrs ...logger.Attr) error {
	if to == "" {
		return ErrInvalidRecipient
	}
	if err := ctx.Err(); err != nil {
		return ErrUnavailable
	}

	attrs = append(attrs,
		logger.String("from", s.from),
		logger.String("to", to),
		logger.String("subject", subject),
	)
	s.logger.Log(logger.InfoLevel, "email sent", attrs...)
	return nil
}
