package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"time"

	"parksmart/internal/db"
	"parksmart/internal/entities"
	apperrors "parksmart/internal/errors"
	"parksmart/internal/metrics"

	"github.com/rs/zerolog"
)

// Outcome classifies one notification delivery attempt.
type Outcome string

const (
	OutcomePending   Outcome = "pending"
	OutcomeDelivered Outcome = "delivered"
	OutcomeSimulated Outcome = "simulated"
	OutcomeFailed    Outcome = "failed"
)

const notificationsCollection = "notifications"

// RecordStore is the slice of the document store the dispatcher needs to
// keep simulated confirmations inspectable.
type RecordStore interface {
	Append(ctx context.Context, namespace, collection string, v any) error
	ReadAll(ctx context.Context, namespace, collection string) ([]json.RawMessage, error)
}

// NotifyService renders booking confirmations and attempts delivery through
// the active channel. Transport errors are swallowed into the outcome value
// and never raised to the booking workflow.
type NotifyService struct {
	channel     Channel // nil means no channel configured
	store       RecordStore
	sms         *SMSSender // optional
	senderName  string
	senderEmail string
	logger      *zerolog.Logger
	tmpl        *template.Template
}

func NewNotifyService(channel Channel, store RecordStore, sms *SMSSender, senderName, senderEmail string, logger *zerolog.Logger) *NotifyService {
	return &NotifyService{
		channel:     channel,
		store:       store,
		sms:         sms,
		senderName:  senderName,
		senderEmail: senderEmail,
		logger:      logger,
		tmpl:        template.Must(template.New("confirmation").Parse(confirmationTemplate)),
	}
}

// Render builds the confirmation document for a booking. The render is
// deterministic: the same booking always yields the same message.
func (s *NotifyService) Render(b db.Booking) (entities.EmailMessage, error) {
	data := entities.BookingEmailData{
		UserName:           b.UserName,
		BookingCode:        b.Code,
		LotName:            b.LotName,
		LotAddress:         b.LotAddress,
		DateFormatted:      b.StartTime.Format("Monday, 2 January 2006"),
		StartTimeFormatted: b.StartTime.Format("3:04 PM"),
		EndTimeFormatted:   b.EndTime.Format("3:04 PM"),
		Hours:              b.Hours,
		LicensePlate:       b.LicensePlate,
		PaymentMethod:      b.PaymentMethodLabel,
		TotalPrice:         b.TotalPrice,
	}

	var htmlBody bytes.Buffer
	if err := s.tmpl.Execute(&htmlBody, data); err != nil {
		return entities.EmailMessage{}, fmt.Errorf("render confirmation for %s: %w", b.Code, err)
	}

	plural := ""
	if data.Hours != 1 {
		plural = "s"
	}
	plain := fmt.Sprintf(
		"Hello %s,\n\nYour ParkSmart booking is confirmed.\n\n"+
			"Booking ID: %s\n"+
			"Location: %s, %s\n"+
			"Date: %s\n"+
			"Time: %s - %s (%d hour%s)\n"+
			"Vehicle: %s\n"+
			"Payment Method: %s\n"+
			"Total: R%d\n\n"+
			"Thank you for choosing ParkSmart.",
		data.UserName, data.BookingCode, data.LotName, data.LotAddress,
		data.DateFormatted, data.StartTimeFormatted, data.EndTimeFormatted,
		data.Hours, plural, data.LicensePlate, data.PaymentMethod, data.TotalPrice,
	)

	return entities.EmailMessage{
		Recipient:     b.UserEmail,
		RecipientName: b.UserName,
		Subject:       fmt.Sprintf("ParkSmart Booking Confirmation - %s", b.LotName),
		HTML:          htmlBody.String(),
		Plain:         plain,
		Sender:        s.senderEmail,
		SenderName:    s.senderName,
	}, nil
}

// Dispatch renders the confirmation and attempts delivery. It always
// returns an outcome: delivered when the active channel accepted the
// message, simulated when no channel is configured (the document is stored
// for later inspection), failed on any transport error.
func (s *NotifyService) Dispatch(ctx context.Context, namespace string, b db.Booking) Outcome {
	msg, err := s.Render(b)
	if err != nil {
		s.logger.Error().Err(err).Str("booking", b.Code).Msg("confirmation render failed")
		metrics.IncNotification(string(OutcomeFailed))
		return OutcomeFailed
	}

	outcome := s.deliver(ctx, namespace, b.Code, msg)
	metrics.IncNotification(string(outcome))

	if outcome == OutcomeDelivered && s.sms != nil && b.UserPhone != "" {
		text := fmt.Sprintf("ParkSmart: booking %s confirmed!\nCheck-in: %s.\nDetails in your email.",
			b.Code, b.StartTime.Format("02/01 15:04"))
		if err := s.sms.Send(b.UserPhone, text); err != nil {
			s.logger.Warn().Err(err).Str("booking", b.Code).Msg("confirmation SMS failed")
		}
	}

	return outcome
}

func (s *NotifyService) deliver(ctx context.Context, namespace, code string, msg entities.EmailMessage) Outcome {
	if s.channel == nil {
		record := entities.NotificationRecord{
			BookingCode: code,
			Recipient:   msg.Recipient,
			Sender:      msg.Sender,
			Subject:     msg.Subject,
			HTML:        msg.HTML,
			Outcome:     string(OutcomeSimulated),
			CreatedAt:   time.Now().UTC(),
		}
		if err := s.store.Append(ctx, namespace, notificationsCollection, record); err != nil {
			s.logger.Error().Err(err).Str("booking", code).Msg("storing simulated confirmation failed")
			return OutcomeFailed
		}
		s.logger.Info().Str("booking", code).Str("to", msg.Recipient).Msg("confirmation simulated")
		return OutcomeSimulated
	}

	if err := s.channel.Send(ctx, msg); err != nil {
		derr := apperrors.NewDeliveryError(s.channel.Name(), err)
		s.logger.Warn().Err(derr).Str("booking", code).Msg("confirmation delivery failed")
		return OutcomeFailed
	}
	s.logger.Info().Str("booking", code).Str("to", msg.Recipient).Str("channel", s.channel.Name()).
		Msg("confirmation delivered")
	return OutcomeDelivered
}

// StoredNotifications returns the session's recorded confirmation
// documents, oldest first.
func (s *NotifyService) StoredNotifications(ctx context.Context, namespace string) ([]entities.NotificationRecord, error) {
	raws, err := s.store.ReadAll(ctx, namespace, notificationsCollection)
	if err != nil {
		return nil, err
	}
	records := make([]entities.NotificationRecord, 0, len(raws))
	for _, raw := range raws {
		var rec entities.NotificationRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("decode notification record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
