package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/OleksandrRym/RegularPaymentsSystem/internal/entity"
)

const (
	EventEntryCreated       = "entry.created"
	EventEntryStatusChanged = "entry.status_changed"
)

type Producer struct {
	l            *slog.Logger
	w            *kafka.Writer
	entriesTopic string
}

func NewProducer(brokers []string, topic string) *Producer {
	l := slog.Default().WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:            l,
		w:            w,
		entriesTopic: topic,
	}
}

type EntryEvent struct {
	Type             string          `json:"type"`
	EntryID          uuid.UUID       `json:"entryId"`
	RegularPaymentID uuid.UUID       `json:"regularPaymentId"`
	DateOfPayment    time.Time       `json:"dateOfPayment"`
	Amount           decimal.Decimal `json:"amount"`
	Status           string          `json:"status"`
	OccurredAt       time.Time       `json:"occurredAt"`
}

func (p *Producer) SendEntryCreated(ctx context.Context, e entity.EntriesPayment) {
	p.send(ctx, EventEntryCreated, e)
}

func (p *Producer) SendEntryStatusChanged(ctx context.Context, e entity.EntriesPayment) {
	p.send(ctx, EventEntryStatusChanged, e)
}

func (p *Producer) send(ctx context.Context, eventType string, e entity.EntriesPayment) {
	event := EntryEvent{
		Type:             eventType,
		EntryID:          e.ID,
		RegularPaymentID: e.RegularPaymentID,
		DateOfPayment:    e.DateOfPayment,
		Amount:           e.Amount,
		Status:           e.Status.String(),
		OccurredAt:       time.Now(),
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("marshal event: %s", err))
		return
	}

	// Keyed by agreement so events of one agreement stay ordered within a partition.
	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.RegularPaymentID.String()),
		Value: b,
		Topic: p.entriesTopic,
	})
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

// NopProducer drops events. Used when Kafka is disabled.
type NopProducer struct{}

func (NopProducer) SendEntryCreated(context.Context, entity.EntriesPayment)       {}
func (NopProducer) SendEntryStatusChanged(context.Context, entity.EntriesPayment) {}
func (NopProducer) Close()                                                        {}

type infoLogger struct {
	l *slog.Logger
}

func (l *infoLogger) Printf(format string, v ...any) {
	l.l.Info(fmt.Sprintf(format, v...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}
