// Package kafka mirrors persisted shutter events to a Kafka topic as Kafka
// Connect structured JSON records keyed by camera.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"shutter-monitor/internal/shutter"
)

var (
	ErrReadMessage   = errors.New("error reading message")
	ErrWriteMessage  = errors.New("error writing message")
	ErrDecodeMessage = errors.New("error decoding message")
)

type Reader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Config struct {
	Brokers   []string
	Topic     string
	SessionID string
}

type Publisher struct {
	writer    Writer
	sessionID string
	newID     func() string
}

func New(cfg Config) *Publisher {
	return &Publisher{
		writer: kafka.NewWriter(kafka.WriterConfig{
			Brokers:  cfg.Brokers,
			Topic:    cfg.Topic,
			Balancer: &kafka.Hash{},
		}),
		sessionID: cfg.SessionID,
		newID:     uuid.NewString,
	}
}

func (p *Publisher) Name() string { return "kafka" }

func (p *Publisher) Publish(ctx context.Context, ev shutter.Event, shutterID int64) error {
	const fn = "Kafka:Publish"
	record := StructuredConnectRecord{
		Schema:  StructuredSchema,
		Payload: NewShutterEvent(ev, shutterID, p.sessionID, p.newID()),
	}
	out, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrWriteMessage, err)
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(ev.CameraID), Value: out})
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrWriteMessage, err)
	}
	slog.DebugContext(ctx, "Published shutter event", "camera_id", ev.CameraID, "event", ev.Kind)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func NewShutterEvent(ev shutter.Event, shutterID int64, sessionID string, eventID string) ShutterEvent {
	return ShutterEvent{
		EventID:   eventID,
		SessionID: sessionID,
		CameraID:  ev.CameraID,
		Event:     ev.Kind,
		Date:      ev.Date(),
		Time:      ev.Clock(),
		ShutterID: shutterID,
		Timestamp: ev.At.UnixMilli(),
	}
}

// Decode accepts both structured and schemaless records.
func Decode(value []byte) (ShutterEvent, error) {
	var record UnstructuredConnectRecord
	if err := json.Unmarshal(value, &record); err != nil {
		return ShutterEvent{}, err
	}
	return record.Payload, nil
}

// Consume reads records until the context is cancelled or fn fails.
// Undecodable records are logged and skipped.
func Consume(ctx context.Context, r Reader, fn func(ShutterEvent) error) error {
	const op = "Kafka:Consume"
	for {
		m, err := r.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("%s:%w:%w", op, ErrReadMessage, err)
		}
		ev, err := Decode(m.Value)
		if err != nil {
			slog.ErrorContext(ctx, "Error parsing JSON", "error", fmt.Errorf("%w:%w", ErrDecodeMessage, err), "key", string(m.Key))
			continue
		}
		if err := fn(ev); err != nil {
			return err
		}
	}
}

// NewReader opens a consumer on the topic. An empty group reads from the
// first offset without committing.
func NewReader(brokers []string, topic string, groupID string) *kafka.Reader {
	cfg := kafka.ReaderConfig{
		Brokers: brokers,
		GroupID: groupID,
		Topic:   topic,
	}
	if groupID == "" {
		cfg.StartOffset = kafka.FirstOffset
	}
	return kafka.NewReader(cfg)
}
