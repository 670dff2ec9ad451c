// Package mqtt publishes persisted shutter events to an MQTT broker.
package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"shutter-monitor/internal/shutter"
)

const (
	DefaultTopicPrefix = "shutters"
	QoS                = byte(1)
)

var (
	ErrConnect = errors.New("mqtt connection failed")
	ErrPublish = errors.New("mqtt publish failed")
	ErrTimeout = errors.New("mqtt operation timed out")
)

// Client is the subset of the paho client used for publishing.
type Client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
	Disconnect(quiesce uint)
}

type Config struct {
	Broker      string
	TopicPrefix string
	ClientID    string
	SessionID   string
	Timeout     time.Duration
}

type Message struct {
	EventID   string       `json:"event_id"`
	SessionID string       `json:"session_id,omitempty"`
	CameraID  string       `json:"camera_id"`
	Event     shutter.Kind `json:"event"`
	Date      string       `json:"date"`
	Time      string       `json:"time"`
	ShutterID int64        `json:"shutter_id"`
	Timestamp int64        `json:"timestamp"`
}

type Publisher struct {
	client    Client
	prefix    string
	sessionID string
	timeout   time.Duration
	newID     func() string
}

// Connect dials the broker and waits for the first connection. Later losses
// are recovered by paho's auto-reconnect.
func Connect(ctx context.Context, cfg Config) (*Publisher, error) {
	const fn = "MQTT:Connect"
	broker := cfg.Broker
	if !strings.Contains(broker, "://") {
		broker = "tcp://" + broker
	}
	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "shutter-monitor-" + uuid.NewString()[:8]
	}

	opts := paho.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(2 * time.Second)
	opts.SetMaxReconnectInterval(30 * time.Second)
	opts.OnConnect = func(paho.Client) {
		slog.Info("MQTT connection established", "broker", broker, "client_id", clientID)
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		slog.Warn("MQTT connection lost, will auto-reconnect", "broker", broker, "error", err)
	}

	client := paho.NewClient(opts)
	p := newPublisher(client, cfg)

	slog.InfoContext(ctx, "Connecting to MQTT broker", "broker", broker)
	if err := wait(ctx, client.Connect(), p.timeout); err != nil {
		client.Disconnect(0)
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrConnect, err)
	}
	return p, nil
}

func newPublisher(client Client, cfg Config) *Publisher {
	p := &Publisher{
		client:    client,
		prefix:    cfg.TopicPrefix,
		sessionID: cfg.SessionID,
		timeout:   cfg.Timeout,
		newID:     uuid.NewString,
	}
	if p.prefix == "" {
		p.prefix = DefaultTopicPrefix
	}
	if p.timeout <= 0 {
		p.timeout = 5 * time.Second
	}
	return p
}

// Topic returns "<prefix>/<camera_id>/events".
func Topic(prefix string, cameraID string) string {
	return fmt.Sprintf("%s/%s/events", strings.TrimSuffix(prefix, "/"), cameraID)
}

func (p *Publisher) Name() string { return "mqtt" }

func (p *Publisher) Publish(ctx context.Context, ev shutter.Event, shutterID int64) error {
	const fn = "MQTT:Publish"
	payload, err := json.Marshal(Message{
		EventID:   p.newID(),
		SessionID: p.sessionID,
		CameraID:  ev.CameraID,
		Event:     ev.Kind,
		Date:      ev.Date(),
		Time:      ev.Clock(),
		ShutterID: shutterID,
		Timestamp: ev.At.UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrPublish, err)
	}
	topic := Topic(p.prefix, ev.CameraID)
	if err := wait(ctx, p.client.Publish(topic, QoS, false, payload), p.timeout); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrPublish, err)
	}
	slog.DebugContext(ctx, "Published shutter event", "topic", topic, "qos", QoS, "size", len(payload))
	return nil
}

func (p *Publisher) Close() error {
	p.client.Disconnect(250)
	return nil
}

func wait(ctx context.Context, token paho.Token, timeout time.Duration) error {
	if d, ok := ctx.Deadline(); ok && time.Until(d) < timeout {
		timeout = time.Until(d)
	}
	if !token.WaitTimeout(timeout) {
		return ErrTimeout
	}
	return token.Error()
}
