package kafka

import "shutter-monitor/internal/shutter"

type UnstructuredConnectRecord struct {
	Payload ShutterEvent `json:"payload"`
}

type StructuredConnectRecord struct {
	Schema  Schema       `json:"schema"`
	Payload ShutterEvent `json:"payload"`
}

// ShutterEvent is one persisted transition as mirrored to the topic.
type ShutterEvent struct {
	EventID   string       `json:"event_id"`
	SessionID string       `json:"session_id"`
	CameraID  string       `json:"camera_id"`
	Event     shutter.Kind `json:"event"`
	Date      string       `json:"date"`
	Time      string       `json:"time"`
	ShutterID int64        `json:"shutter_id"`
	Timestamp int64        `json:"timestamp"`
}

type Schema struct {
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Fields   []Field `json:"fields"`
	Optional bool    `json:"optional"`
}

type Field struct {
	Field    string `json:"field"`
	Type     string `json:"type"`
	Optional bool   `json:"optional,omitempty"`
}

var StructuredSchema = Schema{
	Type:     "struct",
	Name:     "ShutterEvent",
	Optional: false,
	Fields: []Field{
		{Field: "event_id", Type: "string"},
		{Field: "session_id", Type: "string", Optional: true},
		{Field: "camera_id", Type: "string"},
		{Field: "event", Type: "string"},
		{Field: "date", Type: "string"},
		{Field: "time", Type: "string"},
		{Field: "shutter_id", Type: "int64"},
		{Field: "timestamp", Type: "int64"},
	},
}
