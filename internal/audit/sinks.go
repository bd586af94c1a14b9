package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"
)

// Sink receives drained events from the recorder.
type Sink interface {
	Write(ctx context.Context, event Event) error
}

// LogSink writes events to the structured log. It never fails; audit
// logging must not take down the request path.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Write(ctx context.Context, event Event) error {
	level := slog.LevelInfo
	if event.Severity == SeverityWarning {
		level = slog.LevelWarn
	}
	s.logger.Log(ctx, level, "audit",
		"action", event.Action,
		"kind", event.Kind,
		"subject_hash", event.SubjectHash,
		"reason", event.Reason,
		"request_id", event.RequestID,
		"client_ip", event.ClientIP,
		"device", event.Device,
	)
	return nil
}

// KafkaSink publishes events to a Kafka topic. Writes are synchronous
// from the sink's point of view, but the recorder already runs off the
// request path so the produce latency is invisible to callers.
type KafkaSink struct {
	client *kgo.Client
	topic  string
}

// NewKafkaSink builds a sink over an existing franz-go client.
func NewKafkaSink(client *kgo.Client, topic string) *KafkaSink {
	return &KafkaSink{client: client, topic: topic}
}

func (s *KafkaSink) Write(ctx context.Context, event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}

	record := &kgo.Record{
		Topic: s.topic,
		Key:   []byte(event.SubjectHash),
		Value: value,
	}
	if err := s.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce audit event: %w", err)
	}
	return nil
}
