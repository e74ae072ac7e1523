package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/kanban-board-api/internal/logger"
	"github.com/sbilibin2017/kanban-board-api/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=audit.go -destination=mock_audit.go -package=services

// AuditWriter persists audit records.
type AuditWriter interface {
	Save(ctx context.Context, audit *models.Audit) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// SnapshotFunc loads the entity addressed by the route parameters of a request.
type SnapshotFunc func(ctx context.Context, params map[string]string) (any, error)

// EntitySnapshot builds a SnapshotFunc that parses the uuid in route parameter
// param and loads the entity with get.
func EntitySnapshot[T any](param string, get func(ctx context.Context, id uuid.UUID) (*T, error)) SnapshotFunc {
	return func(ctx context.Context, params map[string]string) (any, error) {
		id, err := uuid.Parse(params[param])
		if err != nil {
			return nil, nil
		}
		entity, err := get(ctx, id)
		if err != nil {
			return nil, err
		}
		return entity, nil
	}
}

// AuditService stores audit records and publishes them to Kafka.
type AuditService struct {
	writer      AuditWriter
	kafkaWriter KafkaWriter
	snapshots   map[string]SnapshotFunc
}

// NewAuditService creates a new AuditService. kafkaWriter may be nil.
func NewAuditService(writer AuditWriter, kafkaWriter KafkaWriter) *AuditService {
	return &AuditService{
		writer:      writer,
		kafkaWriter: kafkaWriter,
		snapshots:   make(map[string]SnapshotFunc),
	}
}

// RegisterSnapshot binds a route pattern to the lookup of the entity it addresses.
// Registration happens at startup, before requests are served.
func (s *AuditService) RegisterSnapshot(pattern string, fn SnapshotFunc) {
	s.snapshots[pattern] = fn
}

// Snapshot returns the JSON image of the entity addressed by pattern and params.
// It returns nil when no lookup is registered or the entity does not exist.
func (s *AuditService) Snapshot(ctx context.Context, pattern string, params map[string]string) (json.RawMessage, error) {
	fn, ok := s.snapshots[pattern]
	if !ok {
		return nil, nil
	}

	entity, err := fn(ctx, params)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Log.Errorw("failed to load audit snapshot", "pattern", pattern, "error", err)
		return nil, err
	}
	if entity == nil {
		return nil, nil
	}

	data, err := json.Marshal(entity)
	if err != nil {
		logger.Log.Errorw("failed to marshal audit snapshot", "pattern", pattern, "error", err)
		return nil, err
	}
	return data, nil
}

// Record persists audit and then publishes it. Publishing is best-effort.
func (s *AuditService) Record(ctx context.Context, audit *models.Audit) error {
	if err := s.writer.Save(ctx, audit); err != nil {
		logger.Log.Errorw("failed to save audit", "method", audit.Method, "url", audit.URL, "error", err)
		return err
	}
	s.publish(ctx, audit)
	return nil
}

// publish sends audit to Kafka.
func (s *AuditService) publish(ctx context.Context, audit *models.Audit) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "audit_id", audit.ID)
		return
	}

	data, err := json.Marshal(audit)
	if err != nil {
		logger.Log.Errorw("Failed to marshal audit for Kafka", "audit_id", audit.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(audit.ID.String()),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish audit to Kafka", "audit_id", audit.ID, "error", err)
	} else {
		logger.Log.Infow("Audit queued for Kafka", "audit_id", audit.ID, "action", audit.Action)
	}
}
