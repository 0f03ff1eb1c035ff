package services

//go:generate mockgen -source=recorder.go -destination=recorder_mock.go -package=services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-bank-agent/internal/logger"
	"github.com/sbilibin2017/gw-bank-agent/internal/models"
)

// CalculationWriter persists calculation audit records.
type CalculationWriter interface {
	Save(ctx context.Context, calc models.Calculation) error // Stores one record
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// CalculationRecorder stores and publishes successful calculations. Both
// sinks are optional and their failures never reach the caller.
type CalculationRecorder struct {
	writer      CalculationWriter
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewCalculationRecorder creates a recorder. writer and kafkaWriter may be nil.
func NewCalculationRecorder(writer CalculationWriter, kafkaWriter KafkaWriter) *CalculationRecorder {
	return &CalculationRecorder{
		writer:      writer,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// Record builds a calculation from its input and result and sends it to the configured sinks.
func (r *CalculationRecorder) Record(ctx context.Context, kind string, input any, result float64, description string) {
	if r == nil || (r.writer == nil && r.kafkaWriter == nil) {
		return
	}

	raw, err := json.Marshal(input)
	if err != nil {
		logger.Log.Errorw("failed to marshal calculation input", "kind", kind, "error", err)
		return
	}

	calc := models.Calculation{
		CalculationID: uuid.New(),
		Kind:          kind,
		Input:         raw,
		Result:        result,
		Description:   description,
		CreatedAt:     r.now().UTC(),
	}

	if r.writer != nil {
		if err := r.writer.Save(ctx, calc); err != nil {
			logger.Log.Errorw("failed to save calculation", "calculation_id", calc.CalculationID, "kind", kind, "error", err)
		}
	}

	r.publish(ctx, calc)
}

// publish publishes a calculation to Kafka.
func (r *CalculationRecorder) publish(ctx context.Context, calc models.Calculation) {
	if r.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "calculation_id", calc.CalculationID)
		return
	}

	data, err := json.Marshal(calc)
	if err != nil {
		logger.Log.Errorw("Failed to marshal calculation for Kafka", "calculation_id", calc.CalculationID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(calc.CalculationID.String()),
		Value: data,
	}

	if err := r.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish calculation to Kafka", "calculation_id", calc.CalculationID, "error", err)
	} else {
		logger.Log.Infow("Calculation published to Kafka", "calculation_id", calc.CalculationID, "kind", calc.Kind)
	}
}
