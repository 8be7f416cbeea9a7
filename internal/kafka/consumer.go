// Package kafka содержит прием посылок из Kafka и публикацию в топик.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/RoGogDBD/parcelrate/internal/config"
	"github.com/RoGogDBD/parcelrate/internal/models"
	"github.com/RoGogDBD/parcelrate/internal/retry"
	"github.com/RoGogDBD/parcelrate/internal/service"
	"github.com/RoGogDBD/parcelrate/internal/telemetry"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	headerError         = "x-error"
	headerOriginalTopic = "x-original-topic"
)

// Registrar регистрирует посылку.
type Registrar interface {
	RegisterPackage(ctx context.Context, p models.Package, source service.Source) (*models.Package, error)
}

// Reader - часть kafka.Reader, нужная консьюмеру.
type Reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Writer - часть kafka.Writer, нужная для DLQ.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Consumer struct {
	reader    Reader
	dlq       Writer
	registrar Registrar
	policy    retry.Policy
	log       *zap.Logger
	metrics   *telemetry.Metrics
}

// NewConsumer создает консьюмер топика посылок с DLQ по настройкам cfg.
func NewConsumer(cfg config.KafkaConfig, registrar Registrar, log *zap.Logger, metrics *telemetry.Metrics) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
		GroupID: cfg.GroupID,
	})
	var dlq Writer
	if cfg.DLQTopic != "" {
		dlq = &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.DLQTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
	}
	return newConsumer(reader, dlq, registrar, Policy(cfg), log, metrics)
}

func newConsumer(reader Reader, dlq Writer, registrar Registrar, policy retry.Policy, log *zap.Logger, metrics *telemetry.Metrics) *Consumer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Consumer{
		reader:    reader,
		dlq:       dlq,
		registrar: registrar,
		policy:    policy,
		log:       log,
		metrics:   metrics,
	}
}

// Policy строит политику повторов регистрации: постоянные ошибки не повторяются.
func Policy(cfg config.KafkaConfig) retry.Policy {
	return retry.Policy{
		MaxRetries: cfg.DLQMaxRetries,
		Backoff:    retry.NewBackoff(cfg.DLQBackoff, cfg.DLQBackoffCap, cfg.DLQBackoffJitter),
		ShouldRetry: func(err error) bool {
			return !service.IsPermanent(err)
		},
	}
}

// Run читает сообщения до отмены ctx. Смещение коммитится после обработки
// сообщения, в том числе после отправки в DLQ.
func (c *Consumer) Run(ctx context.Context) error {
	defer c.close()

	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("kafka fetch: %w", err)
		}

		if err := c.handle(ctx, m); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			// Сообщение не закоммичено и будет перечитано после рестарта.
			return err
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("kafka commit: %w", err)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, m kafka.Message) error {
	log := c.log.With(
		zap.String("topic", m.Topic),
		zap.Int("partition", m.Partition),
		zap.Int64("offset", m.Offset),
	)

	var p models.Package
	if err := json.Unmarshal(m.Value, &p); err != nil {
		log.Warn("invalid package message", zap.Error(err))
		return c.deadLetter(ctx, m, fmt.Errorf("%w: %v", service.ErrInvalidPayload, err))
	}

	err := retry.Do(ctx, c.policy, func() error {
		_, err := c.registrar.RegisterPackage(ctx, p, service.SourceKafka)
		return err
	}, func(err error, attempt int, wait time.Duration) {
		c.metrics.KafkaMessage(ctx, "retried")
		log.Warn("package registration failed, retrying",
			zap.String("package_id", p.ID),
			zap.Int("attempt", attempt),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	})
	if err == nil {
		c.metrics.KafkaMessage(ctx, "processed")
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	log.Error("package registration failed", zap.String("package_id", p.ID), zap.Error(err))
	return c.deadLetter(ctx, m, err)
}

func (c *Consumer) deadLetter(ctx context.Context, m kafka.Message, cause error) error {
	c.metrics.KafkaMessage(ctx, "dlq")
	if c.dlq == nil {
		c.log.Warn("no DLQ configured, dropping message", zap.Int64("offset", m.Offset), zap.Error(cause))
		return nil
	}
	dead := kafka.Message{
		Key:   m.Key,
		Value: m.Value,
		Headers: append(append([]kafka.Header(nil), m.Headers...),
			kafka.Header{Key: headerError, Value: []byte(cause.Error())},
			kafka.Header{Key: headerOriginalTopic, Value: []byte(m.Topic)},
		),
	}
	if err := c.dlq.WriteMessages(ctx, dead); err != nil {
		return fmt.Errorf("write to DLQ: %w", err)
	}
	return nil
}

func (c *Consumer) close() {
	if err := c.reader.Close(); err != nil {
		c.log.Warn("kafka reader close error", zap.Error(err))
	}
	if c.dlq != nil {
		if err := c.dlq.Close(); err != nil && !errors.Is(err, context.Canceled) {
			c.log.Warn("kafka DLQ writer close error", zap.Error(err))
		}
	}
}
