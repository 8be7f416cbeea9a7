package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/RoGogDBD/parcelrate/internal/models"
	"github.com/segmentio/kafka-go"
)

// Publisher публикует посылки в топик регистрации.
type Publisher struct {
	w Writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{w: &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}}
}

// Publish отправляет посылки одним батчем, ключ сообщения - id посылки.
func (p *Publisher) Publish(ctx context.Context, packages ...models.Package) error {
	msgs := make([]kafka.Message, 0, len(packages))
	for _, pkg := range packages {
		value, err := json.Marshal(pkg)
		if err != nil {
			return fmt.Errorf("marshal package %s: %w", pkg.ID, err)
		}
		msgs = append(msgs, kafka.Message{Key: []byte(pkg.ID), Value: value})
	}
	return p.w.WriteMessages(ctx, msgs...)
}

func (p *Publisher) Close() error {
	return p.w.Close()
}
