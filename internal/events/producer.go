package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducer struct {
	writer messageWriter
}

func NewKafkaProducer(writer *kafka.Writer) *KafkaProducer {
	return &KafkaProducer{writer: writer}
}

func (p *KafkaProducer) PublishBillCommitted(ctx context.Context, event BillCommitted) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return err
	}

	// bill-committed-42
	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("bill-committed-%d", event.OrderID)),
		Value: eventJSON,
	}

	return p.writer.WriteMessages(ctx, msg)
}

func (p *KafkaProducer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
