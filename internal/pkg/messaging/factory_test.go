package messaging

import (
	"context"
	"errors"
	"testing"
)

func TestNewFromDriverUnknown(t *testing.T) {
	_, err := NewFromDriver(context.Background(), "rabbitmq", FactoryOptions{})
	if !errors.Is(err, ErrUnknownDriver) {
		t.Fatalf("expected ErrUnknownDriver, got %v", err)
	}
}

func TestNewFromDriverKafkaRequiresBrokers(t *testing.T) {
	_, err := NewFromDriver(context.Background(), DriverKafka, FactoryOptions{})
	if !errors.Is(err, ErrKafkaBrokersRequired) {
		t.Fatalf("expected ErrKafkaBrokersRequired, got %v", err)
	}
}

func TestNewFromDriverNSQRequiresProducerAddr(t *testing.T) {
	_, err := NewFromDriver(context.Background(), DriverNSQ, FactoryOptions{})
	if !errors.Is(err, ErrNSQProducerAddrRequired) {
		t.Fatalf("expected ErrNSQProducerAddrRequired, got %v", err)
	}
}

func TestKafkaPublishValidation(t *testing.T) {
	k, err := NewKafka(KafkaConfig{Brokers: []string{"localhost:9092"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := k.Publish(context.Background(), "", OutgoingMessage{}); !errors.Is(err, ErrKafkaTopicRequired) {
		t.Errorf("expected ErrKafkaTopicRequired, got %v", err)
	}

	if _, err := k.Publish(context.Background(), "events", OutgoingMessage{Delay: 1}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported for delayed publish, got %v", err)
	}

	if err := k.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if _, err := k.Publish(context.Background(), "events", OutgoingMessage{}); err == nil {
		t.Error("expected error publishing after close")
	}

	if err := k.Close(); err != nil {
		t.Errorf("second close should be a no-op, got %v", err)
	}
}
