package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/sendbyop/booking-service/internal/domain"
)

// DefaultKafkaPublisher implements domain.EventPublisher over one shared
// writer. Events are keyed by booking so consumers see one booking's
// history in order.
type DefaultKafkaPublisher struct {
	writer       *kafka.Writer
	bookingTopic string
	payoutTopic  string
}

func NewDefaultKafkaPublisher(brokers []string, bookingTopic, payoutTopic string) *DefaultKafkaPublisher {
	if bookingTopic == "" {
		bookingTopic = DefaultBookingTopic
	}
	if payoutTopic == "" {
		payoutTopic = DefaultPayoutTopic
	}
	return &DefaultKafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
		bookingTopic: bookingTopic,
		payoutTopic:  payoutTopic,
	}
}

func (k *DefaultKafkaPublisher) PublishBooking(event domain.BookingEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.writer.WriteMessages(context.Background(), kafka.Message{
		Topic: k.bookingTopic,
		Key:   []byte(event.BookingID),
		Value: msg,
		Time:  time.Now(),
	})
}

func (k *DefaultKafkaPublisher) PublishPayout(event domain.PayoutEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.writer.WriteMessages(context.Background(), kafka.Message{
		Topic: k.payoutTopic,
		Key:   []byte(event.BookingID),
		Value: msg,
		Time:  time.Now(),
	})
}

func (k *DefaultKafkaPublisher) Close() error {
	return k.writer.Close()
}
