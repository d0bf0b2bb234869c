package config

import (
	"log/slog"
	"strings"

	"github.com/arya020/FormBuilder/internal/events"
)

// EventConfig holds configuration for event publishing
type EventConfig struct {
	Enabled      bool
	Publisher    string // kafka or mock
	KafkaBrokers string
	FormTopic    string
}

// GetKafkaBrokers returns Kafka brokers as a slice
func (c *EventConfig) GetKafkaBrokers() []string {
	return strings.Split(c.KafkaBrokers, ",")
}

// CreateEventPublisher creates an event publisher based on configuration
func (c *EventConfig) CreateEventPublisher(logger *slog.Logger) (events.EventPublisher, error) {
	if !c.Enabled {
		logger.Info("Event publishing disabled, using mock publisher")
		return events.NewMockEventPublisher(logger), nil
	}

	switch c.Publisher {
	case "kafka":
		logger.Info("Creating Kafka event publisher",
			"brokers", c.KafkaBrokers,
			"topic", c.FormTopic)

		return events.NewKafkaEventPublisher(events.PublisherConfig{
			KafkaBrokers: c.GetKafkaBrokers(),
			TopicName:    c.FormTopic,
			Logger:       logger,
		})
	case "mock":
		logger.Info("Using mock event publisher")
		return events.NewMockEventPublisher(logger), nil
	default:
		logger.Warn("Unknown event publisher type, falling back to mock", "publisher", c.Publisher)
		return events.NewMockEventPublisher(logger), nil
	}
}
