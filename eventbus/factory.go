package eventbus

import (
	"reply-pilot/config"
	"reply-pilot/logger"
)

// New builds the configured bus. Kafka requires KAFKA_BOOTSTRAP_SERVERS;
// anything else (or a broker failure) ends up on the in-process bus.
func New(cfg config.AppConfig) EventBus {
	if cfg.EventBus.Backend == "kafka" {
		brokers := config.KafkaBrokers()
		if brokers == "" {
			logger.Log.Warn("event_bus backend is kafka but KAFKA_BOOTSTRAP_SERVERS is empty, using in-memory bus")
			return NewMemoryEventBus()
		}
		bus, err := NewKafkaEventBus(brokers)
		if err != nil {
			logger.Log.Warnf("kafka unavailable, using in-memory bus: %v", err)
			return NewMemoryEventBus()
		}
		logger.Log.Info("using kafka event bus")
		return bus
	}

	logger.Log.Info("using in-memory event bus")
	return NewMemoryEventBus()
}
