package app

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/tranndt/purchaseportal/internal/messaging/kafka"
)

// initKafkaProducer поднимает producer событий заказов, если в конфигурации
// указаны брокеры. Портал работает и без Kafka: при пустом списке или ошибке
// подключения возвращается nil и события просто не публикуются.
func initKafkaProducer(brokers string, logger *log.Entry) (*kafka.Producer, error) {
	brokerList := splitBrokers(brokers)
	if len(brokerList) == 0 {
		return nil, nil
	}

	producer, err := kafka.NewProducer(brokerList)
	if err != nil {
		logger.WithError(err).Warn("failed to create kafka producer, continuing without kafka")
		return nil, err
	}

	logger.WithFields(log.Fields{
		"brokers": brokerList,
		"topic":   kafka.TopicOrderEvents,
	}).Info("kafka producer initialized")
	return producer, nil
}

// splitBrokers разбирает значение вида "host1:9092, host2:9092",
// отбрасывая пустые элементы.
func splitBrokers(brokers string) []string {
	parts := strings.Split(brokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// closeKafka закрывает producer, если он был создан.
func closeKafka(producer *kafka.Producer, logger *log.Entry) {
	if producer == nil {
		return
	}

	if err := producer.Close(); err != nil {
		logger.WithError(err).Warn("failed to close kafka producer")
	} else {
		logger.Info("kafka producer closed")
	}
}
