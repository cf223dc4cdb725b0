package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitKafkaProducer_EmptyBrokers(t *testing.T) {
	producer, err := initKafkaProducer("", testLogger())
	require.NoError(t, err)
	require.Nil(t, producer)
}

func TestSplitBrokers(t *testing.T) {
	require.Empty(t, splitBrokers(""))
	require.Empty(t, splitBrokers(" , "))
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"},
		splitBrokers("kafka-1:9092, kafka-2:9092"))
}

func TestInitKafkaProducer_UnreachableBrokers(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping broker dial in short mode")
	}

	producer, err := initKafkaProducer("127.0.0.1:1", testLogger())
	require.Error(t, err)
	require.Nil(t, producer)
}

func TestCloseKafka_Nil(t *testing.T) {
	// Не должен паниковать.
	closeKafka(nil, testLogger())
}
