package kafka_test

import (
	"context"
	"realty/config"
	"realty/infras/kafka"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{Key: "v-1", Value: event{ID: "v-1", Status: "confirmed"}}

	out, err := msg.ToKafkaMessage("viewing-events")
	require.NoError(t, err)

	assert.Equal(t, "viewing-events", out.Topic)
	assert.Equal(t, []byte("v-1"), out.Key)
	assert.JSONEq(t, `{"id":"v-1","status":"confirmed"}`, string(out.Value))
}

func TestMessage_ToKafkaMessage_Unmarshalable(t *testing.T) {
	msg := kafka.Message{Key: "bad", Value: make(chan int)}

	_, err := msg.ToKafkaMessage("viewing-events")
	assert.Error(t, err)
}

func TestNew_Disabled(t *testing.T) {
	cfg := &config.Config{}

	client := kafka.New(cfg)

	assert.NoError(t, client.SendMessages(context.Background(), "viewing-events", kafka.Message{Key: "k", Value: 1}))
	assert.NoError(t, client.Close())
}
