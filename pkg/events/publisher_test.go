package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
)

func TestPublishChatSentRoundTrip(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	messages, err := pubSub.Subscribe(context.Background(), TopicChatSent)
	assert.NoError(t, err)

	sentAt := time.Unix(1000, 0).UTC()
	err = NewPublisher(pubSub).PublishChatSent(&ChatSent{
		SessionId: "session-1",
		Mode:      "boxes",
		Chat:      "hello",
		SentAt:    sentAt,
	})
	assert.NoError(t, err)

	select {
	case msg := <-messages:
		var evt ChatSent
		assert.NoError(t, json.Unmarshal(msg.Payload, &evt))
		assert.Equal(t, "session-1", evt.SessionId)
		assert.Equal(t, "hello", evt.Chat)
		assert.True(t, evt.SentAt.Equal(sentAt))
		msg.Ack()
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}
}
