package events

import (
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Publisher wraps a watermill publisher with JSON payload marshalling.
type Publisher struct {
	pub message.Publisher
}

func NewPublisher(pub message.Publisher) *Publisher {
	return &Publisher{pub: pub}
}

func (p *Publisher) PublishChatSent(evt *ChatSent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return p.pub.Publish(TopicChatSent, message.NewMessage(watermill.NewUUID(), payload))
}
