// Package events defines the assistant activity events flowing over the
// in-process bus.
package events

import "time"

const TopicChatSent = "assistant.chat.sent"

// ChatSent is published for every user chat turn; the consumer credits
// style points against the session.
type ChatSent struct {
	SessionId string    `json:"session_id"`
	Mode      string    `json:"mode"`
	Chat      string    `json:"chat"`
	SentAt    time.Time `json:"sent_at"`
}
