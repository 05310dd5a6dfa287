package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"

	"outfix-be/internal/constant"
	"outfix-be/internal/repository/memory"
	"outfix-be/pkg/events"
	"outfix-be/pkg/store"
)

func chatSentMessage(t *testing.T, sessionId string) *message.Message {
	t.Helper()

	payload, err := json.Marshal(&events.ChatSent{
		SessionId: sessionId,
		Mode:      constant.AssistantModeBoxes,
		Chat:      "hello",
		SentAt:    time.Now(),
	})
	assert.NoError(t, err)

	return message.NewMessage("test-msg", payload)
}

func TestHandleChatSentCreditsPoints(t *testing.T) {
	sessionRepo := memory.NewSessionRepository()
	session := store.NewSession("session-1", constant.AssistantModeBoxes)
	session.AddPoints(constant.StylePointsInitial)
	sessionRepo.Save(session)

	cs := NewConsumerService(nil, sessionRepo, nopLogger{}).(*consumerService)
	cs.handleChatSent(chatSentMessage(t, "session-1"))

	assert.Equal(t, constant.StylePointsInitial+constant.StylePointsPerChat, session.Points())
}

func TestHandleChatSentIgnoresExpiredSession(t *testing.T) {
	cs := NewConsumerService(nil, memory.NewSessionRepository(), nopLogger{}).(*consumerService)

	// No session saved; must not panic.
	cs.handleChatSent(chatSentMessage(t, "gone"))
}

func TestHandleChatSentDropsMalformedPayload(t *testing.T) {
	sessionRepo := memory.NewSessionRepository()
	session := store.NewSession("session-1", constant.AssistantModeBoxes)
	sessionRepo.Save(session)

	cs := NewConsumerService(nil, sessionRepo, nopLogger{}).(*consumerService)
	cs.handleChatSent(message.NewMessage("bad", []byte("not-json")))

	assert.Equal(t, 0, session.Points())
}
