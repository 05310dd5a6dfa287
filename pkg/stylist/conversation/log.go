// Package conversation maintains the assistant chat log. The log is
// append-oriented: messages are added at the end, and the single permitted
// mutation — resolving a typing placeholder — is modeled as replace-by-id
// so the ordering history stays easy to reason about.
package conversation

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"outfix-be/internal/constant"
	"outfix-be/internal/entity"
)

var ErrUnknownMessage = errors.New("no pending message with that id")

// AppendUser appends a resolved user turn and returns the new log.
func AppendUser(log []entity.ChatMessage, content string, now time.Time) ([]entity.ChatMessage, uuid.UUID) {
	msg := entity.ChatMessage{
		Id:        uuid.New(),
		Role:      constant.ChatMessageRoleUser,
		Content:   content,
		CreatedAt: now,
	}
	return append(log, msg), msg.Id
}

// AppendAssistant appends an already-resolved assistant turn. Used for
// content that carries no typing indicator semantics of its own.
func AppendAssistant(log []entity.ChatMessage, content string, now time.Time) ([]entity.ChatMessage, uuid.UUID) {
	msg := entity.ChatMessage{
		Id:        uuid.New(),
		Role:      constant.ChatMessageRoleAssistant,
		Content:   content,
		CreatedAt: now,
	}
	return append(log, msg), msg.Id
}

// AppendPending appends the typing placeholder that precedes every
// assistant reply. The returned id is later passed to Resolve.
func AppendPending(log []entity.ChatMessage, now time.Time) ([]entity.ChatMessage, uuid.UUID) {
	msg := entity.ChatMessage{
		Id:        uuid.New(),
		Role:      constant.ChatMessageRoleAssistant,
		Pending:   true,
		CreatedAt: now,
	}
	return append(log, msg), msg.Id
}

// Resolve fills the pending placeholder identified by id, exactly once.
// The resolved message keeps the placeholder's position, id and creation
// time, so after resolution exactly one message with that id exists.
func Resolve(
	log []entity.ChatMessage,
	id uuid.UUID,
	content string,
	recs []entity.Box,
	outfit *entity.OutfitSuggestion,
) ([]entity.ChatMessage, error) {
	for i, msg := range log {
		if msg.Id != id {
			continue
		}
		if !msg.Pending {
			return nil, ErrUnknownMessage
		}

		out := make([]entity.ChatMessage, len(log))
		copy(out, log)
		out[i] = entity.ChatMessage{
			Id:              msg.Id,
			Role:            msg.Role,
			Content:         content,
			Recommendations: recs,
			Outfit:          outfit,
			Pending:         false,
			CreatedAt:       msg.CreatedAt,
		}
		return out, nil
	}
	return nil, ErrUnknownMessage
}
