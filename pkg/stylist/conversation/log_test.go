package conversation

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"outfix-be/internal/constant"
	"outfix-be/internal/entity"
)

func TestAppendOrdering(t *testing.T) {
	now := time.Unix(1000, 0)

	log, _ := AppendUser(nil, "hello", now)
	log, pendingId := AppendPending(log, now)

	if len(log) != 2 {
		t.Fatalf("len = %d, want 2", len(log))
	}
	if log[0].Role != constant.ChatMessageRoleUser {
		t.Errorf("first role = %q", log[0].Role)
	}
	if !log[1].Pending {
		t.Error("placeholder not pending")
	}
	if log[1].Id != pendingId {
		t.Error("returned id does not address the placeholder")
	}
}

func TestResolveReplacesInPlace(t *testing.T) {
	now := time.Unix(1000, 0)

	log, _ := AppendUser(nil, "hello", now)
	log, pendingId := AppendPending(log, now)

	recs := []entity.Box{{Id: "casual-basics"}}
	resolved, err := Resolve(log, pendingId, "here you go", recs, nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	// The placeholder's position, id and creation time survive resolution.
	if len(resolved) != 2 {
		t.Fatalf("len = %d, want 2", len(resolved))
	}
	msg := resolved[1]
	if msg.Id != pendingId {
		t.Error("id changed on resolution")
	}
	if msg.Pending {
		t.Error("message still pending")
	}
	if msg.Content != "here you go" {
		t.Errorf("Content = %q", msg.Content)
	}
	if len(msg.Recommendations) != 1 {
		t.Errorf("Recommendations = %d", len(msg.Recommendations))
	}
	if !msg.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", msg.CreatedAt, now)
	}
}

func TestResolveLeavesOriginalLogUntouched(t *testing.T) {
	now := time.Unix(1000, 0)
	log, pendingId := AppendPending(nil, now)

	if _, err := Resolve(log, pendingId, "done", nil, nil); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !log[0].Pending {
		t.Error("input log mutated")
	}
}

func TestResolveExactlyOnce(t *testing.T) {
	now := time.Unix(1000, 0)
	log, pendingId := AppendPending(nil, now)

	resolved, err := Resolve(log, pendingId, "done", nil, nil)
	if err != nil {
		t.Fatalf("first Resolve() error = %v", err)
	}

	if _, err := Resolve(resolved, pendingId, "again", nil, nil); !errors.Is(err, ErrUnknownMessage) {
		t.Errorf("second Resolve() error = %v, want ErrUnknownMessage", err)
	}
}

func TestResolveUnknownId(t *testing.T) {
	log, _ := AppendPending(nil, time.Unix(1000, 0))

	if _, err := Resolve(log, uuid.New(), "done", nil, nil); !errors.Is(err, ErrUnknownMessage) {
		t.Errorf("error = %v, want ErrUnknownMessage", err)
	}
}

// Ids never repeat across appends, so a resolved log holds exactly one
// message per id.
func TestAppendIdsUnique(t *testing.T) {
	now := time.Unix(1000, 0)

	var log []entity.ChatMessage
	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 10; i++ {
		var id uuid.UUID
		log, id = AppendAssistant(log, "msg", now)
		if seen[id] {
			t.Fatalf("duplicate id at append %d", i)
		}
		seen[id] = true
	}
}
