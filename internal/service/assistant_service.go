package service

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"outfix-be/internal/constant"
	"outfix-be/internal/dto"
	"outfix-be/internal/entity"
	"outfix-be/internal/mapper"
	"outfix-be/internal/pkg/logger"
	"outfix-be/internal/repository/contract"
	"outfix-be/internal/repository/memory"
	"outfix-be/pkg/events"
	"outfix-be/pkg/store"
	"outfix-be/pkg/stylist/conversation"
	"outfix-be/pkg/stylist/onboarding"
	"outfix-be/pkg/stylist/script"
	"outfix-be/pkg/stylist/typist"
	"outfix-be/pkg/vision"
)

const maxPhotoRecommendations = 3

type IAssistantService interface {
	CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	ToggleOnboarding(ctx context.Context, req *dto.ToggleOnboardingRequest) (*dto.OnboardingResponse, error)
	AdvanceOnboarding(ctx context.Context, req *dto.AdvanceOnboardingRequest) (*dto.OnboardingResponse, error)
	SendChat(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	AnalyzePhoto(ctx context.Context, req *dto.AnalyzePhotoRequest) (*dto.SendChatResponse, error)
	GetHistory(ctx context.Context, sessionId string) ([]*dto.ChatMessageResponse, error)
	GetPoints(ctx context.Context, sessionId string) (*dto.PointsResponse, error)
}

type assistantService struct {
	sessionRepo  *memory.SessionRepository
	boxRepo      contract.BoxRepository
	wardrobeRepo contract.WardrobeRepository
	provider     vision.StyleProvider
	publisher    *events.Publisher
	log          logger.ILogger

	boxScript    *script.Script
	outfitScript *script.Script
	typist       *typist.Typist

	now  func() time.Time
	pick func(n int) int
}

func NewAssistantService(
	sessionRepo *memory.SessionRepository,
	boxRepo contract.BoxRepository,
	wardrobeRepo contract.WardrobeRepository,
	provider vision.StyleProvider,
	publisher *events.Publisher,
	typ *typist.Typist,
	log logger.ILogger,
) IAssistantService {
	return &assistantService{
		sessionRepo:  sessionRepo,
		boxRepo:      boxRepo,
		wardrobeRepo: wardrobeRepo,
		provider:     provider,
		publisher:    publisher,
		log:          log,
		boxScript:    script.BoxDiscovery(),
		outfitScript: script.OutfitCreation(),
		typist:       typ,
		now:          time.Now,
		pick:         rand.Intn,
	}
}

func (as *assistantService) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	// 1. Resolve the assistant mode, box discovery being the default.
	mode := req.Mode
	if mode == "" {
		mode = constant.AssistantModeBoxes
	}

	// 2. Seed the session with its starting balance and greeting.
	session := store.NewSession(uuid.NewString(), mode)
	session.AddPoints(constant.StylePointsInitial)

	greetingText := constant.BoxesGreeting
	if mode == constant.AssistantModeOutfits {
		greetingText = constant.OutfitsGreeting
	}
	greeting, err := as.reply(session, greetingText, nil, nil, false)
	if err != nil {
		return nil, err
	}

	// 3. Persist and respond.
	as.sessionRepo.Save(session)

	as.log.Info("assistant_service", "session created", map[string]interface{}{
		"session_id": session.ID,
		"mode":       mode,
	})

	return &dto.SessionResponse{
		SessionId:   session.ID,
		Mode:        session.Mode,
		State:       session.State,
		Greeting:    mapper.ToChatMessageResponse(*greeting),
		StylePoints: session.Points(),
	}, nil
}

func (as *assistantService) ToggleOnboarding(ctx context.Context, req *dto.ToggleOnboardingRequest) (*dto.OnboardingResponse, error) {
	session, ok := as.sessionRepo.Get(req.SessionId)
	if !ok {
		return nil, dto.ErrSessionNotFound
	}

	if err := onboarding.Toggle(&session.Profile, req.Dimension, req.Tag); err != nil {
		return nil, err
	}
	as.sessionRepo.Save(session)

	return &dto.OnboardingResponse{
		SessionId: session.ID,
		State:     session.State,
		Profile:   mapper.ToProfileResponse(session.Profile),
	}, nil
}

func (as *assistantService) AdvanceOnboarding(ctx context.Context, req *dto.AdvanceOnboardingRequest) (*dto.OnboardingResponse, error) {
	session, ok := as.sessionRepo.Get(req.SessionId)
	if !ok {
		return nil, dto.ErrSessionNotFound
	}

	// 1. Gate on a non-empty selection: a blocked advance leaves the step
	//    counter and the conversation log untouched, only a notice goes out.
	if err := onboarding.Advance(&session.Profile); err != nil {
		if errors.Is(err, onboarding.ErrEmptySelection) {
			return &dto.OnboardingResponse{
				SessionId: session.ID,
				State:     session.State,
				Profile:   mapper.ToProfileResponse(session.Profile),
				Notice:    constant.OnboardingEmptySelectionNotice,
			}, nil
		}
		return nil, err
	}

	res := &dto.OnboardingResponse{
		SessionId: session.ID,
		State:     session.State,
		Profile:   mapper.ToProfileResponse(session.Profile),
	}

	// 2. Completing the final step freezes the profile, computes the initial
	//    recommendation set and moves the session to ready.
	if onboarding.Complete(session.Profile) {
		recs := onboarding.Recommend(session.Profile, as.boxRepo.GetAll(), as.pick)
		session.Recommendations = recs
		session.State = store.StateReady

		reply, err := as.reply(session, constant.OnboardingCompleteResponse, recs, nil, true)
		if err != nil {
			return nil, err
		}

		res.State = session.State
		res.Completed = true
		res.Reply = mapper.ToChatMessageResponse(*reply)

		as.log.Info("assistant_service", "onboarding complete", map[string]interface{}{
			"session_id":      session.ID,
			"styles":          session.Profile.Styles,
			"recommendations": len(recs),
		})
	}

	as.sessionRepo.Save(session)
	return res, nil
}

func (as *assistantService) SendChat(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	session, ok := as.sessionRepo.Get(req.SessionId)
	if !ok {
		return nil, dto.ErrSessionNotFound
	}
	if session.State != store.StateReady {
		return nil, dto.ErrSessionNotReady
	}

	// 1. Record the user turn and announce it on the bus. A publish failure
	//    only costs the style points credit, never the reply.
	sent := as.appendUser(session, req.Chat)
	session.LastQuery = req.Chat

	if err := as.publisher.PublishChatSent(&events.ChatSent{
		SessionId: session.ID,
		Mode:      session.Mode,
		Chat:      req.Chat,
		SentAt:    as.now(),
	}); err != nil {
		as.log.Warn("assistant_service", "failed to publish chat event", map[string]interface{}{
			"session_id": session.ID,
			"error":      err.Error(),
		})
	}

	// 2. Match the input against the mode's script, first match wins.
	var (
		recs   []entity.Box
		outfit *entity.OutfitSuggestion
	)
	rule := as.scriptFor(session.Mode).Eval(req.Chat)
	if rule.Filter != nil {
		recs = rule.Filter(as.boxRepo.GetAll())
		session.Recommendations = recs
	}
	if rule.Outfit != nil {
		outfit = rule.Outfit(as.wardrobeRepo.GetAll())
	}

	// 3. Resolve the reply behind the typing indicator.
	reply, err := as.reply(session, rule.Response, recs, outfit, true)
	if err != nil {
		return nil, err
	}
	as.sessionRepo.Save(session)

	return &dto.SendChatResponse{
		SessionId: session.ID,
		State:     session.State,
		Sent:      mapper.ToChatMessageResponse(*sent),
		Reply:     mapper.ToChatMessageResponse(*reply),
	}, nil
}

func (as *assistantService) AnalyzePhoto(ctx context.Context, req *dto.AnalyzePhotoRequest) (*dto.SendChatResponse, error) {
	session, ok := as.sessionRepo.Get(req.SessionId)
	if !ok {
		return nil, dto.ErrSessionNotFound
	}

	// 1. Validate locally before anything reaches the wire.
	mimeType, data := vision.SplitDataURI(req.Image)
	if req.MimeType != "" {
		mimeType = req.MimeType
	}
	if vr := vision.ValidateImage(vision.DecodedSize(data), mimeType); !vr.Valid {
		return nil, &dto.InvalidImageError{Reason: vr.Reason}
	}

	// 2. Record the photo turn, then analyze behind the typing indicator.
	sent := as.appendUser(session, constant.PhotoSentMessage)

	var (
		replyText string
		recs      []entity.Box
	)
	analysis, err := as.provider.AnalyzeStyle(ctx, data)
	if err != nil {
		// Remote failures surface inline as the assistant's reply; the
		// conversation keeps flowing.
		replyText = failureMessage(err)
		as.log.Warn("assistant_service", "style analysis failed", map[string]interface{}{
			"session_id": session.ID,
			"error":      err.Error(),
		})
	} else {
		replyText = analysis.Description
		recs = as.boxesForCategories(analysis.Categories)
		session.Recommendations = recs
	}

	reply, rerr := as.reply(session, replyText, recs, nil, true)
	if rerr != nil {
		return nil, rerr
	}
	as.sessionRepo.Save(session)

	return &dto.SendChatResponse{
		SessionId: session.ID,
		State:     session.State,
		Sent:      mapper.ToChatMessageResponse(*sent),
		Reply:     mapper.ToChatMessageResponse(*reply),
	}, nil
}

func (as *assistantService) GetHistory(ctx context.Context, sessionId string) ([]*dto.ChatMessageResponse, error) {
	session, ok := as.sessionRepo.Get(sessionId)
	if !ok {
		return nil, dto.ErrSessionNotFound
	}
	return mapper.ToChatMessageResponses(session.Messages), nil
}

func (as *assistantService) GetPoints(ctx context.Context, sessionId string) (*dto.PointsResponse, error) {
	session, ok := as.sessionRepo.Get(sessionId)
	if !ok {
		return nil, dto.ErrSessionNotFound
	}
	return &dto.PointsResponse{
		SessionId:   session.ID,
		StylePoints: session.Points(),
	}, nil
}

func (as *assistantService) scriptFor(mode string) *script.Script {
	if mode == constant.AssistantModeOutfits {
		return as.outfitScript
	}
	return as.boxScript
}

func (as *assistantService) appendUser(session *store.Session, content string) *entity.ChatMessage {
	log, id := conversation.AppendUser(session.Messages, content, as.now())
	session.Messages = log
	return messageById(session.Messages, id)
}

// reply runs the placeholder-then-resolve sequence for one assistant turn.
// With pause set, the typing delay runs between the two, so clients polling
// the history observe the pending indicator before the content lands.
func (as *assistantService) reply(
	session *store.Session,
	content string,
	recs []entity.Box,
	outfit *entity.OutfitSuggestion,
	pause bool,
) (*entity.ChatMessage, error) {
	log, id := conversation.AppendPending(session.Messages, as.now())
	session.Messages = log

	if pause {
		as.typist.Pause()
	}

	resolved, err := conversation.Resolve(session.Messages, id, content, recs, outfit)
	if err != nil {
		return nil, err
	}
	session.Messages = resolved
	return messageById(session.Messages, id), nil
}

func (as *assistantService) boxesForCategories(categories []string) []entity.Box {
	seen := make(map[string]bool)
	out := make([]entity.Box, 0, maxPhotoRecommendations)
	for _, category := range categories {
		for _, box := range as.boxRepo.FilterByCategory(category) {
			if seen[box.Id] {
				continue
			}
			seen[box.Id] = true
			out = append(out, box)
			if len(out) == maxPhotoRecommendations {
				return out
			}
		}
	}
	return out
}

func messageById(log []entity.ChatMessage, id uuid.UUID) *entity.ChatMessage {
	for i := range log {
		if log[i].Id == id {
			return &log[i]
		}
	}
	return nil
}

// failureMessage maps each analysis failure class to the text shown inline
// in the conversation.
func failureMessage(err error) string {
	var gateErr *vision.GateError
	switch {
	case errors.As(err, &gateErr):
		return gateErr.Error()
	case errors.Is(err, vision.ErrNotConfigured):
		return constant.AnalysisNotConfiguredReply
	case errors.Is(err, vision.ErrRateLimited):
		return constant.AnalysisRateLimitedReply
	case errors.Is(err, vision.ErrInvalidResponse):
		return constant.AnalysisUnreadableReply
	default:
		return constant.AnalysisFailedReply
	}
}
