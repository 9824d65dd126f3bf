package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	deliverycontext "carmarket/internal/delivery/context"
	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/repository"
	"carmarket/internal/domain/service"
	"carmarket/internal/errors"
	"carmarket/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type conversationService struct {
	offerRepo      repository.OfferRepository
	messageRepo    repository.MessageRepository
	dealershipRepo repository.DealershipRepository
	publisher      service.EventPublisher
	metrics        service.MarketMetrics
	logger         *slog.Logger
}

// ConversationServiceParams holds dependencies for ConversationService, injected by Fx.
type ConversationServiceParams struct {
	fx.In

	OfferRepo      repository.OfferRepository
	MessageRepo    repository.MessageRepository
	DealershipRepo repository.DealershipRepository
	Publisher      service.EventPublisher
	Metrics        service.MarketMetrics
	Logger         *slog.Logger
}

// NewConversationService is the constructor for conversationService.
func NewConversationService(params ConversationServiceParams) usecase.ConversationUsecase {
	return &conversationService{
		offerRepo:      params.OfferRepo,
		messageRepo:    params.MessageRepo,
		dealershipRepo: params.DealershipRepo,
		publisher:      params.Publisher,
		metrics:        params.Metrics,
		logger:         params.Logger,
	}
}

func (srv *conversationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *conversationService) ResolveContext(ctx context.Context, offerID uuid.UUID, callerID string) (*entity.ConversationContext, error) {
	_, conversation, err := srv.resolve(ctx, offerID, callerID)

	return conversation, err
}

// resolve loads the thread and places the caller on one side of it.
// The dealer side wins when the caller is on both.
func (srv *conversationService) resolve(ctx context.Context, offerID uuid.UUID, callerID string) (*entity.OfferThread, *entity.ConversationContext, error) {
	if callerID == "" {
		return nil, nil, domainerrors.ErrUnauthenticated
	}

	thread, err := srv.offerRepo.FindThread(ctx, offerID)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrNotFound, "offer not found")
		}

		return nil, nil, errors.Wrap(err, "failed to load offer thread")
	}

	dealerSide, err := isDealerSide(ctx, srv.dealershipRepo, thread, callerID)
	if err != nil {
		return nil, nil, err
	}

	conversation := &entity.ConversationContext{
		OfferID:   thread.Offer.ID,
		RequestID: thread.Offer.RequestID,
	}

	switch {
	case dealerSide:
		conversation.ViewerRole = entity.RoleDealer
	case thread.Request.OwnedBy(callerID):
		conversation.ViewerRole = entity.RoleBuyer
	default:
		return nil, nil, errors.Wrap(domainerrors.ErrUnauthorized, "caller is not a participant of the offer")
	}

	return thread, conversation, nil
}

func (srv *conversationService) ListMessages(ctx context.Context, offerID uuid.UUID, callerID string) (*usecase.Conversation, error) {
	_, conversation, err := srv.resolve(ctx, offerID, callerID)
	if err != nil {
		return nil, err
	}

	messages, err := srv.messageRepo.ListByOffer(ctx, offerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offer messages")
	}

	return &usecase.Conversation{
		Messages: messages,
		Context:  *conversation,
	}, nil
}

// PostMessage validates the text before touching the store. The text is
// stored exactly as sent.
func (srv *conversationService) PostMessage(ctx context.Context, offerID uuid.UUID, callerID, text string) (*usecase.PostedMessage, error) {
	if n := utf8.RuneCountInString(text); n < 1 || n > usecase.MaxMessageLength {
		return nil, domainerrors.NewFieldError("message",
			fmt.Sprintf("Meldingen må være mellom 1 og %d tegn", usecase.MaxMessageLength))
	}

	thread, conversation, err := srv.resolve(ctx, offerID, callerID)
	if err != nil {
		return nil, err
	}

	message := &entity.OfferMessage{
		OfferID:    offerID,
		SenderID:   callerID,
		SenderRole: conversation.ViewerRole,
		Message:    text,
		CreatedAt:  time.Now(),
	}
	if err := srv.messageRepo.Create(ctx, message); err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "offer removed while posting")
		}

		return nil, errors.Wrap(err, "failed to store offer message")
	}

	srv.metrics.MessagePosted(string(message.SenderRole))

	paths := conversation.InvalidationPaths()

	recipients := []string{thread.Request.BuyerID}
	if conversation.ViewerRole == entity.RoleBuyer {
		recipients = dealerRecipients(thread)
	}
	publishMarketEvent(ctx, srv.publisher, srv.log(ctx), &service.MarketEvent{
		Type:              service.EventMessagePosted,
		BuyerRequestID:    thread.Offer.RequestID.String(),
		OfferID:           offerID.String(),
		DealershipID:      thread.Offer.DealershipID.String(),
		ActorID:           callerID,
		Title:             "Ny melding om " + thread.Offer.CarMake + " " + thread.Offer.CarModel,
		Preview:           preview(text),
		RecipientIDs:      excluding(recipients, callerID),
		InvalidationPaths: paths,
	})

	return &usecase.PostedMessage{
		Message:           message,
		Context:           *conversation,
		InvalidationPaths: paths,
	}, nil
}

func excluding(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, candidate := range ids {
		if candidate != id {
			out = append(out, candidate)
		}
	}

	return out
}
