package postgres

import (
	"context"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/repository"
	"carmarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

func (repo *messageRepository) Create(ctx context.Context, message *entity.OfferMessage) error {
	messageM := &model.OfferMessageModel{
		ID:         message.ID,
		OfferID:    message.OfferID,
		SenderID:   message.SenderID,
		SenderRole: string(message.SenderRole),
		Message:    message.Message,
		CreatedAt:  message.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOfferNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offer message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// ListByOffer reads the primary so a sender sees their own message right after posting it.
func (repo *messageRepository) ListByOffer(ctx context.Context, offerID uuid.UUID) ([]*entity.OfferMessage, error) {
	var messageModels []*model.OfferMessageModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("offer_id = ?", offerID).
		Order("created_at ASC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list offer messages")
	}

	messages := make([]*entity.OfferMessage, 0, len(messageModels))
	for _, m := range messageModels {
		messages = append(messages, &entity.OfferMessage{
			ID:         m.ID,
			OfferID:    m.OfferID,
			SenderID:   m.SenderID,
			SenderRole: entity.Role(m.SenderRole),
			Message:    m.Message,
			CreatedAt:  m.CreatedAt,
		})
	}

	return messages, nil
}
