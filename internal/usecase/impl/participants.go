package impl

import (
	"context"
	"slices"

	"carmarket/internal/domain/entity"
	"carmarket/internal/domain/repository"
	"carmarket/internal/errors"
)

// isDealerSide reports whether userID may act for the dealership behind the offer.
// Membership is read on every call so revoked members lose access at once.
func isDealerSide(ctx context.Context, dealershipRepo repository.DealershipRepository, thread *entity.OfferThread, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	if thread.Offer.DealerUserID == userID {
		return true, nil
	}
	if thread.Dealership != nil && thread.Dealership.OwnerID == userID {
		return true, nil
	}

	isMember, err := dealershipRepo.IsMember(ctx, thread.Offer.DealershipID, userID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check dealership membership")
	}

	return isMember, nil
}

// dealerRecipients is the submitting dealer plus the dealership owner.
func dealerRecipients(thread *entity.OfferThread) []string {
	recipients := []string{thread.Offer.DealerUserID}
	if thread.Dealership != nil && !slices.Contains(recipients, thread.Dealership.OwnerID) {
		recipients = append(recipients, thread.Dealership.OwnerID)
	}

	return recipients
}
