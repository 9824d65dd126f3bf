package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "carmarket/internal/delivery/context"
	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/repository"
	"carmarket/internal/errors"
	"carmarket/internal/usecase"

	"github.com/google/uuid"
)

type dealershipService struct {
	txManager      repository.TransactionManager
	dealershipRepo repository.DealershipRepository
	country        string
	logger         *slog.Logger
}

// NewDealershipService is the constructor for dealershipService.
func NewDealershipService(
	txManager repository.TransactionManager,
	dealershipRepo repository.DealershipRepository,
	marketplace MarketplaceSettings,
	logger *slog.Logger,
) usecase.DealershipUsecase {
	return &dealershipService{
		txManager:      txManager,
		dealershipRepo: dealershipRepo,
		country:        marketplace.Country,
		logger:         logger,
	}
}

func (srv *dealershipService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register writes the dealership, the owner membership and the role promotion atomically.
func (srv *dealershipService) Register(ctx context.Context, ownerID string, input *usecase.RegisterDealershipInput) (*entity.Dealership, error) {
	dealership, err := srv.newDealership(ownerID, input)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		dealershipRepo := repoFactory.NewDealershipRepository()

		// 1. Insert the dealership
		if err := dealershipRepo.Create(ctx, dealership); err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfilePending
			}

			return errors.Wrap(err, "failed to create dealership")
		}

		// 2. Link the owner
		membership := &entity.DealerMembership{
			DealershipID: dealership.ID,
			UserID:       ownerID,
			Role:         entity.MemberRoleOwner,
		}
		if err := dealershipRepo.AddMember(ctx, membership); err != nil {
			return errors.Wrap(err, "failed to add owner membership")
		}

		// 3. Promote the owner; admins keep their role
		profileRepo := repoFactory.NewProfileRepository()
		profile, err := profileRepo.FindByUserID(ctx, ownerID)
		if err != nil {
			return errors.Wrap(err, "failed to load owner profile")
		}
		if profile.Role == entity.RoleBuyer {
			if err := profileRepo.UpdateRole(ctx, ownerID, entity.RoleDealer); err != nil {
				return errors.Wrap(err, "failed to promote owner to dealer")
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register dealership")
	}

	srv.log(ctx).Info("Dealership registered",
		slog.String("dealershipID", dealership.ID.String()),
		slog.String("ownerID", ownerID),
	)

	return dealership, nil
}

func (srv *dealershipService) newDealership(ownerID string, input *usecase.RegisterDealershipInput) (*entity.Dealership, error) {
	name := strings.TrimSpace(input.Name)
	orgNumber := strings.TrimSpace(input.OrgNumber)
	city := strings.TrimSpace(input.City)
	postalCode := strings.TrimSpace(input.PostalCode)
	address := strings.TrimSpace(input.Address)

	check := newFormCheck()
	check.length("name", name, 2, 200)
	check.length("orgNumber", orgNumber, 4, 32)
	check.length("city", city, 0, 120)
	check.length("postalCode", postalCode, 0, 16)
	check.length("address", address, 0, 255)
	check.check("latitude", (input.Latitude == nil) == (input.Longitude == nil), "Både breddegrad og lengdegrad må oppgis")
	if err := check.err(); err != nil {
		return nil, err
	}

	now := time.Now()

	return &entity.Dealership{
		OwnerID:    ownerID,
		Name:       name,
		OrgNumber:  orgNumber,
		Address:    address,
		City:       city,
		PostalCode: postalCode,
		Country:    srv.country,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		Makes:      strings.TrimSpace(input.Makes),
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

func (srv *dealershipService) ListForOwner(ctx context.Context, ownerID string) ([]*entity.Dealership, error) {
	dealerships, err := srv.dealershipRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list dealerships for owner")
	}

	return dealerships, nil
}

// ResolveForDealer never guesses between several dealerships; the caller has to pick one.
func (srv *dealershipService) ResolveForDealer(ctx context.Context, userID string, dealershipID *uuid.UUID) (*entity.Dealership, error) {
	if dealershipID != nil {
		isMember, err := srv.dealershipRepo.IsMember(ctx, *dealershipID, userID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check dealership membership")
		}
		if !isMember {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "dealership not found for user")
		}

		dealership, err := srv.dealershipRepo.FindByID(ctx, *dealershipID)
		if err != nil {
			if errors.Is(err, repository.ErrDealershipNotFound) {
				return nil, errors.Wrap(domainerrors.ErrNotFound, "dealership not found")
			}

			return nil, errors.Wrap(err, "failed to find dealership")
		}

		return dealership, nil
	}

	dealerships, err := srv.dealershipRepo.ListForMember(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list dealerships for member")
	}

	switch len(dealerships) {
	case 0:
		return nil, domainerrors.ErrDealershipRequired
	case 1:
		return dealerships[0], nil
	default:
		return nil, domainerrors.NewFieldError("dealershipId", "Velg hvilken forhandler du handler på vegne av")
	}
}

func (srv *dealershipService) IsMember(ctx context.Context, dealershipID uuid.UUID, userID string) (bool, error) {
	isMember, err := srv.dealershipRepo.IsMember(ctx, dealershipID, userID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check dealership membership")
	}

	return isMember, nil
}
