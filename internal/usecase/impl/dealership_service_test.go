package impl

import (
	"context"
	"testing"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/repository"
	"carmarket/internal/errors"
	mockRepo "carmarket/internal/mocks/repository"
	"carmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dealershipServiceFixture struct {
	txManager      *mockRepo.MockTransactionManager
	dealershipRepo *mockRepo.MockDealershipRepository
	srv            usecase.DealershipUsecase
}

func createTestDealershipService(t *testing.T) *dealershipServiceFixture {
	t.Helper()

	fx := &dealershipServiceFixture{
		txManager:      mockRepo.NewMockTransactionManager(t),
		dealershipRepo: mockRepo.NewMockDealershipRepository(t),
	}
	fx.srv = NewDealershipService(fx.txManager, fx.dealershipRepo, MarketplaceSettings{Currency: "NOK", Country: "NO"}, testLogger())

	return fx
}

// runTx makes the mocked transaction call fn with factory and return its error.
func runTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestDealershipService_Register_Success(t *testing.T) {
	fx := createTestDealershipService(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txDealerships := mockRepo.NewMockDealershipRepository(t)
	txProfiles := mockRepo.NewMockProfileRepository(t)
	dealershipID := uuid.New()

	runTx(fx.txManager, factory)
	factory.EXPECT().NewDealershipRepository().Return(txDealerships)
	factory.EXPECT().NewProfileRepository().Return(txProfiles)

	txDealerships.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Dealership")).
		Run(func(_ context.Context, d *entity.Dealership) { d.ID = dealershipID }).
		Return(nil)
	txDealerships.EXPECT().
		AddMember(ctx, mock.MatchedBy(func(m *entity.DealerMembership) bool {
			return m.DealershipID == dealershipID && m.UserID == "owner-1" && m.Role == entity.MemberRoleOwner
		})).
		Return(nil)
	txProfiles.EXPECT().FindByUserID(ctx, "owner-1").Return(&entity.UserProfile{UserID: "owner-1", Role: entity.RoleBuyer}, nil)
	txProfiles.EXPECT().UpdateRole(ctx, "owner-1", entity.RoleDealer).Return(nil)

	dealership, err := fx.srv.Register(ctx, "owner-1", &usecase.RegisterDealershipInput{
		Name:       "  Bilhuset Oslo ",
		OrgNumber:  "987654321",
		City:       "Oslo",
		PostalCode: "0150",
	})
	require.NoError(t, err)
	assert.Equal(t, dealershipID, dealership.ID)
	assert.Equal(t, "Bilhuset Oslo", dealership.Name)
	assert.Equal(t, "NO", dealership.Country)
	assert.Equal(t, "owner-1", dealership.OwnerID)
}

func TestDealershipService_Register_AdminKeepsRole(t *testing.T) {
	fx := createTestDealershipService(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txDealerships := mockRepo.NewMockDealershipRepository(t)
	txProfiles := mockRepo.NewMockProfileRepository(t)

	runTx(fx.txManager, factory)
	factory.EXPECT().NewDealershipRepository().Return(txDealerships)
	factory.EXPECT().NewProfileRepository().Return(txProfiles)
	txDealerships.EXPECT().Create(ctx, mock.Anything).Return(nil)
	txDealerships.EXPECT().AddMember(ctx, mock.Anything).Return(nil)
	txProfiles.EXPECT().FindByUserID(ctx, "admin-1").Return(&entity.UserProfile{UserID: "admin-1", Role: entity.RoleAdmin}, nil)

	_, err := fx.srv.Register(ctx, "admin-1", &usecase.RegisterDealershipInput{Name: "Admin Bil", OrgNumber: "123456789"})
	require.NoError(t, err)
	txProfiles.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestDealershipService_Register_Validation(t *testing.T) {
	fx := createTestDealershipService(t)
	lat := 59.91

	_, err := fx.srv.Register(context.Background(), "owner-1", &usecase.RegisterDealershipInput{
		Name:      "X",
		OrgNumber: "12",
		Latitude:  &lat,
	})

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Fields(), "name")
	assert.Contains(t, validationErr.Fields(), "orgNumber")
	assert.Contains(t, validationErr.Fields(), "latitude")
}

func TestDealershipService_Register_ProfilePending(t *testing.T) {
	fx := createTestDealershipService(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txDealerships := mockRepo.NewMockDealershipRepository(t)

	runTx(fx.txManager, factory)
	factory.EXPECT().NewDealershipRepository().Return(txDealerships)
	txDealerships.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrProfileNotFound)

	_, err := fx.srv.Register(ctx, "owner-1", &usecase.RegisterDealershipInput{Name: "Bilhuset", OrgNumber: "987654321"})
	assert.ErrorIs(t, err, domainerrors.ErrProfilePending)
}

func TestDealershipService_ResolveForDealer(t *testing.T) {
	ctx := context.Background()
	dealershipID := uuid.New()
	dealership := &entity.Dealership{ID: dealershipID, Name: "Bilhuset"}

	t.Run("explicit id, member", func(t *testing.T) {
		fx := createTestDealershipService(t)
		fx.dealershipRepo.EXPECT().IsMember(ctx, dealershipID, "dealer-1").Return(true, nil)
		fx.dealershipRepo.EXPECT().FindByID(ctx, dealershipID).Return(dealership, nil)

		got, err := fx.srv.ResolveForDealer(ctx, "dealer-1", &dealershipID)
		require.NoError(t, err)
		assert.Same(t, dealership, got)
	})

	t.Run("explicit id, not a member", func(t *testing.T) {
		fx := createTestDealershipService(t)
		fx.dealershipRepo.EXPECT().IsMember(ctx, dealershipID, "dealer-1").Return(false, nil)

		_, err := fx.srv.ResolveForDealer(ctx, "dealer-1", &dealershipID)
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})

	t.Run("no memberships", func(t *testing.T) {
		fx := createTestDealershipService(t)
		fx.dealershipRepo.EXPECT().ListForMember(ctx, "dealer-1").Return([]*entity.Dealership{}, nil)

		_, err := fx.srv.ResolveForDealer(ctx, "dealer-1", nil)
		assert.ErrorIs(t, err, domainerrors.ErrDealershipRequired)
	})

	t.Run("single membership", func(t *testing.T) {
		fx := createTestDealershipService(t)
		fx.dealershipRepo.EXPECT().ListForMember(ctx, "dealer-1").Return([]*entity.Dealership{dealership}, nil)

		got, err := fx.srv.ResolveForDealer(ctx, "dealer-1", nil)
		require.NoError(t, err)
		assert.Same(t, dealership, got)
	})

	t.Run("several memberships need a choice", func(t *testing.T) {
		fx := createTestDealershipService(t)
		fx.dealershipRepo.EXPECT().ListForMember(ctx, "dealer-1").
			Return([]*entity.Dealership{dealership, {ID: uuid.New()}}, nil)

		_, err := fx.srv.ResolveForDealer(ctx, "dealer-1", nil)
		var validationErr *domainerrors.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Contains(t, validationErr.Fields(), "dealershipId")
	})
}
