package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/palmcar/rentaldesk/internal/logger"
	"github.com/palmcar/rentaldesk/internal/store"
	"github.com/palmcar/rentaldesk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.FleetRepository
// ─────────────────────────────────────────────

type mockFleetRepository struct {
	loadFn       func(ctx context.Context) ([]models.Vehicle, error)
	saveFn       func(ctx context.Context, vehicles []models.Vehicle) error
	seededFn     func(ctx context.Context) (bool, error)
	markSeededFn func(ctx context.Context) error
}

func (m *mockFleetRepository) Load(ctx context.Context) ([]models.Vehicle, error) {
	if m.loadFn != nil {
		return m.loadFn(ctx)
	}
	return nil, nil
}

func (m *mockFleetRepository) Save(ctx context.Context, vehicles []models.Vehicle) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, vehicles)
	}
	return nil
}

func (m *mockFleetRepository) Seeded(ctx context.Context) (bool, error) {
	if m.seededFn != nil {
		return m.seededFn(ctx)
	}
	return false, nil
}

func (m *mockFleetRepository) MarkSeeded(ctx context.Context) error {
	if m.markSeededFn != nil {
		return m.markSeededFn(ctx)
	}
	return nil
}

func newTestFleetSvc(t *testing.T) FleetService {
	t.Helper()
	repo := store.NewFleetRepository(store.NewMemoryStorage(), logger.Nop())
	return NewFleetService(repo, false, logger.Nop())
}

// ── Seeding ──────────────────────────────────────────────────────────────────

func TestFleetService_List_SeedsDefaultCatalogOnce(t *testing.T) {
	svc := newTestFleetSvc(t)
	ctx := context.Background()

	vehicles, err := svc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, store.DefaultFleet(), vehicles)

	again, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, vehicles, again)
}

func TestFleetService_List_DoesNotReseedEmptiedCatalog(t *testing.T) {
	svc := newTestFleetSvc(t)
	ctx := context.Background()

	vehicles, err := svc.List(ctx)
	require.NoError(t, err)

	for _, vehicle := range vehicles {
		deleted, err := svc.Delete(ctx, vehicle.ID)
		require.NoError(t, err)
		require.True(t, deleted)
	}

	vehicles, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, vehicles, "emptied catalog must stay empty")
}

func TestFleetService_List_SeedDisabled(t *testing.T) {
	repo := store.NewFleetRepository(store.NewMemoryStorage(), logger.Nop())
	svc := NewFleetService(repo, true, logger.Nop())

	vehicles, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, vehicles)
}

func TestFleetService_List_LoadError(t *testing.T) {
	wantErr := errors.New("backend down")
	repo := &mockFleetRepository{
		loadFn: func(ctx context.Context) ([]models.Vehicle, error) { return nil, wantErr },
	}
	svc := NewFleetService(repo, false, logger.Nop())

	_, err := svc.List(context.Background())
	require.ErrorIs(t, err, wantErr)
}

// ── CRUD ─────────────────────────────────────────────────────────────────────

func TestFleetService_CreateAndGetByID(t *testing.T) {
	svc := newTestFleetSvc(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, models.Vehicle{
		Name:         "Dune Runner",
		Category:     models.CategorySUV,
		PricePerDay:  80,
		Seats:        7,
		Transmission: models.TransmissionAutomatic,
		Fuel:         "Diesel",
		AC:           true,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.ID, "car-"))

	found, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestFleetService_Create_GeneratesUniqueIDs(t *testing.T) {
	svc := newTestFleetSvc(t)
	ctx := context.Background()

	fields := models.Vehicle{Name: "Twin", Category: models.CategoryEconomy, PricePerDay: 30, Seats: 4}
	first, err := svc.Create(ctx, fields)
	require.NoError(t, err)
	second, err := svc.Create(ctx, fields)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestFleetService_Create_RejectsInvalidFields(t *testing.T) {
	svc := newTestFleetSvc(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.Vehicle{Name: "", PricePerDay: 50})
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Create(ctx, models.Vehicle{Name: "Free Car", PricePerDay: 0})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestFleetService_GetByID_NotFound(t *testing.T) {
	svc := newTestFleetSvc(t)

	_, err := svc.GetByID(context.Background(), "car-missing")
	require.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestFleetService_Update_MergesPatchFields(t *testing.T) {
	svc := newTestFleetSvc(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, models.Vehicle{
		Name:        "Old Name",
		Category:    models.CategoryCompact,
		PricePerDay: 40,
		Seats:       5,
		Fuel:        "Petrol",
	})
	require.NoError(t, err)

	newName := "New Name"
	newPrice := 55.0
	updated, err := svc.Update(ctx, created.ID, models.VehiclePatch{
		Name:        &newName,
		PricePerDay: &newPrice,
	})
	require.NoError(t, err)

	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, 55.0, updated.PricePerDay)
	assert.Equal(t, models.CategoryCompact, updated.Category, "untouched field must survive")
	assert.Equal(t, "Petrol", updated.Fuel, "untouched field must survive")
	assert.Equal(t, created.ID, updated.ID)
}

func TestFleetService_Update_NotFound(t *testing.T) {
	svc := newTestFleetSvc(t)

	name := "whatever"
	_, err := svc.Update(context.Background(), "car-missing", models.VehiclePatch{Name: &name})
	require.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestFleetService_Delete(t *testing.T) {
	svc := newTestFleetSvc(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, models.Vehicle{Name: "Short Timer", Category: models.CategoryEconomy, PricePerDay: 25, Seats: 2})
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.GetByID(ctx, created.ID)
	require.ErrorIs(t, err, ErrVehicleNotFound)

	deleted, err = svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "second delete reports nothing removed")
}
