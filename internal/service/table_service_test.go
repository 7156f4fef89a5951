package service

import (
	"context"
	"errors"
	"testing"

	"go-restaurant-ws/internal/model"
	"go-restaurant-ws/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingPublisher simulates an unreachable broker.
type failingPublisher struct{}

func (failingPublisher) Publish(ctx context.Context, topic string, msg []byte) error {
	return errors.New("broker down")
}

func (failingPublisher) Close() error { return nil }

func newTableFixture(t *testing.T) TableService {
	t.Helper()
	store := repository.NewMemoryStore()
	tables := repository.NewMemoryTables(store)

	for id := 1; id <= model.TableCount; id++ {
		require.NoError(t, tables.Create(&model.Table{ID: id, Status: model.TableAvailable}))
	}

	return NewTableService(tables, nil, nil)
}

func TestBoardHasFixedSize(t *testing.T) {
	svc := newTableFixture(t)

	tables, err := svc.ListTables()
	require.NoError(t, err)
	require.Len(t, tables, 20)
	assert.Equal(t, 1, tables[0].ID)
	assert.Equal(t, 20, tables[19].ID)
}

func TestSetStatusUpdatesOnlyMatchingTable(t *testing.T) {
	svc := newTableFixture(t)

	updated, err := svc.SetStatus(7, model.TableOccupied)
	require.NoError(t, err)
	assert.Equal(t, model.TableOccupied, updated.Status)

	tables, err := svc.ListTables()
	require.NoError(t, err)
	for _, table := range tables {
		if table.ID == 7 {
			assert.Equal(t, model.TableOccupied, table.Status)
		} else {
			assert.Equal(t, model.TableAvailable, table.Status)
		}
	}
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	svc := newTableFixture(t)

	_, err := svc.SetStatus(1, model.TableStatus("closed"))
	assert.ErrorIs(t, err, ErrInvalidTableStatus)
}

func TestSetStatusNotFound(t *testing.T) {
	svc := newTableFixture(t)

	_, err := svc.SetStatus(42, model.TableOccupied)
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestSetStatusSurvivesPublishFailure(t *testing.T) {
	store := repository.NewMemoryStore()
	tables := repository.NewMemoryTables(store)
	require.NoError(t, tables.Create(&model.Table{ID: 1, Status: model.TableAvailable}))
	svc := NewTableService(tables, nil, failingPublisher{})

	// a broker failure is logged, never surfaced to the write path
	table, err := svc.SetStatus(1, model.TableOccupied)
	require.NoError(t, err)
	assert.Equal(t, model.TableOccupied, table.Status)

	stored, err := svc.GetTable(1)
	require.NoError(t, err)
	assert.Equal(t, model.TableOccupied, stored.Status)
}

func TestOccupancyMetadataSurvivesStatusChange(t *testing.T) {
	svc := newTableFixture(t)

	customers := 4
	startTime := "19:30"
	_, err := svc.SetStatus(3, model.TableOccupied)
	require.NoError(t, err)
	_, err = svc.UpdateOccupancy(3, OccupancyUpdate{Customers: &customers, StartTime: &startTime})
	require.NoError(t, err)

	// moving away from occupied does not clear the metadata
	table, err := svc.SetStatus(3, model.TableAvailable)
	require.NoError(t, err)
	require.NotNil(t, table.Customers)
	assert.Equal(t, 4, *table.Customers)
	require.NotNil(t, table.StartTime)
	assert.Equal(t, "19:30", *table.StartTime)
}

func TestUpdateOccupancyHasNoStatusGuard(t *testing.T) {
	svc := newTableFixture(t)

	customers := 2
	table, err := svc.UpdateOccupancy(1, OccupancyUpdate{Customers: &customers})
	require.NoError(t, err)
	assert.Equal(t, model.TableAvailable, table.Status)
	require.NotNil(t, table.Customers)
	assert.Equal(t, 2, *table.Customers)
}

func TestUpdateOccupancyPartial(t *testing.T) {
	svc := newTableFixture(t)

	customers := 6
	startTime := "20:00"
	_, err := svc.UpdateOccupancy(2, OccupancyUpdate{Customers: &customers, StartTime: &startTime})
	require.NoError(t, err)

	// a nil field leaves the prior value in place
	newCount := 3
	table, err := svc.UpdateOccupancy(2, OccupancyUpdate{Customers: &newCount})
	require.NoError(t, err)
	assert.Equal(t, 3, *table.Customers)
	require.NotNil(t, table.StartTime)
	assert.Equal(t, "20:00", *table.StartTime)
}
