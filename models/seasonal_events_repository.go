package models

import (
	"context"

	"gorm.io/gorm"
)

type SeasonalEventsRepository struct {
	db *gorm.DB
}

func NewSeasonalEventsRepository(db *gorm.DB) *SeasonalEventsRepository {
	return &SeasonalEventsRepository{db: db}
}

func (r *SeasonalEventsRepository) GetEvent(ctx context.Context, id uint64) (*SeasonalEvent, error) {
	return findByID[SeasonalEvent](ctx, r.db, "get seasonal event", id)
}

func (r *SeasonalEventsRepository) CreateEvent(ctx context.Context, event *SeasonalEvent) error {
	return createRecord(ctx, r.db, "create seasonal event", event)
}

func (r *SeasonalEventsRepository) UpdateEvent(ctx context.Context, event *SeasonalEvent) error {
	return updateRecord(ctx, r.db, "update seasonal event", event, "Name", "StartDate", "EndDate")
}

// DeleteEvent removes an event; products attached to it are detached.
func (r *SeasonalEventsRepository) DeleteEvent(ctx context.Context, id uint64) error {
	return deleteRecord[SeasonalEvent](ctx, r.db, "delete seasonal event", id)
}
