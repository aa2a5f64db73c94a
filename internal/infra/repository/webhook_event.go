package repository

import (
	"context"

	"clubhouse/internal/infra"
	"clubhouse/internal/infra/query"
)

type WebhookEventQueries interface {
	TryInsertWebhookEvent(ctx context.Context, db query.DBTX, eventID, eventType string) (int64, error)
}

type WebhookEventRepository struct {
	queries WebhookEventQueries
}

func NewWebhookEventRepository(queries WebhookEventQueries) *WebhookEventRepository {
	return &WebhookEventRepository{queries: queries}
}

func (r *WebhookEventRepository) Record(ctx context.Context, tx query.DBTX, eventID, eventType string) (bool, error) {
	affected, err := r.queries.TryInsertWebhookEvent(ctx, tx, eventID, eventType)
	if err != nil {
		return false, infra.WrapRepoErr("failed to record webhook event", err)
	}
	return affected > 0, nil
}
