package query

import "context"

const tryInsertWebhookEvent = `INSERT INTO webhook_events (event_id, event_type)
VALUES ($1, $2)
ON CONFLICT (event_id) DO NOTHING`

// TryInsertWebhookEvent returns 0 when the event was already recorded.
func (q *Queries) TryInsertWebhookEvent(ctx context.Context, db DBTX, eventID, eventType string) (int64, error) {
	tag, err := db.Exec(ctx, tryInsertWebhookEvent, eventID, eventType)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
