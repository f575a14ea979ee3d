package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/cosign-orchestrator/internal/journal"
)

// InsertNotifications stores notification rows in ClickHouse.
func (r *Repository) InsertNotifications(ctx context.Context, notifications []journal.Notification) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_notifications", err, start)
	}()

	if len(notifications) == 0 {
		return nil
	}

	const query = `
INSERT INTO stream_notifications (
	id,
	channel,
	address,
	hash,
	status_group,
	code,
	height,
	payload,
	received_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare notifications batch: %w", err)
	}

	for _, n := range notifications {
		if err = batch.Append(
			n.ID,
			n.Channel,
			n.Address,
			n.Hash,
			n.Group,
			n.Code,
			n.Height,
			n.Payload,
			n.ReceivedAt,
		); err != nil {
			return fmt.Errorf("append notification: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert notifications: %w", err)
	}
	return nil
}
