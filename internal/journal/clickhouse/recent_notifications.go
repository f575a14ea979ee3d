package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/cosign-orchestrator/internal/journal"
)

// MaxRecentLimit caps the rows returned by RecentNotifications.
const MaxRecentLimit = 1000

var ErrInvalidLimit = errors.New("limit must be positive")

// RecentNotifications returns the newest notifications first. An empty address
// matches every address.
func (r *Repository) RecentNotifications(ctx context.Context, address string, limit int) ([]journal.Notification, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("recent_notifications", err, start)
	}()

	if limit <= 0 {
		err = ErrInvalidLimit
		return nil, err
	}
	limit = min(limit, MaxRecentLimit)

	rows, err := r.conn.Query(ctx, recentNotificationsQuery(), address, address, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent notifications: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	var notifications []journal.Notification
	for rows.Next() {
		var n journal.Notification
		if err = rows.Scan(
			&n.ID,
			&n.Channel,
			&n.Address,
			&n.Hash,
			&n.Group,
			&n.Code,
			&n.Height,
			&n.Payload,
			&n.ReceivedAt,
		); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}

		notifications = append(notifications, n)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}

	return notifications, nil
}

func recentNotificationsQuery() string {
	return `
SELECT
	id,
	channel,
	address,
	hash,
	status_group,
	code,
	height,
	payload,
	received_at
FROM stream_notifications
WHERE (? = '' OR address = ?)
ORDER BY received_at DESC
LIMIT ?`
}
