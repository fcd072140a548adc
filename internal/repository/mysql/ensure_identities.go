package mysql

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// EnsureIdentities upserts stub rows for the given addresses; existing rows
// are left untouched. Reward rows reference identities by foreign key, so
// this always runs before UpsertRewards in the same unit of work.
func (r *Repository) EnsureIdentities(ctx context.Context, addresses []string) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("ensure_identities", err, start)
	}()

	if len(addresses) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`
INSERT INTO identities (identity_address, base_name, last_refreshed_at) VALUES `)

	now := time.Now().UTC()
	args := make([]interface{}, 0, len(addresses)*3)
	for i, addr := range addresses {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(?, '', ?)")
		args = append(args, addr, now)
	}
	sb.WriteString(" ON DUPLICATE KEY UPDATE identity_address = identity_address")

	if _, err = r.db.ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("ensure identities: %w", err)
	}
	return nil
}
