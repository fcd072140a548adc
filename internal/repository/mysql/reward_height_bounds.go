package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// RewardHeightBounds returns the lowest and highest block height currently
// present in staking_rewards. exists is false when the store is empty.
// Scan progress is derived from these bounds; there is no checkpoint table.
func (r *Repository) RewardHeightBounds(ctx context.Context) (minHeight, maxHeight uint64, exists bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("reward_height_bounds", err, start)
	}()

	const query = `
SELECT MIN(block_height), MAX(block_height)
FROM staking_rewards`

	var minVal, maxVal sql.NullInt64
	if err = r.db.QueryRowContext(ctx, query).Scan(&minVal, &maxVal); err != nil {
		return 0, 0, false, fmt.Errorf("query reward height bounds: %w", err)
	}
	if !minVal.Valid || !maxVal.Valid {
		return 0, 0, false, nil
	}
	if minVal.Int64 < 0 || maxVal.Int64 < 0 {
		return 0, 0, false, fmt.Errorf("negative height bounds: min %d max %d", minVal.Int64, maxVal.Int64)
	}
	return uint64(minVal.Int64), uint64(maxVal.Int64), true, nil
}
