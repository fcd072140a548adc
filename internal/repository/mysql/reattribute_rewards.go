package mysql

import (
	"context"
	"fmt"
	"time"

	"github.com/stakewatch/stakewatch-backend/internal/model"
)

// ReattributeRewards is the explicit correction path: rows that already
// exist get their attributed identity and source address overwritten from
// the new observation instead of being left untouched. Never used by the
// default scan path.
func (r *Repository) ReattributeRewards(ctx context.Context, rewards []model.StakeReward) (affected int64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("reattribute_rewards", err, start)
	}()

	if len(rewards) == 0 {
		return 0, nil
	}

	query, args := buildRewardInsert(rewards,
		"identity_address = new.identity_address, source_address = new.source_address")

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		err = wrapConstraintErr(err)
		return 0, fmt.Errorf("reattribute rewards: %w", err)
	}

	affected, err = res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reattribute rewards affected: %w", err)
	}
	return affected, nil
}
