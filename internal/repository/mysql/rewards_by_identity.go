package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/stakewatch/stakewatch-backend/internal/model"
)

// RewardsByIdentity returns the rewards attributed to an identity within a
// height range, ordered by block time. This is the read surface consumed by
// the statistics layer.
func (r *Repository) RewardsByIdentity(ctx context.Context, address string, fromHeight, toHeight uint64) (rewards []model.StakeReward, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("rewards_by_identity", err, start)
	}()

	const query = `
SELECT identity_address, txid, output_index, block_height, block_hash,
	block_time, amount_sats, classifier, source_address
FROM staking_rewards
WHERE identity_address = ? AND block_height BETWEEN ? AND ?
ORDER BY block_time`

	rows, err := r.db.QueryContext(ctx, query, address, fromHeight, toHeight)
	if err != nil {
		return nil, fmt.Errorf("query rewards by identity: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var reward model.StakeReward
		var blockHash sql.NullString
		if err = rows.Scan(
			&reward.IdentityAddress,
			&reward.TxID,
			&reward.OutputIndex,
			&reward.BlockHeight,
			&blockHash,
			&reward.BlockTime,
			&reward.AmountSats,
			&reward.Classifier,
			&reward.SourceAddress,
		); err != nil {
			return nil, fmt.Errorf("scan reward: %w", err)
		}
		reward.BlockHash = blockHash.String
		rewards = append(rewards, reward)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rewards: %w", err)
	}
	return rewards, nil
}
