package mysql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stakewatch/stakewatch-backend/internal/model"
)

// UpsertRewards stores reward rows with a single multi-row statement. A row
// whose (txid, output_index) already exists is left untouched, so repeated
// and overlapping scans are idempotent. Returns the number of rows actually
// inserted.
func (r *Repository) UpsertRewards(ctx context.Context, rewards []model.StakeReward) (inserted int64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("upsert_rewards", err, start)
	}()

	if len(rewards) == 0 {
		return 0, nil
	}

	query, args := buildRewardInsert(rewards, "txid = txid")

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		err = wrapConstraintErr(err)
		return 0, fmt.Errorf("upsert rewards: %w", err)
	}

	inserted, err = res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("upsert rewards affected: %w", err)
	}
	return inserted, nil
}

// buildRewardInsert renders the shared multi-row insert; onConflict is the
// ON DUPLICATE KEY UPDATE clause body.
func buildRewardInsert(rewards []model.StakeReward, onConflict string) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(`
INSERT INTO staking_rewards (
	identity_address,
	txid,
	output_index,
	block_height,
	block_hash,
	block_time,
	amount_sats,
	classifier,
	source_address
) VALUES `)

	args := make([]interface{}, 0, len(rewards)*9)
	for i, reward := range rewards {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(?, ?, ?, ?, ?, ?, ?, ?, ?)")

		blockHash := nullableString(reward.BlockHash)
		args = append(args,
			reward.IdentityAddress,
			reward.TxID,
			reward.OutputIndex,
			reward.BlockHeight,
			blockHash,
			reward.BlockTime,
			reward.AmountSats,
			reward.Classifier,
			reward.SourceAddress,
		)
	}

	sb.WriteString(" AS new ON DUPLICATE KEY UPDATE ")
	sb.WriteString(onConflict)

	return sb.String(), args
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
