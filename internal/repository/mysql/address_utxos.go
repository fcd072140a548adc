package mysql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stakewatch/stakewatch-backend/internal/model"
)

// UpsertAddressUTXOs refreshes the eligibility projection rows for one
// address snapshot. Existing rows are overwritten: eligibility and cooldown
// are recomputed every pass against the current tip.
func (r *Repository) UpsertAddressUTXOs(ctx context.Context, utxos []model.AddressUTXO) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("upsert_address_utxos", err, start)
	}()

	if len(utxos) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`
INSERT INTO address_utxos (
	identity_address,
	txid,
	output_index,
	amount_sats,
	creation_height,
	is_spent,
	is_eligible,
	cooldown_until_height,
	last_seen_at
) VALUES `)

	args := make([]interface{}, 0, len(utxos)*9)
	for i, utxo := range utxos {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(?, ?, ?, ?, ?, ?, ?, ?, ?)")
		args = append(args,
			utxo.IdentityAddress,
			utxo.TxID,
			utxo.OutputIndex,
			utxo.AmountSats,
			utxo.CreationHeight,
			utxo.IsSpent,
			utxo.IsEligible,
			utxo.CooldownUntilHeight,
			utxo.LastSeenAt,
		)
	}
	sb.WriteString(` AS new ON DUPLICATE KEY UPDATE
	is_spent = new.is_spent,
	is_eligible = new.is_eligible,
	cooldown_until_height = new.cooldown_until_height,
	last_seen_at = new.last_seen_at`)

	if _, err = r.db.ExecContext(ctx, sb.String(), args...); err != nil {
		err = wrapConstraintErr(err)
		return fmt.Errorf("upsert address utxos: %w", err)
	}
	return nil
}

// MarkSpentBefore flags every projection row of an address that the latest
// snapshot did not touch. getaddressutxos only reports unspent outputs, so
// disappearance from the snapshot means the output was spent.
func (r *Repository) MarkSpentBefore(ctx context.Context, address string, cutoff time.Time) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("mark_spent_before", err, start)
	}()

	const query = `
UPDATE address_utxos
SET is_spent = TRUE, is_eligible = FALSE
WHERE identity_address = ? AND is_spent = FALSE AND last_seen_at < ?`

	if _, err = r.db.ExecContext(ctx, query, address, cutoff); err != nil {
		return fmt.Errorf("mark spent utxos: %w", err)
	}
	return nil
}
