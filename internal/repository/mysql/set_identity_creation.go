package mysql

import (
	"context"
	"fmt"
	"time"

	"github.com/stakewatch/stakewatch-backend/internal/model"
)

// SetIdentityCreation back-fills the creation record of an identity stub.
// Creation metadata is immutable once written: COALESCE keeps any value
// already present, and a resolved name never reverts to the placeholder.
func (r *Repository) SetIdentityCreation(ctx context.Context, creation model.IdentityCreation) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("set_identity_creation", err, start)
	}()

	const query = `
UPDATE identities
SET base_name = IF(base_name = '', ?, base_name),
	creation_block_height = COALESCE(creation_block_height, ?),
	creation_txid = COALESCE(creation_txid, ?),
	creation_time = COALESCE(creation_time, ?),
	last_refreshed_at = ?
WHERE identity_address = ?`

	_, err = r.db.ExecContext(ctx, query,
		creation.BaseName,
		creation.BlockHeight,
		creation.TxID,
		creation.BlockTime,
		time.Now().UTC(),
		creation.IdentityAddress,
	)
	if err != nil {
		return fmt.Errorf("set identity creation: %w", err)
	}
	return nil
}
