package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stakewatch/stakewatch-backend/internal/model"
)

// IdentityByAddress returns one identity row, or sql.ErrNoRows wrapped with
// context when the address is unknown.
func (r *Repository) IdentityByAddress(ctx context.Context, address string) (identity model.Identity, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("identity_by_address", err, start)
	}()

	const query = `
SELECT identity_address, base_name, creation_block_height, creation_txid,
	creation_time, last_refreshed_at
FROM identities
WHERE identity_address = ?`

	var (
		creationHeight sql.NullInt64
		creationTxid   sql.NullString
		creationTime   sql.NullTime
	)
	err = r.db.QueryRowContext(ctx, query, address).Scan(
		&identity.IdentityAddress,
		&identity.BaseName,
		&creationHeight,
		&creationTxid,
		&creationTime,
		&identity.LastRefreshedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Identity{}, fmt.Errorf("identity %s: %w", address, err)
		}
		return model.Identity{}, fmt.Errorf("query identity by address: %w", err)
	}

	if creationHeight.Valid {
		height := uint64(creationHeight.Int64)
		identity.CreationBlockHeight = &height
	}
	if creationTxid.Valid {
		identity.CreationTxID = &creationTxid.String
	}
	if creationTime.Valid {
		identity.CreationTime = &creationTime.Time
	}
	return identity, nil
}

// IdentityAddresses lists every known identity address. The eligibility
// refresher walks this set each pass.
func (r *Repository) IdentityAddresses(ctx context.Context) (addresses []string, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("identity_addresses", err, start)
	}()

	rows, err := r.db.QueryContext(ctx, `SELECT identity_address FROM identities ORDER BY identity_address`)
	if err != nil {
		return nil, fmt.Errorf("query identity addresses: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var addr string
		if err = rows.Scan(&addr); err != nil {
			return nil, fmt.Errorf("scan identity address: %w", err)
		}
		addresses = append(addresses, addr)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate identity addresses: %w", err)
	}
	return addresses, nil
}
