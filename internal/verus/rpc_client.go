package verus

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"

	"github.com/stakewatch/stakewatch-backend/internal/chain"
)

// Client wraps the node rpcclient with metrics instrumentation and maps
// every failure onto the transient/permanent taxonomy. Chain-specific verbs
// (verbose blocks with validation type, identity history, address UTXOs)
// go through RawRequest because the stock client does not decode them.
type Client struct {
	client     *rpcclient.Client
	rpcMetrics RPCMetrics
}

// NewClient constructs an instrumented RPC client.
func NewClient(client *rpcclient.Client, rpcMetrics RPCMetrics) *Client {
	return &Client{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

// GetBlockCount returns the current chain tip height.
func (c *Client) GetBlockCount() (count int64, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_block_count", err, started)
	}()
	count, err = c.client.GetBlockCount()
	err = classifyRPCError("getblockcount", err)
	return count, err
}

// GetBlockHash returns the block hash for a height.
func (c *Client) GetBlockHash(height int64) (hash *chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_block_hash", err, started)
	}()
	hash, err = c.client.GetBlockHash(height)
	err = classifyRPCError("getblockhash", err)
	return hash, err
}

// GetBlockVerbose returns a block with decoded transactions and the
// chain-specific validation fields (verbosity 2).
func (c *Client) GetBlockVerbose(hash string) (block *VerboseBlock, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_block_verbose", err, started)
	}()

	res, err := c.rawRequest("getblock", hash, 2)
	if err != nil {
		return nil, err
	}

	block = &VerboseBlock{}
	if err = json.Unmarshal(res, block); err != nil {
		err = &chain.PermanentError{Op: "getblock", Err: fmt.Errorf("decode verbose block: %w", err)}
		return nil, err
	}
	return block, nil
}

// GetIdentityHistory returns the ordered lifecycle events of an identity.
func (c *Client) GetIdentityHistory(address string) (entries []IdentityHistoryEntry, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_identity_history", err, started)
	}()

	res, err := c.rawRequest("getidentityhistory", address)
	if err != nil {
		return nil, err
	}

	if err = json.Unmarshal(res, &entries); err != nil {
		err = &chain.PermanentError{Op: "getidentityhistory", Err: fmt.Errorf("decode identity history: %w", err)}
		return nil, err
	}
	return entries, nil
}

// GetAddressUTXOs returns the current unspent outputs of an address.
func (c *Client) GetAddressUTXOs(address string) (utxos []AddressUTXOResult, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("get_address_utxos", err, started)
	}()

	res, err := c.rawRequest("getaddressutxos", map[string][]string{"addresses": {address}})
	if err != nil {
		return nil, err
	}

	if err = json.Unmarshal(res, &utxos); err != nil {
		err = &chain.PermanentError{Op: "getaddressutxos", Err: fmt.Errorf("decode address utxos: %w", err)}
		return nil, err
	}
	return utxos, nil
}

// Shutdown terminates the underlying connection.
func (c *Client) Shutdown() {
	c.client.Shutdown()
	c.client.WaitForShutdown()
}

func (c *Client) rawRequest(method string, params ...interface{}) (json.RawMessage, error) {
	rawParams := make([]json.RawMessage, 0, len(params))
	for _, p := range params {
		marshaled, err := json.Marshal(p)
		if err != nil {
			return nil, &chain.PermanentError{Op: method, Err: fmt.Errorf("marshal param: %w", err)}
		}
		rawParams = append(rawParams, marshaled)
	}

	res, err := c.client.RawRequest(method, rawParams)
	if err != nil {
		return nil, classifyRPCError(method, err)
	}
	return res, nil
}

// classifyRPCError maps an rpcclient failure onto the chain error taxonomy.
// RPC-level rejections are permanent; not-found rejections additionally
// satisfy errors.Is(err, chain.ErrNotFound). Everything else is a transport
// failure and therefore transient.
func classifyRPCError(op string, err error) error {
	if err == nil {
		return nil
	}

	var rpcErr *btcjson.RPCError
	if errors.As(err, &rpcErr) {
		if isNotFoundCode(rpcErr.Code) {
			return &PermanentNotFoundError{Op: op, Err: rpcErr}
		}
		return &chain.PermanentError{Op: op, Err: rpcErr}
	}
	return &chain.TransientError{Op: op, Err: err}
}

func isNotFoundCode(code btcjson.RPCErrorCode) bool {
	switch code {
	// -5 also covers invalid-address and no-tx-info rejections.
	case btcjson.ErrRPCBlockNotFound,
		btcjson.ErrRPCOutOfRange:
		return true
	default:
		return false
	}
}

// PermanentNotFoundError is a permanent RPC error that also matches
// chain.ErrNotFound, so callers can skip rather than retry.
type PermanentNotFoundError struct {
	Op  string
	Err error
}

func (e *PermanentNotFoundError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, chain.ErrNotFound, e.Err)
}

func (e *PermanentNotFoundError) Unwrap() []error {
	return []error{chain.ErrNotFound, e.Err}
}
