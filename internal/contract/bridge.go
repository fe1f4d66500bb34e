package contract

import (
	"context"      // Deadlines around confirmation waits
	"crypto/ecdsa" // Server-held signing key
	"fmt"          // Error formatting
	"math/big"     // Chain ids and token ids
	"strings"      // ABI parsing and key normalization

	"github.com/ethereum/go-ethereum/accounts/abi"      // Contract ABI parsing
	"github.com/ethereum/go-ethereum/accounts/abi/bind" // Bound contract + transactor
	"github.com/ethereum/go-ethereum/common"            // Address handling
	"github.com/ethereum/go-ethereum/core/types"        // Receipt status
	"github.com/ethereum/go-ethereum/crypto"            // Key decoding
	"github.com/ethereum/go-ethereum/ethclient"         // JSON-RPC client
)

// itemABI covers the three operations the game uses plus the ERC-721
// Transfer event emitted on mint.
const itemABI = `[
	{"type":"function","name":"mintItem","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"uri","type":"string"},{"name":"tier","type":"uint8"}],"outputs":[]},
	{"type":"function","name":"investInItem","stateMutability":"nonpayable","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"burnItem","stateMutability":"nonpayable","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[]},
	{"type":"event","name":"Transfer","inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"tokenId","type":"uint256","indexed":true}]}
]`

// ContractError wraps an on-chain failure. The underlying rejection reason is
// kept verbatim; there are no retries here, transient errors are the caller's
// problem.
type ContractError struct {
	Op  string // Which operation failed: mint, invest or burn
	Err error  // The chain-side reason
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("contract %s: %v", e.Op, e.Err)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

// Bridge submits transactions against the item contract and blocks until
// they confirm. All methods respect the caller's context deadline.
type Bridge struct {
	client   *ethclient.Client   // RPC connection
	contract *bind.BoundContract // Bound item contract
	address  common.Address      // Contract address, for event filtering
	parsed   abi.ABI             // Parsed ABI, for the Transfer event id
	key      *ecdsa.PrivateKey   // Transaction signing key
	chainID  *big.Int            // Chain id for the signer
}

// NewBridge dials the chain node and binds the item contract
func NewBridge(rpcURL, contractAddr, privateKeyHex string, chainID int64) (*Bridge, error) {
	client, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial chain node: %w", err)
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("decode private key: %w", err)
	}
	parsed, err := abi.JSON(strings.NewReader(itemABI))
	if err != nil {
		return nil, fmt.Errorf("parse contract abi: %w", err)
	}
	address := common.HexToAddress(contractAddr)
	return &Bridge{
		client:   client,
		contract: bind.NewBoundContract(address, parsed, client, client, client),
		address:  address,
		parsed:   parsed,
		key:      key,
		chainID:  big.NewInt(chainID),
	}, nil
}

// txOpts builds a keyed transactor bound to the caller's context
func (b *Bridge) txOpts(ctx context.Context) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(b.key, b.chainID)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	return opts, nil
}

// submit sends one contract call and waits for its receipt
func (b *Bridge) submit(ctx context.Context, op, method string, args ...any) (*types.Receipt, error) {
	opts, err := b.txOpts(ctx)
	if err != nil {
		return nil, &ContractError{Op: op, Err: err}
	}
	tx, err := b.contract.Transact(opts, method, args...)
	if err != nil {
		return nil, &ContractError{Op: op, Err: err}
	}
	receipt, err := bind.WaitMined(ctx, b.client, tx)
	if err != nil {
		return nil, &ContractError{Op: op, Err: err}
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, &ContractError{Op: op, Err: fmt.Errorf("transaction %s reverted", tx.Hash())}
	}
	return receipt, nil
}

// Mint creates a new item token for a player and returns the token id parsed
// from the Transfer event of the mined transaction
func (b *Bridge) Mint(ctx context.Context, playerAddress, uri string, tier uint8) (uint64, error) {
	if !common.IsHexAddress(playerAddress) {
		return 0, &ContractError{Op: "mint", Err: fmt.Errorf("invalid player address %q", playerAddress)}
	}
	receipt, err := b.submit(ctx, "mint", "mintItem", common.HexToAddress(playerAddress), uri, tier)
	if err != nil {
		return 0, err
	}
	transferID := b.parsed.Events["Transfer"].ID
	for _, lg := range receipt.Logs {
		// The token id is the third indexed topic of the contract's Transfer event
		if lg.Address == b.address && len(lg.Topics) == 4 && lg.Topics[0] == transferID {
			return new(big.Int).SetBytes(lg.Topics[3].Bytes()).Uint64(), nil
		}
	}
	return 0, &ContractError{Op: "mint", Err: fmt.Errorf("mined transaction %s emitted no Transfer event", receipt.TxHash)}
}

// Invest stakes into an existing item token
func (b *Bridge) Invest(ctx context.Context, tokenID uint64) error {
	_, err := b.submit(ctx, "invest", "investInItem", new(big.Int).SetUint64(tokenID))
	return err
}

// Burn destroys an item token
func (b *Bridge) Burn(ctx context.Context, tokenID uint64) error {
	_, err := b.submit(ctx, "burn", "burnItem", new(big.Int).SetUint64(tokenID))
	return err
}
