package dashrpc

import (
	"context"

	"github.com/erc7824/dashrpc/pkg/codec"
	"github.com/erc7824/dashrpc/pkg/rpc"
	"github.com/erc7824/dashrpc/pkg/types"
)

// LoadWallet loads a wallet from the node's wallet directory.
func (c *Client) LoadWallet(ctx context.Context, wallet string) (*types.LoadWalletResult, error) {
	var res types.LoadWalletResult
	err := c.call(ctx, "loadwallet", nil, &res, wallet)
	return &res, err
}

// UnloadWallet unloads the named wallet, or the request's wallet when nil.
func (c *Client) UnloadWallet(ctx context.Context, wallet *string) (*types.UnloadWalletResult, error) {
	var res types.UnloadWalletResult
	err := c.call(ctx, "unloadwallet", rpc.MustMarshalArgs(nil), &res, wallet)
	return &res, err
}

// CreateWallet creates and loads a new wallet.
func (c *Client) CreateWallet(ctx context.Context, wallet string, disablePrivateKeys, blank *bool, passphrase *string, avoidReuse *bool) (*types.LoadWalletResult, error) {
	var res types.LoadWalletResult
	err := c.call(ctx, "createwallet",
		rpc.MustMarshalArgs(false, false, "", false), &res,
		wallet, disablePrivateKeys, blank, passphrase, avoidReuse)
	return &res, err
}

// ListWallets returns the names of the currently loaded wallets.
func (c *Client) ListWallets(ctx context.Context) ([]string, error) {
	var wallets []string
	err := c.call(ctx, "listwallets", nil, &wallets)
	return wallets, err
}

// GetWalletInfo returns state information about the wallet.
func (c *Client) GetWalletInfo(ctx context.Context) (*types.GetWalletInfoResult, error) {
	var res types.GetWalletInfoResult
	err := c.call(ctx, "getwalletinfo", nil, &res)
	return &res, err
}

// BackupWallet safely copies the wallet file to the given destination.
func (c *Client) BackupWallet(ctx context.Context, destination *string) error {
	return c.call(ctx, "backupwallet", rpc.MustMarshalArgs(nil), nil, destination)
}

// EncryptWallet encrypts the wallet with the given passphrase.
func (c *Client) EncryptWallet(ctx context.Context, passphrase string) error {
	return c.call(ctx, "encryptwallet", nil, nil, passphrase)
}

// DumpPrivKey reveals the private key of the given address in WIF form.
func (c *Client) DumpPrivKey(ctx context.Context, address string) (string, error) {
	var key string
	err := c.call(ctx, "dumpprivkey", nil, &key, address)
	return key, err
}

// GetBalance returns the wallet's confirmed balance.
func (c *Client) GetBalance(ctx context.Context, minConf *uint32, includeWatchOnly *bool) (codec.Amount, error) {
	var balance codec.Amount
	err := c.call(ctx, "getbalance", rpc.MustMarshalArgs(0, nil), &balance, "*", minConf, includeWatchOnly)
	return balance, err
}

// GetBalances returns the wallet's balances broken down by confirmation
// state.
func (c *Client) GetBalances(ctx context.Context) (*types.GetBalancesResult, error) {
	var res types.GetBalancesResult
	err := c.call(ctx, "getbalances", nil, &res)
	return &res, err
}

// GetReceivedByAddress returns the total amount received by an address.
func (c *Client) GetReceivedByAddress(ctx context.Context, address string, minConf *uint32) (codec.Amount, error) {
	var amount codec.Amount
	err := c.call(ctx, "getreceivedbyaddress", rpc.MustMarshalArgs(nil), &amount, address, minConf)
	return amount, err
}

// GetNewAddress returns a fresh receiving address under wallet control.
func (c *Client) GetNewAddress(ctx context.Context, label *string) (string, error) {
	var address string
	err := c.call(ctx, "getnewaddress", nil, &address, label)
	return address, err
}

// GetRawChangeAddress returns a fresh change address.
func (c *Client) GetRawChangeAddress(ctx context.Context) (string, error) {
	var address string
	err := c.call(ctx, "getrawchangeaddress", nil, &address)
	return address, err
}

// GetAddressInfo returns wallet-side information about an address.
func (c *Client) GetAddressInfo(ctx context.Context, address string) (*types.GetAddressInfoResult, error) {
	var res types.GetAddressInfoResult
	err := c.call(ctx, "getaddressinfo", nil, &res, address)
	return &res, err
}

// AddMultiSigAddress adds an nRequired-of-len(keys) multisig script to the
// wallet and returns its address. Each key is a public key in hex or an
// address the wallet knows the key for.
func (c *Client) AddMultiSigAddress(ctx context.Context, nRequired uint32, keys []string, label *string, addressType *types.AddressType) (*types.AddMultiSigAddressResult, error) {
	var res types.AddMultiSigAddressResult
	err := c.call(ctx, "addmultisigaddress", rpc.MustMarshalArgs("", nil), &res,
		nRequired, keys, label, addressType)
	return &res, err
}

// SetLabel assigns a label to an address.
func (c *Client) SetLabel(ctx context.Context, address, label string) error {
	return c.call(ctx, "setlabel", nil, nil, address, label)
}

// KeyPoolRefill tops up the wallet's key pool.
func (c *Client) KeyPoolRefill(ctx context.Context, newSize *uint32) error {
	return c.call(ctx, "keypoolrefill", rpc.MustMarshalArgs(nil), nil, newSize)
}

// ListTransactions returns the wallet's most recent transactions. A nil
// label means all labels.
func (c *Client) ListTransactions(ctx context.Context, label *string, count, skip *uint32, includeWatchOnly *bool) ([]types.ListTransactionResult, error) {
	lbl := "*"
	if label != nil {
		lbl = *label
	}
	var res []types.ListTransactionResult
	err := c.call(ctx, "listtransactions", rpc.MustMarshalArgs(10, 0, nil), &res,
		lbl, count, skip, includeWatchOnly)
	return res, err
}

// ListSinceBlock returns wallet transactions since the given block.
func (c *Client) ListSinceBlock(ctx context.Context, blockHash *types.BlockHash, targetConfirmations *uint32, includeWatchOnly, includeRemoved *bool) (*types.ListSinceBlockResult, error) {
	var res types.ListSinceBlockResult
	err := c.call(ctx, "listsinceblock", rpc.MustMarshalArgs(nil), &res,
		blockHash, targetConfirmations, includeWatchOnly, includeRemoved)
	return &res, err
}

// ListUnspent returns the wallet's spendable outputs, optionally filtered
// by confirmation range, addresses and amount constraints.
func (c *Client) ListUnspent(ctx context.Context, minConf, maxConf *uint32, addresses []string, includeUnsafe *bool, queryOptions *types.ListUnspentQueryOptions) ([]types.ListUnspentResultEntry, error) {
	var res []types.ListUnspentResultEntry
	err := c.call(ctx, "listunspent",
		rpc.MustMarshalArgs(0, 9999999, []string{}, true, nil), &res,
		minConf, maxConf, addresses, includeUnsafe, queryOptions)
	return res, err
}

// ListReceivedByAddress returns receive totals per address.
func (c *Client) ListReceivedByAddress(ctx context.Context, minConf *uint32, addLocked, includeEmpty, includeWatchOnly *bool, addressFilter *string) ([]types.ListReceivedByAddressResult, error) {
	var res []types.ListReceivedByAddressResult
	err := c.call(ctx, "listreceivedbyaddress",
		rpc.MustMarshalArgs(1, true, false, false, nil), &res,
		minConf, addLocked, includeEmpty, includeWatchOnly, addressFilter)
	return res, err
}

// LockUnspent locks the given outputs against automatic coin selection.
func (c *Client) LockUnspent(ctx context.Context, outputs []types.OutPoint) (bool, error) {
	var ok bool
	err := c.call(ctx, "lockunspent", nil, &ok, false, lockOutputs(outputs))
	return ok, err
}

// UnlockUnspent releases previously locked outputs.
func (c *Client) UnlockUnspent(ctx context.Context, outputs []types.OutPoint) (bool, error) {
	var ok bool
	err := c.call(ctx, "lockunspent", nil, &ok, true, lockOutputs(outputs))
	return ok, err
}

// UnlockUnspentAll releases every locked output.
func (c *Client) UnlockUnspentAll(ctx context.Context) (bool, error) {
	var ok bool
	err := c.call(ctx, "lockunspent", nil, &ok, true)
	return ok, err
}

// lockOutputs converts outpoints to the {txid,vout} objects lockunspent
// expects instead of the usual "txid-vout" string form.
func lockOutputs(outputs []types.OutPoint) []map[string]any {
	objs := make([]map[string]any, 0, len(outputs))
	for _, o := range outputs {
		objs = append(objs, map[string]any{"txid": o.Txid, "vout": o.Vout})
	}
	return objs
}

// ImportPubKey adds a watch-only public key to the wallet.
func (c *Client) ImportPubKey(ctx context.Context, pubKey codec.HexBytes, label *string, rescan *bool) error {
	return c.call(ctx, "importpubkey", rpc.MustMarshalArgs("", nil), nil, pubKey, label, rescan)
}

// ImportPrivKey adds a WIF-encoded private key to the wallet.
func (c *Client) ImportPrivKey(ctx context.Context, privKey string, label *string, rescan *bool) error {
	return c.call(ctx, "importprivkey", rpc.MustMarshalArgs("", nil), nil, privKey, label, rescan)
}

// ImportAddress adds a watch-only address to the wallet.
func (c *Client) ImportAddress(ctx context.Context, address string, label *string, rescan *bool) error {
	return c.call(ctx, "importaddress", rpc.MustMarshalArgs("", nil), nil, address, label, rescan)
}

// ImportAddressScript adds a watch-only script to the wallet.
func (c *Client) ImportAddressScript(ctx context.Context, script codec.HexBytes, label *string, rescan, p2sh *bool) error {
	return c.call(ctx, "importaddress", rpc.MustMarshalArgs("", true, nil), nil, script, label, rescan, p2sh)
}

// ImportMulti imports several addresses or scripts in one rescan.
func (c *Client) ImportMulti(ctx context.Context, requests []types.ImportMultiRequest, options *types.ImportMultiOptions) ([]types.ImportMultiResult, error) {
	var res []types.ImportMultiResult
	err := c.call(ctx, "importmulti", rpc.MustMarshalArgs(nil), &res, requests, options)
	return res, err
}

// SendToAddress sends an amount to an address and returns the transaction
// id. Nil options use the node's defaults.
func (c *Client) SendToAddress(ctx context.Context, address string, amount codec.Amount, comment, commentTo *string, subtractFee, useInstantSend, useCoinJoin *bool, confTarget *uint32, estimateMode *types.EstimateMode, avoidReuse *bool) (types.Txid, error) {
	var txid types.Txid
	err := c.call(ctx, "sendtoaddress",
		rpc.MustMarshalArgs("", "", false, true, false, 6, types.EstimateModeUnset, true), &txid,
		address, amount, comment, commentTo, subtractFee, useInstantSend, useCoinJoin, confTarget, estimateMode, avoidReuse)
	return txid, err
}

// VerifyMessage checks a signed message against an address.
func (c *Client) VerifyMessage(ctx context.Context, address, signature, message string) (bool, error) {
	var ok bool
	err := c.call(ctx, "verifymessage", nil, &ok, address, signature, message)
	return ok, err
}

// RescanBlockchain rescans the wallet against the chain over the given
// height range.
func (c *Client) RescanBlockchain(ctx context.Context, startHeight, stopHeight *uint64) (*types.RescanBlockchainResult, error) {
	var res types.RescanBlockchainResult
	err := c.call(ctx, "rescanblockchain", rpc.MustMarshalArgs(0, nil), &res, startHeight, stopHeight)
	return &res, err
}

// WalletCreateFundedPSBT creates and funds a partially signed transaction.
func (c *Client) WalletCreateFundedPSBT(ctx context.Context, inputs []types.CreateRawTransactionInput, outputs map[string]codec.Amount, locktime *int64, options *types.WalletCreateFundedPsbtOptions, bip32Derivs *bool) (*types.WalletCreateFundedPsbtResult, error) {
	var res types.WalletCreateFundedPsbtResult
	err := c.call(ctx, "walletcreatefundedpsbt",
		rpc.MustMarshalArgs(0, struct{}{}, false), &res,
		inputs, outputs, locktime, options, bip32Derivs)
	return &res, err
}

// WalletProcessPSBT updates a partially signed transaction with wallet
// inputs and signatures.
func (c *Client) WalletProcessPSBT(ctx context.Context, psbt string, sign *bool, sigHashType *types.SigHashType, bip32Derivs *bool) (*types.WalletProcessPsbtResult, error) {
	var res types.WalletProcessPsbtResult
	err := c.call(ctx, "walletprocesspsbt",
		rpc.MustMarshalArgs(true, types.SigHashAll, true), &res,
		psbt, sign, sigHashType, bip32Derivs)
	return &res, err
}
