// Package dashrpc is a typed client for the Dash Core JSON-RPC interface.
//
// Each exported method on Client maps onto one RPC method. Arguments are
// positional; optional arguments are Go pointers whose nil value means
// "use the node's default", and unset trailing optionals are dropped from
// the request entirely. Results decode into the structs of pkg/types,
// with hex fields as byte slices and monetary fields as exact
// fixed-point amounts (pkg/codec).
//
// Errors come back as exactly one of the dispatcher's three kinds:
// *rpc.TransportError when the exchange itself failed, *rpc.NodeError
// when the node refused the call, and *rpc.CodecError when the response
// did not decode. See pkg/rpc for the classification rules.
//
//	cfg, err := dashrpc.LoadConfig(logger)
//	...
//	client, err := dashrpc.New(ctx, cfg)
//	...
//	balance, err := client.GetBalance(ctx, nil, nil)
package dashrpc
