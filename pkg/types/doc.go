// Package types holds the result and argument shapes of the node's RPC
// surface.
//
// Every struct mirrors the JSON the node emits, field for field. Amount
// fields the node prints as decimal coin strings decode into codec.Amount;
// fields it reports in duffs stay plain int64. Hex payloads decode into
// codec.HexBytes, and the 32-byte identifiers (block hashes, txids, ProTx
// hashes, quorum hashes) decode into codec.Hash.
//
// A handful of results are shape-polymorphic: the node answers with one of
// several JSON forms depending on arguments or chain state. Those types
// (ProTxList, QuorumSignResult, MemberDetail, ScanningDetails and friends)
// carry custom UnmarshalJSON methods that probe each form in turn.
package types
