// Package rpc declares the request and result types of the node's JSON-RPC
// surface that the command line client talks to. The node side lives out of
// this repository; only the client-visible shapes are defined here.
package rpc

// SubmitTransferArgs carries a hex encoded, signed transfer transaction.
type SubmitTransferArgs struct {
	TxBytes string `json:"tx_bytes"`
}

// SubmitTransferResult is the node's acknowledgment of a submitted
// transfer.
type SubmitTransferResult struct {
	TxHash string `json:"tx_hash"`
}

// GetEraReportArgs requests the archived report of one era.
type GetEraReportArgs struct {
	Era uint64 `json:"era"`
}

// GetEraReportResult carries the hex encoded report.
type GetEraReportResult struct {
	ReportBytes string `json:"report_bytes"`
}
