package model

import "context"

// TxManager runs fn inside a single storage transaction. Repository calls made
// with the context passed to fn join that transaction; fn returning an error
// rolls everything back. Multi-step ledger mutations (order create/update/
// delete, bouquet assembly/disassembly, write-off recording) must go through it
// so a partial failure never leaves the ledger and the line items disagreeing.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
