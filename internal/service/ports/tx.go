package ports

import "context"

// TxManager runs fn in a single database transaction. Repositories called with
// the context passed to fn take part in that transaction.
type TxManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}
