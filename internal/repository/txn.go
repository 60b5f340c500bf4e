package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// TxnRunner runs a set of collection operations inside one mongo transaction.
// Used where the catalog must change atomically, e.g. replacing a quiz's
// whole question set.
type TxnRunner struct {
	client *mongo.Client
}

func NewTxnRunner(client *mongo.Client) *TxnRunner {
	return &TxnRunner{client: client}
}

func (t *TxnRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := t.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc)
	})
	return err
}
