// Package execmode implements the execution-mode strategies: a built
// transaction either leaves the pipeline as frozen unsigned bytes for
// external signing, or is submitted autonomously, optionally wrapped in a
// schedule for deferred execution.
package execmode

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hashkit/hedera-agent-kit/pkg/core"
	"github.com/hashkit/hedera-agent-kit/pkg/hiero"
	"github.com/hashkit/hedera-agent-kit/pkg/params"
)

// Outcome is what a strategy hands back to the tool layer: either the
// serialized unsigned transaction or a receipt from submission.
type Outcome struct {
	Bytes   []byte
	Receipt *hiero.Receipt
}

// Strategy routes a built transaction through the mode selected by the
// execution context.
type Strategy struct {
	logger *logrus.Logger
}

// NewStrategy constructs the mode router.
func NewStrategy(logger *logrus.Logger) *Strategy {
	if logger == nil {
		logger = logrus.New()
	}
	return &Strategy{logger: logger}
}

// Handle drives the transaction to its terminal state for the current mode.
// In return-bytes mode the transaction is frozen with the resolved payer
// and serialized, never submitted. In autonomous mode it is submitted and
// the receipt returned; a non-nil scheduling bundle first wraps it in a
// ScheduleCreate. Network rejections surface through Receipt.Status, not
// through the error return.
func (s *Strategy) Handle(ctx context.Context, tx *hiero.Transaction, sched *params.Scheduling, tctx *core.Context, client hiero.NetworkClient) (*Outcome, error) {
	payer, err := params.ResolveAccount("", tctx, client)
	if err != nil {
		return nil, err
	}

	if tctx.EffectiveMode() == core.ReturnBytesMode {
		if sched != nil {
			tx = wrapInSchedule(tx, sched)
		}
		if err := tx.Freeze(payer, time.Now()); err != nil {
			return nil, err
		}
		bytes, err := tx.Bytes()
		if err != nil {
			return nil, err
		}
		s.logger.WithFields(logrus.Fields{
			"transaction_id": tx.TransactionID().String(),
			"type":           tx.Body().TransactionType(),
		}).Debug("serialized unsigned transaction")
		return &Outcome{Bytes: bytes}, nil
	}

	if sched != nil {
		tx = wrapInSchedule(tx, sched)
	}
	if err := tx.Freeze(payer, time.Now()); err != nil {
		return nil, err
	}
	receipt, err := client.Submit(ctx, tx)
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{
		"transaction_id": receipt.TransactionID.String(),
		"type":           tx.Body().TransactionType(),
		"status":         receipt.Status,
	}).Info("transaction submitted")
	return &Outcome{Receipt: receipt}, nil
}

func wrapInSchedule(tx *hiero.Transaction, sched *params.Scheduling) *hiero.Transaction {
	inner := tx.Body()
	wrapped := hiero.NewTransaction(&hiero.ScheduleCreateBody{
		Inner:          inner,
		InnerType:      inner.TransactionType(),
		AdminKey:       sched.AdminKey,
		PayerAccountID: sched.PayerAccountID,
		ExpirationTime: sched.ExpirationTime,
		WaitForExpiry:  sched.WaitForExpiry,
	})
	if memo := tx.Memo(); memo != "" {
		// memo carries over to the wrapper; the inner body has no memo field
		// of its own.
		_ = wrapped.SetMemo(memo)
	}
	return wrapped
}
