package params

import (
	"context"
	"fmt"
	"time"

	"github.com/hashkit/hedera-agent-kit/pkg/core"
	"github.com/hashkit/hedera-agent-kit/pkg/hiero"
	"github.com/hashkit/hedera-agent-kit/pkg/schema"
)

// Scheduling is the normalised deferred-execution sub-object. It is either
// nil (not scheduled) or fully populated; every schedulable operation embeds
// it identically.
type Scheduling struct {
	AdminKey       *hiero.PublicKey
	PayerAccountID *hiero.AccountID
	ExpirationTime *time.Time
	WaitForExpiry  bool
}

// SchedulingFields is the stable cross-cutting input contract appended to
// every schedulable operation's schema.
func SchedulingFields() []schema.Field {
	return []schema.Field{
		schema.Bool("isScheduled", "Wrap the transaction in a schedule for deferred execution."),
		schema.Bool("adminKey", "Schedule admin key: true to use the operator key, or an explicit public key string."),
		schema.String("payerAccountId", "Account that pays for the scheduled transaction when it executes."),
		schema.String("expirationTime", "Schedule expiration as an ISO-8601 timestamp."),
		schema.Bool("waitForExpiry", "Execute at expiration rather than as soon as all signatures are collected; requires expirationTime."),
	}
}

// normalizeScheduling reads the scheduling fields out of a parsed argument
// map. It returns nil when isScheduled is false or absent. The
// waitForExpiry-without-expirationTime combination is rejected here, before
// any network call is attempted.
func normalizeScheduling(ctx context.Context, parsed map[string]any, tctx *core.Context, client hiero.NetworkClient) (*Scheduling, error) {
	if !boolArg(parsed, "isScheduled") {
		return nil, nil
	}
	s := &Scheduling{WaitForExpiry: boolArg(parsed, "waitForExpiry")}

	switch v := parsed["adminKey"].(type) {
	case nil:
	case bool:
		if v {
			key, err := ResolvePublicKey(ctx, "", tctx, client)
			if err != nil {
				return nil, err
			}
			s.AdminKey = &key
		}
	case string:
		key, err := hiero.ParsePublicKey(v)
		if err != nil {
			return nil, err
		}
		s.AdminKey = &key
	default:
		return nil, fmt.Errorf("adminKey must be a boolean or a public key string")
	}

	if payer := stringArg(parsed, "payerAccountId"); payer != "" {
		id, err := hiero.ParseAccountID(payer)
		if err != nil {
			return nil, err
		}
		s.PayerAccountID = &id
	}

	if expiration := stringArg(parsed, "expirationTime"); expiration != "" {
		t, err := time.Parse(time.RFC3339, expiration)
		if err != nil {
			return nil, fmt.Errorf("invalid expirationTime %q: %w", expiration, err)
		}
		utc := t.UTC()
		s.ExpirationTime = &utc
	}

	if s.WaitForExpiry && s.ExpirationTime == nil {
		return nil, core.NewBusinessRuleError("waitForExpiry requires expirationTime to be set")
	}
	return s, nil
}
