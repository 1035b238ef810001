// Package hiero holds the Hedera domain value types the toolkit operates on:
// entity identifiers, HBAR amounts, public keys, transaction bodies and the
// narrow collaborator interfaces (NetworkClient, MirrorService) behind which
// the actual network protocol and mirror REST API live.
package hiero

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// entityID is the shard.realm.num triplet shared by every Hedera entity type.
type entityID struct {
	Shard uint64
	Realm uint64
	Num   uint64
}

func parseEntityID(s string) (entityID, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return entityID{}, fmt.Errorf("invalid entity id %q: expected shard.realm.num", s)
	}
	var nums [3]uint64
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return entityID{}, fmt.Errorf("invalid entity id %q: %w", s, err)
		}
		nums[i] = v
	}
	return entityID{Shard: nums[0], Realm: nums[1], Num: nums[2]}, nil
}

func (e entityID) String() string {
	return fmt.Sprintf("%d.%d.%d", e.Shard, e.Realm, e.Num)
}

// AccountID identifies a Hedera account. Accounts may additionally be
// addressed by their 20-byte EVM alias, in which case Num is zero and
// EVMAddress carries the alias.
type AccountID struct {
	Shard      uint64
	Realm      uint64
	Num        uint64
	EVMAddress *common.Address
}

// ParseAccountID accepts either the shard.realm.num form ("0.0.1234") or a
// 0x-prefixed 20-byte EVM address alias.
func ParseAccountID(s string) (AccountID, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		if !common.IsHexAddress(s) {
			return AccountID{}, fmt.Errorf("invalid account id %q: malformed EVM address", s)
		}
		addr := common.HexToAddress(s)
		return AccountID{EVMAddress: &addr}, nil
	}
	e, err := parseEntityID(s)
	if err != nil {
		return AccountID{}, fmt.Errorf("invalid account id %q", s)
	}
	return AccountID{Shard: e.Shard, Realm: e.Realm, Num: e.Num}, nil
}

func (a AccountID) String() string {
	if a.EVMAddress != nil {
		return a.EVMAddress.Hex()
	}
	return entityID{a.Shard, a.Realm, a.Num}.String()
}

// IsZero reports whether the id carries neither a numeric id nor an EVM alias.
func (a AccountID) IsZero() bool {
	return a.EVMAddress == nil && a.Shard == 0 && a.Realm == 0 && a.Num == 0
}

// Equals compares two account ids structurally.
func (a AccountID) Equals(b AccountID) bool {
	return a.String() == b.String()
}

func (a AccountID) MarshalJSON() ([]byte, error)  { return marshalIDString(a.String()) }
func (a *AccountID) UnmarshalJSON(b []byte) error { return unmarshalIDString(b, func(s string) error { v, err := ParseAccountID(s); *a = v; return err }) }

// TokenID identifies a fungible or non-fungible token class.
type TokenID struct {
	Shard uint64
	Realm uint64
	Num   uint64
}

// ParseTokenID parses the shard.realm.num form.
func ParseTokenID(s string) (TokenID, error) {
	e, err := parseEntityID(s)
	if err != nil {
		return TokenID{}, fmt.Errorf("invalid token id %q", s)
	}
	return TokenID(e), nil
}

func (t TokenID) String() string { return entityID(t).String() }

func (t TokenID) MarshalJSON() ([]byte, error)  { return marshalIDString(t.String()) }
func (t *TokenID) UnmarshalJSON(b []byte) error { return unmarshalIDString(b, func(s string) error { v, err := ParseTokenID(s); *t = v; return err }) }

// TopicID identifies a consensus topic.
type TopicID struct {
	Shard uint64
	Realm uint64
	Num   uint64
}

// ParseTopicID parses the shard.realm.num form.
func ParseTopicID(s string) (TopicID, error) {
	e, err := parseEntityID(s)
	if err != nil {
		return TopicID{}, fmt.Errorf("invalid topic id %q", s)
	}
	return TopicID(e), nil
}

func (t TopicID) String() string { return entityID(t).String() }

func (t TopicID) MarshalJSON() ([]byte, error)  { return marshalIDString(t.String()) }
func (t *TopicID) UnmarshalJSON(b []byte) error { return unmarshalIDString(b, func(s string) error { v, err := ParseTopicID(s); *t = v; return err }) }

// ContractID identifies an EVM contract instance.
type ContractID struct {
	Shard uint64
	Realm uint64
	Num   uint64
}

// ParseContractID parses the shard.realm.num form.
func ParseContractID(s string) (ContractID, error) {
	e, err := parseEntityID(s)
	if err != nil {
		return ContractID{}, fmt.Errorf("invalid contract id %q", s)
	}
	return ContractID(e), nil
}

func (c ContractID) String() string { return entityID(c).String() }

func (c ContractID) MarshalJSON() ([]byte, error)  { return marshalIDString(c.String()) }
func (c *ContractID) UnmarshalJSON(b []byte) error { return unmarshalIDString(b, func(s string) error { v, err := ParseContractID(s); *c = v; return err }) }

// ScheduleID identifies a scheduled transaction entity.
type ScheduleID struct {
	Shard uint64
	Realm uint64
	Num   uint64
}

// ParseScheduleID parses the shard.realm.num form.
func ParseScheduleID(s string) (ScheduleID, error) {
	e, err := parseEntityID(s)
	if err != nil {
		return ScheduleID{}, fmt.Errorf("invalid schedule id %q", s)
	}
	return ScheduleID(e), nil
}

func (s ScheduleID) String() string { return entityID(s).String() }

func (s ScheduleID) MarshalJSON() ([]byte, error)  { return marshalIDString(s.String()) }
func (s *ScheduleID) UnmarshalJSON(b []byte) error { return unmarshalIDString(b, func(v string) error { p, err := ParseScheduleID(v); *s = p; return err }) }

// TransactionID is the payer account plus the transaction's valid-start
// instant, the network-wide unique identifier for a submitted transaction.
type TransactionID struct {
	AccountID  AccountID
	ValidStart time.Time
}

// NewTransactionID assigns a transaction id with the given payer and
// valid-start instant.
func NewTransactionID(payer AccountID, validStart time.Time) TransactionID {
	return TransactionID{AccountID: payer, ValidStart: validStart.UTC()}
}

// ParseTransactionID parses either the canonical "payer@seconds.nanos"
// form or the "payer-seconds-nanos" form used by mirror-node REST paths.
func ParseTransactionID(s string) (TransactionID, error) {
	payerPart, rest, sep := s, "", ""
	if at := strings.IndexByte(s, '@'); at > 0 {
		payerPart, rest, sep = s[:at], s[at+1:], "."
	} else if dash := strings.IndexByte(s, '-'); dash > 0 {
		payerPart, rest, sep = s[:dash], s[dash+1:], "-"
	}
	if rest == "" {
		return TransactionID{}, fmt.Errorf("invalid transaction id %q", s)
	}
	payer, err := ParseAccountID(payerPart)
	if err != nil {
		return TransactionID{}, fmt.Errorf("invalid transaction id %q: %w", s, err)
	}
	secPart, nanoPart, found := strings.Cut(rest, sep)
	if !found {
		return TransactionID{}, fmt.Errorf("invalid transaction id %q", s)
	}
	sec, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil {
		return TransactionID{}, fmt.Errorf("invalid transaction id %q", s)
	}
	nanos, err := strconv.ParseInt(nanoPart, 10, 64)
	if err != nil || nanos < 0 || nanos > 999_999_999 {
		return TransactionID{}, fmt.Errorf("invalid transaction id %q", s)
	}
	return TransactionID{AccountID: payer, ValidStart: time.Unix(sec, nanos).UTC()}, nil
}

// String renders the canonical "payer@seconds.nanos" form.
func (t TransactionID) String() string {
	return fmt.Sprintf("%s@%d.%09d", t.AccountID, t.ValidStart.Unix(), t.ValidStart.Nanosecond())
}

// MirrorFormat renders the "payer-seconds-nanos" form used by mirror-node
// REST paths.
func (t TransactionID) MirrorFormat() string {
	return fmt.Sprintf("%s-%d-%09d", t.AccountID, t.ValidStart.Unix(), t.ValidStart.Nanosecond())
}

func (t TransactionID) MarshalJSON() ([]byte, error) { return marshalIDString(t.String()) }

func marshalIDString(s string) ([]byte, error) {
	return []byte(strconv.Quote(s)), nil
}

func unmarshalIDString(b []byte, set func(string) error) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	return set(s)
}
