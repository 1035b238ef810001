// Package mirror implements hiero.MirrorService over the Hedera mirror-node
// REST API. The client is stateless and performs no retries; callers see
// every failure as-is.
package mirror

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sirupsen/logrus"

	"github.com/hashkit/hedera-agent-kit/pkg/hiero"
)

// Well-known public mirror-node endpoints.
const (
	MainnetBaseURL = "https://mainnet-public.mirrornode.hedera.com"
	TestnetBaseURL = "https://testnet.mirrornode.hedera.com"
)

var _ hiero.MirrorService = (*Client)(nil)

// Client talks to one mirror-node REST endpoint.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *logrus.Logger
}

// NewClient builds a mirror client for the given base URL.
func NewClient(baseURL string, logger *logrus.Logger) *Client {
	if logger == nil {
		logger = logrus.New()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

// SetHTTPClient swaps the underlying HTTP client, mainly for tests.
func (c *Client) SetHTTPClient(h *http.Client) { c.http = h }

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("mirror request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mirror request %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding mirror response for %s: %w", path, err)
	}
	return nil
}

type accountResponse struct {
	Account string `json:"account"`
	Balance struct {
		Balance int64 `json:"balance"`
	} `json:"balance"`
	Key *struct {
		Key string `json:"key"`
	} `json:"key"`
	EVMAddress string `json:"evm_address"`
	Memo       string `json:"memo"`
	Deleted    bool   `json:"deleted"`
}

// AccountInfo fetches /api/v1/accounts/{id}.
func (c *Client) AccountInfo(ctx context.Context, id hiero.AccountID) (*hiero.AccountInfo, error) {
	var resp accountResponse
	if err := c.get(ctx, "/api/v1/accounts/"+url.PathEscape(id.String()), &resp); err != nil {
		return nil, err
	}
	accountID, err := hiero.ParseAccountID(resp.Account)
	if err != nil {
		return nil, fmt.Errorf("mirror returned malformed account id: %w", err)
	}
	info := &hiero.AccountInfo{
		AccountID:      accountID,
		BalanceTinybar: resp.Balance.Balance,
		EVMAddress:     resp.EVMAddress,
		Memo:           resp.Memo,
		Deleted:        resp.Deleted,
	}
	if resp.Key != nil && resp.Key.Key != "" {
		key, err := hiero.ParsePublicKey(resp.Key.Key)
		if err != nil {
			c.logger.WithError(err).Debug("skipping unparseable account key from mirror")
		} else {
			info.Key = &key
		}
	}
	return info, nil
}

// AccountBalance fetches the account and returns its HBAR balance.
func (c *Client) AccountBalance(ctx context.Context, id hiero.AccountID) (hiero.Hbar, error) {
	info, err := c.AccountInfo(ctx, id)
	if err != nil {
		return 0, err
	}
	return hiero.HbarFromTinybar(info.BalanceTinybar), nil
}

type tokenResponse struct {
	TokenID     string `json:"token_id"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Decimals    string `json:"decimals"`
	TotalSupply string `json:"total_supply"`
	Type        string `json:"type"`
	SupplyType  string `json:"supply_type"`
	Treasury    string `json:"treasury_account_id"`
}

// TokenInfo fetches /api/v1/tokens/{id}.
func (c *Client) TokenInfo(ctx context.Context, id hiero.TokenID) (*hiero.TokenInfo, error) {
	var resp tokenResponse
	if err := c.get(ctx, "/api/v1/tokens/"+url.PathEscape(id.String()), &resp); err != nil {
		return nil, err
	}
	tokenID, err := hiero.ParseTokenID(resp.TokenID)
	if err != nil {
		return nil, fmt.Errorf("mirror returned malformed token id: %w", err)
	}
	var decimals uint32
	fmt.Sscanf(resp.Decimals, "%d", &decimals)
	var totalSupply uint64
	fmt.Sscanf(resp.TotalSupply, "%d", &totalSupply)
	return &hiero.TokenInfo{
		TokenID:     tokenID,
		Name:        resp.Name,
		Symbol:      resp.Symbol,
		Decimals:    decimals,
		TotalSupply: totalSupply,
		Type:        hiero.TokenType(resp.Type),
		SupplyType:  hiero.SupplyType(resp.SupplyType),
		Treasury:    mustAccount(resp.Treasury),
	}, nil
}

type pendingAirdropsResponse struct {
	Airdrops []struct {
		Amount       int64  `json:"amount"`
		ReceiverID   string `json:"receiver_id"`
		SenderID     string `json:"sender_id"`
		SerialNumber *int64 `json:"serial_number"`
		TokenID      string `json:"token_id"`
	} `json:"airdrops"`
}

// PendingAirdrops fetches /api/v1/accounts/{id}/airdrops/pending. The
// mirror's listing order is preserved.
func (c *Client) PendingAirdrops(ctx context.Context, receiver hiero.AccountID) ([]hiero.PendingAirdrop, error) {
	var resp pendingAirdropsResponse
	path := "/api/v1/accounts/" + url.PathEscape(receiver.String()) + "/airdrops/pending"
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	out := make([]hiero.PendingAirdrop, 0, len(resp.Airdrops))
	for _, a := range resp.Airdrops {
		tokenID, err := hiero.ParseTokenID(a.TokenID)
		if err != nil {
			return nil, fmt.Errorf("mirror returned malformed token id: %w", err)
		}
		out = append(out, hiero.PendingAirdrop{
			SenderID:   mustAccount(a.SenderID),
			ReceiverID: mustAccount(a.ReceiverID),
			TokenID:    tokenID,
			Amount:     a.Amount,
			Serial:     a.SerialNumber,
		})
	}
	return out, nil
}

type transactionsResponse struct {
	Transactions []struct {
		TransactionID      string `json:"transaction_id"`
		Result             string `json:"result"`
		ConsensusTimestamp string `json:"consensus_timestamp"`
		MemoBase64         string `json:"memo_base64"`
		Transfers          []struct {
			Account    string `json:"account"`
			Amount     int64  `json:"amount"`
			IsApproval bool   `json:"is_approval"`
		} `json:"transfers"`
	} `json:"transactions"`
}

// TransactionRecord fetches /api/v1/transactions/{id}. The id is in the
// mirror's payer-seconds-nanos form.
func (c *Client) TransactionRecord(ctx context.Context, transactionID string) (*hiero.TransactionRecord, error) {
	var resp transactionsResponse
	if err := c.get(ctx, "/api/v1/transactions/"+url.PathEscape(transactionID), &resp); err != nil {
		return nil, err
	}
	if len(resp.Transactions) == 0 {
		return nil, fmt.Errorf("transaction %s not found", transactionID)
	}
	tx := resp.Transactions[0]
	record := &hiero.TransactionRecord{
		TransactionID:      tx.TransactionID,
		Status:             hiero.Status(tx.Result),
		ConsensusTimestamp: tx.ConsensusTimestamp,
	}
	if tx.MemoBase64 != "" {
		if memo, err := base64.StdEncoding.DecodeString(tx.MemoBase64); err == nil {
			record.Memo = string(memo)
		}
	}
	for _, t := range tx.Transfers {
		record.Transfers = append(record.Transfers, hiero.AccountAmount{
			AccountID:  mustAccount(t.Account),
			Amount:     hiero.HbarFromTinybar(t.Amount),
			IsApproval: t.IsApproval,
		})
	}
	return record, nil
}

type contractCallRequest struct {
	Data     string `json:"data"`
	To       string `json:"to"`
	Estimate bool   `json:"estimate"`
}

type contractCallResponse struct {
	Result string `json:"result"`
}

// ContractCall posts /api/v1/contracts/call, the mirror's read-only EVM
// execution endpoint.
func (c *Client) ContractCall(ctx context.Context, call hiero.ContractCallRequest) ([]byte, error) {
	payload, err := json.Marshal(contractCallRequest{
		Data:     hexutil.Encode(call.Data),
		To:       contractEVMAddress(call.ContractID).Hex(),
		Estimate: call.Estimate,
	})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/contracts/call", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mirror contract call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("mirror contract call: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var out contractCallResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding contract call response: %w", err)
	}
	return hexutil.Decode(out.Result)
}

// contractEVMAddress derives the long-zero EVM address of a numeric
// contract id: 4 bytes shard, 8 bytes realm, 8 bytes num.
func contractEVMAddress(id hiero.ContractID) common.Address {
	var addr common.Address
	binary.BigEndian.PutUint32(addr[0:4], uint32(id.Shard))
	binary.BigEndian.PutUint64(addr[4:12], id.Realm)
	binary.BigEndian.PutUint64(addr[12:20], id.Num)
	return addr
}

// mustAccount parses ids produced by the mirror node itself; malformed
// values degrade to the zero id rather than failing the whole response.
func mustAccount(s string) hiero.AccountID {
	id, err := hiero.ParseAccountID(s)
	if err != nil {
		return hiero.AccountID{}
	}
	return id
}
