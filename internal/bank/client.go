package bank

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tigglepay/backend/pkg/clients"
)

//go:generate mockgen -source=client.go -destination=client_mock.go -package=bank

// API is the banking backend contract the settlement engine depends on. The
// remote system is non-transactional and offers no idempotency keys; callers
// are responsible for their own duplicate detection.
type API interface {
	CreateAccount(credential string) (string, error)
	InquireBalance(credential, accountNumber string) (int64, error)
	Transfer(credential, toAccount, toMemo string, amount int64, fromAccount, fromMemo string) (Result, error)
	Withdraw(credential, accountNumber string, amount int64, memo string) (Result, error)
	InquireTransactionHistory(credential, accountNumber, startDate, endDate, filter, order string) ([]Transaction, error)
}

type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type Transaction struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Type    string `json:"type"`
	Summary string `json:"summary"`
	Memo    string `json:"memo"`
	Amount  int64  `json:"amount"`
}

const (
	// HistoryCredits filters the transaction history to incoming entries.
	HistoryCredits = "M"
	// HistoryAll returns every entry.
	HistoryAll = "A"

	// OrderDesc returns newest entries first.
	OrderDesc = "DESC"
)

type Client struct {
	url    string
	client clients.HTTPClientI
}

func New(url string, client clients.HTTPClientI) *Client {
	return &Client{url: url, client: client}
}

func (c *Client) post(path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	statusCode, respBody, _, err := c.client.Post(c.url+path, nil, body)
	if err != nil {
		return fmt.Errorf("bank API call %s failed: %w", path, err)
	}
	if statusCode != http.StatusOK {
		return fmt.Errorf("bank API call %s returned status %d", path, statusCode)
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse bank API response: %w", err)
	}
	return nil
}

func (c *Client) CreateAccount(credential string) (string, error) {
	req := map[string]string{"credential": credential}
	var resp struct {
		Result
		AccountNumber string `json:"account_number"`
	}
	if err := c.post("/api/accounts", req, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", fmt.Errorf("account creation rejected: %s", resp.Message)
	}
	return resp.AccountNumber, nil
}

func (c *Client) InquireBalance(credential, accountNumber string) (int64, error) {
	req := map[string]string{
		"credential":     credential,
		"account_number": accountNumber,
	}
	var resp struct {
		Result
		Balance int64 `json:"balance"`
	}
	if err := c.post("/api/accounts/balance", req, &resp); err != nil {
		return 0, err
	}
	if !resp.Success {
		return 0, fmt.Errorf("balance inquiry rejected: %s", resp.Message)
	}
	return resp.Balance, nil
}

func (c *Client) Transfer(credential, toAccount, toMemo string, amount int64, fromAccount, fromMemo string) (Result, error) {
	req := map[string]any{
		"credential":   credential,
		"to_account":   toAccount,
		"to_memo":      toMemo,
		"amount":       amount,
		"from_account": fromAccount,
		"from_memo":    fromMemo,
	}
	var resp Result
	if err := c.post("/api/transfers", req, &resp); err != nil {
		return Result{}, err
	}
	return resp, nil
}

func (c *Client) Withdraw(credential, accountNumber string, amount int64, memo string) (Result, error) {
	req := map[string]any{
		"credential":     credential,
		"account_number": accountNumber,
		"amount":         amount,
		"memo":           memo,
	}
	var resp Result
	if err := c.post("/api/withdrawals", req, &resp); err != nil {
		return Result{}, err
	}
	return resp, nil
}

func (c *Client) InquireTransactionHistory(credential, accountNumber, startDate, endDate, filter, order string) ([]Transaction, error) {
	req := map[string]string{
		"credential":     credential,
		"account_number": accountNumber,
		"start_date":     startDate,
		"end_date":       endDate,
		"filter":         filter,
		"order":          order,
	}
	var resp struct {
		Result
		Transactions []Transaction `json:"transactions"`
	}
	if err := c.post("/api/transactions", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("transaction history rejected: %s", resp.Message)
	}
	return resp.Transactions, nil
}
