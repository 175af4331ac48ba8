// Copyright (c) 2025 The Stakeward developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package stakewardclient provides an HTTP client for the stakeward API.
package stakewardclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common/math"

	"github.com/stakeward/stakeward/api/vaultapi"
	"github.com/stakeward/stakeward/stakeward"
)

var ErrNot200Status = errors.New("not 200 status code")

// Client communicates with a stakeward daemon via HTTP requests.
type Client struct {
	url string
	c   *http.Client
}

// New creates a new Client with the provided URL.
func New(url string) *Client {
	return NewWithHTTP(url, http.DefaultClient)
}

func NewWithHTTP(url string, c *http.Client) *Client {
	return &Client{
		url: url,
		c:   c,
	}
}

// VaultState retrieves the vault-wide state.
func (c *Client) VaultState() (*vaultapi.GlobalState, error) {
	body, err := c.httpGET(c.url + "/vault")
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve vault state - %w", err)
	}

	var state vaultapi.GlobalState
	if err = json.Unmarshal(body, &state); err != nil {
		return nil, fmt.Errorf("unable to unmarshal vault state - %w", err)
	}
	return &state, nil
}

// Account retrieves the staking account of the given address.
func (c *Client) Account(addr stakeward.Address) (*vaultapi.AccountState, error) {
	body, err := c.httpGET(c.url + "/vault/accounts/" + addr.String())
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve account - %w", err)
	}

	var account vaultapi.AccountState
	if err = json.Unmarshal(body, &account); err != nil {
		return nil, fmt.Errorf("unable to unmarshal account - %w", err)
	}
	return &account, nil
}

// Deposit stakes amount of principal on behalf of caller.
func (c *Client) Deposit(caller stakeward.Address, amount *big.Int) (*vaultapi.GlobalState, error) {
	return c.postAmount("/vault/deposits", caller, amount)
}

// Withdraw unstakes amount of principal on behalf of caller.
func (c *Client) Withdraw(caller stakeward.Address, amount *big.Int) (*vaultapi.GlobalState, error) {
	return c.postAmount("/vault/withdrawals", caller, amount)
}

// Claim settles caller's accrued rewards.
func (c *Client) Claim(caller stakeward.Address) (*vaultapi.GlobalState, error) {
	return c.postState("/vault/claims", &vaultapi.ClaimRequest{Caller: caller})
}

// ClaimFor settles the accrued rewards of a third-party account.
func (c *Client) ClaimFor(caller, account stakeward.Address) (*vaultapi.GlobalState, error) {
	return c.postState("/vault/claims", &vaultapi.ClaimRequest{Caller: caller, Account: &account})
}

// Sync queues reward inflow received since the last sync.
func (c *Client) Sync() (*vaultapi.GlobalState, error) {
	return c.postState("/vault/sync", nil)
}

// Pause suspends all staking operations.
func (c *Client) Pause(caller stakeward.Address) (*vaultapi.GlobalState, error) {
	return c.postState("/vault/pause", &vaultapi.CallerRequest{Caller: caller})
}

// Resume reactivates the vault.
func (c *Client) Resume(caller stakeward.Address) (*vaultapi.GlobalState, error) {
	return c.postState("/vault/resume", &vaultapi.CallerRequest{Caller: caller})
}

// Admin retrieves the current admin identity, the null address after a burn.
func (c *Client) Admin() (*stakeward.Address, error) {
	body, err := c.httpGET(c.url + "/vault/admin")
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve admin - %w", err)
	}
	return unmarshalAdmin(body)
}

// SetAdmin transfers the admin identity to newAdmin.
func (c *Client) SetAdmin(caller, newAdmin stakeward.Address) (*stakeward.Address, error) {
	payload, err := json.Marshal(&vaultapi.AdminRequest{Caller: caller, NewAdmin: newAdmin})
	if err != nil {
		return nil, fmt.Errorf("unable to marshal payload - %w", err)
	}
	body, err := c.httpRequest(http.MethodPut, c.url+"/vault/admin", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("unable to set admin - %w", err)
	}
	return unmarshalAdmin(body)
}

// BurnAdmin irreversibly clears the admin identity.
func (c *Client) BurnAdmin(caller stakeward.Address) (*stakeward.Address, error) {
	payload, err := json.Marshal(&vaultapi.CallerRequest{Caller: caller})
	if err != nil {
		return nil, fmt.Errorf("unable to marshal payload - %w", err)
	}
	body, err := c.httpRequest(http.MethodDelete, c.url+"/vault/admin", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("unable to burn admin - %w", err)
	}
	return unmarshalAdmin(body)
}

func unmarshalAdmin(body []byte) (*stakeward.Address, error) {
	var res struct {
		Admin stakeward.Address `json:"admin"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("unable to unmarshal admin - %w", err)
	}
	return &res.Admin, nil
}

func (c *Client) postAmount(path string, caller stakeward.Address, amount *big.Int) (*vaultapi.GlobalState, error) {
	return c.postState(path, &vaultapi.AmountRequest{
		Caller: caller,
		Amount: (*math.HexOrDecimal256)(amount),
	})
}

func (c *Client) postState(path string, payload any) (*vaultapi.GlobalState, error) {
	body, err := c.httpPOST(c.url+path, payload)
	if err != nil {
		return nil, fmt.Errorf("unable to request %s - %w", path, err)
	}

	var state vaultapi.GlobalState
	if err = json.Unmarshal(body, &state); err != nil {
		return nil, fmt.Errorf("unable to unmarshal vault state - %w", err)
	}
	return &state, nil
}

func (c *Client) httpGET(url string) ([]byte, error) {
	return c.httpRequest(http.MethodGet, url, nil)
}

func (c *Client) httpPOST(url string, payload any) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("unable to marshal payload - %w", err)
		}
		reader = bytes.NewReader(data)
	}
	return c.httpRequest(http.MethodPost, url, reader)
}

func (c *Client) httpRequest(method, url string, payload io.Reader) ([]byte, error) {
	req, err := http.NewRequest(method, url, payload)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	res, err := c.c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d - %s", ErrNot200Status, res.StatusCode, bytes.TrimSpace(body))
	}
	return body, nil
}
