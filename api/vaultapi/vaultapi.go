// Copyright (c) 2025 The Stakeward developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package vaultapi

import (
	"math/big"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/stakeward/stakeward/api/utils"
	"github.com/stakeward/stakeward/stakeward"
	"github.com/stakeward/stakeward/vault"
)

// VaultAPI exposes the vault over HTTP. The vault itself runs calls one at a
// time; the mutex serializes concurrent requests in front of it.
type VaultAPI struct {
	mu    sync.Mutex
	vault *vault.Vault
}

func New(v *vault.Vault) *VaultAPI {
	return &VaultAPI{vault: v}
}

func (a *VaultAPI) handleGetState(w http.ResponseWriter, _ *http.Request) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return utils.WriteJSON(w, convertGlobalState(a.vault))
}

func (a *VaultAPI) handleGetAccount(w http.ResponseWriter, req *http.Request) error {
	addr, err := stakeward.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "address"))
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	acct := a.vault.AccountOf(addr)
	return utils.WriteJSON(w, convertAccountState(acct, a.vault.PendingRewardFor(addr)))
}

func (a *VaultAPI) handleDeposit(w http.ResponseWriter, req *http.Request) error {
	var body AmountRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if body.Amount == nil {
		return utils.BadRequest(errors.New("amount: missing"))
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.vault.Deposit(body.Caller, (*big.Int)(body.Amount)); err != nil {
		return convertVaultError(err)
	}
	return utils.WriteJSON(w, convertGlobalState(a.vault))
}

func (a *VaultAPI) handleWithdraw(w http.ResponseWriter, req *http.Request) error {
	var body AmountRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if body.Amount == nil {
		return utils.BadRequest(errors.New("amount: missing"))
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.vault.Withdraw(body.Caller, (*big.Int)(body.Amount)); err != nil {
		return convertVaultError(err)
	}
	return utils.WriteJSON(w, convertGlobalState(a.vault))
}

func (a *VaultAPI) handleClaim(w http.ResponseWriter, req *http.Request) error {
	var body ClaimRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	var err error
	if body.Account != nil {
		err = a.vault.ClaimFor(body.Caller, *body.Account)
	} else {
		err = a.vault.Claim(body.Caller)
	}
	if err != nil {
		return convertVaultError(err)
	}
	return utils.WriteJSON(w, convertGlobalState(a.vault))
}

func (a *VaultAPI) handleSync(w http.ResponseWriter, _ *http.Request) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.vault.UpdatePendingRewards(); err != nil {
		return convertVaultError(err)
	}
	return utils.WriteJSON(w, convertGlobalState(a.vault))
}

func (a *VaultAPI) handlePause(w http.ResponseWriter, req *http.Request) error {
	var body CallerRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.vault.Pause(body.Caller); err != nil {
		return convertVaultError(err)
	}
	return utils.WriteJSON(w, convertGlobalState(a.vault))
}

func (a *VaultAPI) handleResume(w http.ResponseWriter, req *http.Request) error {
	var body CallerRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.vault.Resume(body.Caller); err != nil {
		return convertVaultError(err)
	}
	return utils.WriteJSON(w, convertGlobalState(a.vault))
}

func (a *VaultAPI) handleGetAdmin(w http.ResponseWriter, _ *http.Request) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return utils.WriteJSON(w, map[string]stakeward.Address{"admin": a.vault.Admin()})
}

func (a *VaultAPI) handleSetAdmin(w http.ResponseWriter, req *http.Request) error {
	var body AdminRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.vault.SetNewAdmin(body.Caller, body.NewAdmin); err != nil {
		return convertVaultError(err)
	}
	return utils.WriteJSON(w, map[string]stakeward.Address{"admin": a.vault.Admin()})
}

func (a *VaultAPI) handleBurnAdmin(w http.ResponseWriter, req *http.Request) error {
	var body CallerRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.vault.BurnAdmin(body.Caller); err != nil {
		return convertVaultError(err)
	}
	return utils.WriteJSON(w, map[string]stakeward.Address{"admin": a.vault.Admin()})
}

// convertVaultError maps the vault failure classes onto http statuses.
func convertVaultError(err error) error {
	switch {
	case errors.Is(err, vault.ErrUnauthorized):
		return utils.Forbidden(err)
	case errors.Is(err, vault.ErrInsufficientBalance),
		errors.Is(err, vault.ErrInvalidArgument),
		errors.Is(err, vault.ErrAlreadyInState):
		return utils.BadRequest(err)
	case errors.Is(err, vault.ErrInactiveVault):
		return utils.HTTPError(err, http.StatusConflict)
	case errors.Is(err, vault.ErrReentrancy):
		return utils.HTTPError(err, http.StatusServiceUnavailable)
	default:
		return err
	}
}

func (a *VaultAPI) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("").Methods(http.MethodGet).HandlerFunc(utils.WrapHandlerFunc(a.handleGetState))
	sub.Path("/accounts/{address}").Methods(http.MethodGet).HandlerFunc(utils.WrapHandlerFunc(a.handleGetAccount))
	sub.Path("/deposits").Methods(http.MethodPost).HandlerFunc(utils.WrapHandlerFunc(a.handleDeposit))
	sub.Path("/withdrawals").Methods(http.MethodPost).HandlerFunc(utils.WrapHandlerFunc(a.handleWithdraw))
	sub.Path("/claims").Methods(http.MethodPost).HandlerFunc(utils.WrapHandlerFunc(a.handleClaim))
	sub.Path("/sync").Methods(http.MethodPost).HandlerFunc(utils.WrapHandlerFunc(a.handleSync))
	sub.Path("/pause").Methods(http.MethodPost).HandlerFunc(utils.WrapHandlerFunc(a.handlePause))
	sub.Path("/resume").Methods(http.MethodPost).HandlerFunc(utils.WrapHandlerFunc(a.handleResume))
	sub.Path("/admin").Methods(http.MethodGet).HandlerFunc(utils.WrapHandlerFunc(a.handleGetAdmin))
	sub.Path("/admin").Methods(http.MethodPut).HandlerFunc(utils.WrapHandlerFunc(a.handleSetAdmin))
	sub.Path("/admin").Methods(http.MethodDelete).HandlerFunc(utils.WrapHandlerFunc(a.handleBurnAdmin))
}
