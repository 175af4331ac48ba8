// Copyright (c) 2025 The Stakeward developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package vault

import (
	"math/big"

	"github.com/ethereum/go-ethereum/event"
	"github.com/inconshreveable/log15"
	"github.com/pkg/errors"

	"github.com/stakeward/stakeward/authority"
	"github.com/stakeward/stakeward/ledger"
	"github.com/stakeward/stakeward/stakeward"
)

var log = log15.New("pkg", "vault")

// Vault is a single-asset staking pool paying out a second reward asset
// proportionally to each depositor's share over time.
//
// Reward accounting is accumulator-per-share: accPerShare carries the
// cumulative reward per principal unit at 1e18 fixed-point scale, and each
// account keeps a rewardDebt baseline marking the portion already paid.
// Rewards pushed into the vault's reward balance by any sender become
// distributable after UpdatePendingRewards and are folded into the
// accumulator lazily on the next deposit or withdraw.
//
// A Vault is not safe for concurrent use. Calls run to completion one at a
// time; the reentrancy guard exists to reject re-entry from asset-transfer
// callbacks within a call.
type Vault struct {
	principal ledger.Asset
	reward    ledger.Asset
	auth      authority.Authority

	admin  stakeward.Address
	paused bool

	accPerShare          *big.Int
	pendingRewards       *big.Int
	trackedRewardBalance *big.Int
	accounts             map[stakeward.Address]*Account

	entered bool

	feed  event.Feed
	scope event.SubscriptionScope
}

// New creates a vault over the given principal and reward asset capabilities.
// auth gates pause/resume; admin is the initial admin identity.
func New(principal, reward ledger.Asset, auth authority.Authority, admin stakeward.Address) *Vault {
	return &Vault{
		principal:            principal,
		reward:               reward,
		auth:                 auth,
		admin:                admin,
		accPerShare:          new(big.Int),
		pendingRewards:       new(big.Int),
		trackedRewardBalance: new(big.Int),
		accounts:             make(map[stakeward.Address]*Account),
	}
}

// lock acquires the reentrancy guard and returns its release func.
// The release must be deferred so every exit path, error paths included,
// leaves the guard open.
func (v *Vault) lock() (func(), error) {
	if v.entered {
		return nil, ErrReentrancy
	}
	v.entered = true
	return func() { v.entered = false }, nil
}

func (v *Vault) requireActive() error {
	if v.paused {
		return ErrInactiveVault
	}
	return nil
}

func checkAmount(amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return errors.WithMessage(ErrInvalidArgument, "amount")
	}
	return nil
}

func (v *Vault) accountRef(addr stakeward.Address) *Account {
	if acct, ok := v.accounts[addr]; ok {
		return acct
	}
	acct := newAccount()
	v.accounts[addr] = acct
	return acct
}

// syncInflow queues newly arrived reward balance as pending. A decreased
// balance is unreachable under the asset contract and is treated the same
// as no inflow.
func (v *Vault) syncInflow() {
	current := v.reward.Balance()
	delta := new(big.Int).Sub(current, v.trackedRewardBalance)
	if delta.Sign() <= 0 {
		return
	}
	v.trackedRewardBalance = current
	v.pendingRewards.Add(v.pendingRewards, delta)
}

// fold flushes all queued rewards into the accumulator, weighted by the
// principal held at this moment. With an empty pool the queue stays intact
// for the next nonzero-principal fold.
func (v *Vault) fold() {
	principalBal := v.principal.Balance()
	if principalBal.Sign() == 0 {
		return
	}
	inc := new(big.Int).Mul(v.pendingRewards, stakeward.RewardScale)
	inc.Div(inc, principalBal)
	v.accPerShare.Add(v.accPerShare, inc)
	v.pendingRewards = new(big.Int)
}

// settle pays out the account's accrued reward and rewrites its debt
// baseline. The baseline is rewritten even when the payout is short, so the
// account is consistent at every point a later step may fail.
func (v *Vault) settle(owner stakeward.Address, acct *Account) error {
	owed := acct.owed(v.accPerShare)
	if owed.Sign() > 0 {
		if err := v.payout(owner, owed); err != nil {
			return err
		}
	}
	acct.settleDebt(v.accPerShare)
	return nil
}

// payout delivers up to requested reward units to `to`. When the on-hand
// reward balance is short, caused by rounding of repeated divisions, the
// full available balance is paid instead and the call still succeeds.
func (v *Vault) payout(to stakeward.Address, requested *big.Int) error {
	available := v.reward.Balance()
	amount := requested
	if requested.Cmp(available) > 0 {
		log.Warn("reward payout shortfall", "to", to, "requested", requested, "available", available)
		metricShortfallCount().Add(1)
		amount = available
	}
	if _, err := v.reward.TransferOut(to, amount); err != nil {
		return err
	}
	v.trackedRewardBalance = v.reward.Balance()
	return nil
}

// Deposit pulls amount of principal from caller into the vault. A zero
// amount is valid and acts purely as a claim trigger.
func (v *Vault) Deposit(caller stakeward.Address, amount *big.Int) error {
	release, err := v.lock()
	if err != nil {
		return err
	}
	defer release()

	if err := v.requireActive(); err != nil {
		return err
	}
	if err := checkAmount(amount); err != nil {
		return err
	}

	v.fold()
	acct := v.accountRef(caller)
	if err := v.settle(caller, acct); err != nil {
		return err
	}
	if amount.Sign() > 0 {
		if err := v.principal.TransferIn(caller, amount); err != nil {
			return err
		}
		acct.Amount.Add(acct.Amount, amount)
		acct.settleDebt(v.accPerShare)
	}

	log.Debug("deposit", "user", caller, "amount", amount)
	metricOpCount().AddWithLabel(1, map[string]string{"op": "deposit"})
	v.emit(Event{Type: EventDeposit, User: caller, Amount: new(big.Int).Set(amount)})
	return nil
}

// Withdraw pushes amount of principal back to caller. Requesting more than
// the staked balance fails before any mutation.
func (v *Vault) Withdraw(caller stakeward.Address, amount *big.Int) error {
	release, err := v.lock()
	if err != nil {
		return err
	}
	defer release()
	return v.withdraw(caller, amount, "withdraw")
}

// Claim settles the caller's accrued reward without touching principal.
func (v *Vault) Claim(caller stakeward.Address) error {
	release, err := v.lock()
	if err != nil {
		return err
	}
	defer release()
	return v.withdraw(caller, new(big.Int), "claim")
}

// ClaimFor settles the accrued reward of an arbitrary account. The reward
// is paid to that account, not to the caller.
func (v *Vault) ClaimFor(caller, account stakeward.Address) error {
	release, err := v.lock()
	if err != nil {
		return err
	}
	defer release()

	log.Debug("third-party claim", "caller", caller, "account", account)
	return v.withdraw(account, new(big.Int), "claim")
}

// withdraw runs with the guard held. owner is the account being settled and
// the receiver of any principal and reward movement.
func (v *Vault) withdraw(owner stakeward.Address, amount *big.Int, op string) error {
	if err := v.requireActive(); err != nil {
		return err
	}
	if err := checkAmount(amount); err != nil {
		return err
	}
	staked := new(big.Int)
	if acct, ok := v.accounts[owner]; ok {
		staked = acct.Amount
	}
	if staked.Cmp(amount) < 0 {
		return errors.WithMessagef(ErrInsufficientBalance, "staked %v, requested %v", staked, amount)
	}

	v.fold()
	acct := v.accountRef(owner)
	if err := v.settle(owner, acct); err != nil {
		return err
	}
	if amount.Sign() > 0 {
		acct.Amount.Sub(acct.Amount, amount)
		acct.settleDebt(v.accPerShare)
		if _, err := v.principal.TransferOut(owner, amount); err != nil {
			return err
		}
	}

	log.Debug(op, "user", owner, "amount", amount)
	metricOpCount().AddWithLabel(1, map[string]string{"op": op})
	v.emit(Event{Type: EventWithdraw, User: owner, Amount: new(big.Int).Set(amount)})
	return nil
}

// UpdatePendingRewards queues reward balance pushed into the vault since the
// last sync. Callable by anyone while active; folding into the accumulator
// is deferred to the next deposit or withdraw.
func (v *Vault) UpdatePendingRewards() error {
	release, err := v.lock()
	if err != nil {
		return err
	}
	defer release()

	if err := v.requireActive(); err != nil {
		return err
	}
	v.syncInflow()
	return nil
}

// Pause moves the vault from active to paused. Gated by the external
// authority, not by the admin role.
func (v *Vault) Pause(caller stakeward.Address) error {
	release, err := v.lock()
	if err != nil {
		return err
	}
	defer release()

	if !v.auth.IsAllowed(caller, stakeward.ActionPause) {
		return errors.WithMessage(ErrUnauthorized, "pause")
	}
	if v.paused {
		return errors.WithMessage(ErrAlreadyInState, "pause")
	}
	v.paused = true

	log.Info("vault paused", "by", caller)
	metricPausedGauge().Set(1)
	v.emit(Event{Type: EventPaused, User: caller})
	return nil
}

// Resume moves the vault from paused back to active.
func (v *Vault) Resume(caller stakeward.Address) error {
	release, err := v.lock()
	if err != nil {
		return err
	}
	defer release()

	if !v.auth.IsAllowed(caller, stakeward.ActionResume) {
		return errors.WithMessage(ErrUnauthorized, "resume")
	}
	if !v.paused {
		return errors.WithMessage(ErrAlreadyInState, "resume")
	}
	v.paused = false

	log.Info("vault resumed", "by", caller)
	metricPausedGauge().Set(0)
	v.emit(Event{Type: EventResumed, User: caller})
	return nil
}

// SetNewAdmin transfers the admin identity. The new identity must be non-null.
func (v *Vault) SetNewAdmin(caller, newAdmin stakeward.Address) error {
	release, err := v.lock()
	if err != nil {
		return err
	}
	defer release()

	if err := v.requireAdmin(caller); err != nil {
		return err
	}
	if newAdmin.IsZero() {
		return errors.WithMessage(ErrInvalidArgument, "new admin is null")
	}
	old := v.admin
	v.admin = newAdmin

	log.Info("admin transferred", "old", old, "new", newAdmin)
	v.emit(Event{Type: EventAdminTransferred, Old: old, New: newAdmin})
	return nil
}

// BurnAdmin irreversibly sets the admin to the null identity. All subsequent
// admin-gated calls fail permanently.
func (v *Vault) BurnAdmin(caller stakeward.Address) error {
	release, err := v.lock()
	if err != nil {
		return err
	}
	defer release()

	if err := v.requireAdmin(caller); err != nil {
		return err
	}
	old := v.admin
	v.admin = stakeward.Address{}

	log.Info("admin burned", "old", old)
	v.emit(Event{Type: EventAdminTransferred, Old: old, New: stakeward.Address{}})
	return nil
}

func (v *Vault) requireAdmin(caller stakeward.Address) error {
	if v.admin.IsZero() || caller != v.admin {
		return errors.WithMessage(ErrUnauthorized, "admin only")
	}
	return nil
}

//
// Getters - no state change
//

// PendingRewardFor returns the reward accrued by an account against the
// current accumulator. Rewards synced but not yet folded are not included.
func (v *Vault) PendingRewardFor(account stakeward.Address) *big.Int {
	if acct, ok := v.accounts[account]; ok {
		return acct.owed(v.accPerShare)
	}
	return new(big.Int)
}

// AccountOf returns a copy of the account entry, or a zero entry if the
// address never deposited.
func (v *Vault) AccountOf(account stakeward.Address) *Account {
	if acct, ok := v.accounts[account]; ok {
		return acct.Copy()
	}
	return newAccount()
}

// Admin returns the current admin identity, zero after a burn.
func (v *Vault) Admin() stakeward.Address {
	return v.admin
}

// Paused returns whether the vault is paused.
func (v *Vault) Paused() bool {
	return v.paused
}

// AccPerShare returns the accumulator value, 1e18 scaled.
func (v *Vault) AccPerShare() *big.Int {
	return new(big.Int).Set(v.accPerShare)
}

// PendingRewards returns rewards synced but not yet folded.
func (v *Vault) PendingRewards() *big.Int {
	return new(big.Int).Set(v.pendingRewards)
}

// TrackedRewardBalance returns the last observed reward balance.
func (v *Vault) TrackedRewardBalance() *big.Int {
	return new(big.Int).Set(v.trackedRewardBalance)
}

// TotalStaked returns the principal currently held by the vault.
func (v *Vault) TotalStaked() *big.Int {
	return v.principal.Balance()
}
