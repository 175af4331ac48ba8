// Copyright (c) 2025 The Stakeward developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/pkg/errors"

	"github.com/stakeward/stakeward/authority"
	"github.com/stakeward/stakeward/ledger"
	"github.com/stakeward/stakeward/stakeward"
	"github.com/stakeward/stakeward/vault"
)

// DefaultVaultAddress is the vault's holder identity in the asset books when
// the genesis file does not name one.
var DefaultVaultAddress = stakeward.BytesToAddress([]byte("stakeward-vault"))

// Genesis is the user supplied initial state of the vault and its asset books.
type Genesis struct {
	Admin   stakeward.Address  `json:"admin"`
	Vault   *stakeward.Address `json:"vault"`
	Pausers []Pauser           `json:"pausers"`

	Principal AssetBook `json:"principal"`
	Reward    AssetBook `json:"reward"`
}

// Pauser grants pause/resume to an address.
type Pauser struct {
	Address stakeward.Address `json:"address"`
	Pause   bool              `json:"pause"`
	Resume  bool              `json:"resume"`
}

// AssetBook is the initial balance book of one asset.
type AssetBook struct {
	Symbol   string    `json:"symbol"`
	Balances []Balance `json:"balances"`

	// VaultFloat is credited to the vault itself. For the reward book this
	// funds the first distributable inflow.
	VaultFloat *HexOrDecimal256 `json:"vaultFloat"`
}

// Balance is one account's initial balance.
type Balance struct {
	Address stakeward.Address `json:"address"`
	Balance *HexOrDecimal256  `json:"balance"`
}

// HexOrDecimal256 marshals big.Int as hex or decimal.
// Adopted from go-ethereum/common/math and implements json.Marshaler.
type HexOrDecimal256 math.HexOrDecimal256

// UnmarshalJSON implements the json.Unmarshaler interface.
func (i *HexOrDecimal256) UnmarshalJSON(input []byte) error {
	var hex string
	if err := json.Unmarshal(input, &hex); err != nil {
		return (*big.Int)(i).UnmarshalJSON(input)
	}
	bigint, ok := math.ParseBig256(hex)
	if !ok {
		return fmt.Errorf("invalid hex or decimal integer %q", hex)
	}
	*i = HexOrDecimal256(*bigint)
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (i *HexOrDecimal256) MarshalJSON() ([]byte, error) {
	return (*math.HexOrDecimal256)(i).MarshalText()
}

// Load parses a genesis JSON document.
func Load(r io.Reader) (*Genesis, error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	var gene Genesis
	if err := decoder.Decode(&gene); err != nil {
		return nil, errors.Wrap(err, "parse genesis")
	}
	if gene.Admin.IsZero() {
		return nil, errors.New("genesis: admin must not be null")
	}
	return &gene, nil
}

// Build materializes the genesis into asset books and a vault.
func (g *Genesis) Build() (*vault.Vault, *ledger.MemAsset, *ledger.MemAsset, error) {
	vaultAddr := DefaultVaultAddress
	if g.Vault != nil {
		vaultAddr = *g.Vault
	}

	if g.Principal.VaultFloat != nil && (*big.Int)(g.Principal.VaultFloat).Sign() != 0 {
		// Principal held by the vault itself belongs to no account and would
		// skew the per-share accounting.
		return nil, nil, nil, errors.New("principal: vaultFloat must be zero")
	}
	principal, err := g.Principal.build("PRN", vaultAddr)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "principal")
	}
	reward, err := g.Reward.build("RWD", vaultAddr)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "reward")
	}

	auth := authority.NewAllowlist()
	for _, p := range g.Pausers {
		if p.Pause {
			auth.Add(p.Address, stakeward.ActionPause)
		}
		if p.Resume {
			auth.Add(p.Address, stakeward.ActionResume)
		}
	}

	return vault.New(principal, reward, auth, g.Admin), principal, reward, nil
}

func (b *AssetBook) build(defaultSymbol string, vaultAddr stakeward.Address) (*ledger.MemAsset, error) {
	symbol := b.Symbol
	if symbol == "" {
		symbol = defaultSymbol
	}
	book := ledger.NewMemAsset(symbol, vaultAddr)
	for _, bal := range b.Balances {
		if bal.Balance == nil {
			return nil, errors.Errorf("missing balance of %v", bal.Address)
		}
		if err := book.Mint(bal.Address, (*big.Int)(bal.Balance)); err != nil {
			return nil, err
		}
	}
	if b.VaultFloat != nil {
		if err := book.Mint(vaultAddr, (*big.Int)(b.VaultFloat)); err != nil {
			return nil, err
		}
	}
	return book, nil
}
