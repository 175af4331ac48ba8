// Copyright (c) 2025 The Stakeward developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakeward

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAddress(t *testing.T) {
	addr := BytesToAddress([]byte("acc1"))

	parsed, err := ParseAddress(addr.String())
	assert.Nil(t, err)
	assert.Equal(t, addr, parsed)

	parsed, err = ParseAddress(addr.String()[2:])
	assert.Nil(t, err)
	assert.Equal(t, addr, parsed)

	_, err = ParseAddress("0x123")
	assert.NotNil(t, err)

	_, err = ParseAddress("zx0123456789012345678901234567890123456789")
	assert.NotNil(t, err)
}

func TestAddressJSON(t *testing.T) {
	addr := BytesToAddress([]byte("acc1"))

	data, err := json.Marshal(addr)
	assert.Nil(t, err)
	assert.Equal(t, `"`+addr.String()+`"`, string(data))

	var decoded Address
	assert.Nil(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, addr, decoded)

	assert.NotNil(t, json.Unmarshal([]byte(`123`), &decoded))
}

func TestAddressIsZero(t *testing.T) {
	assert.True(t, Address{}.IsZero())
	assert.False(t, BytesToAddress([]byte("a")).IsZero())
}
