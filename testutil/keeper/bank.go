package keeper

import (
	"context"
	"fmt"
	"sync"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Transfer records one SendCoins call against the mock bank.
type Transfer struct {
	From   string
	To     string
	Amount sdk.Coins
}

// MockBankKeeper is an in-memory bank for keeper tests. Accounts must be
// funded before they can send; an underfunded transfer fails the way the
// real bank module would.
type MockBankKeeper struct {
	mu        sync.Mutex
	balances  map[string]sdk.Coins
	Transfers []Transfer
}

// NewMockBankKeeper creates an empty mock bank
func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{
		balances: make(map[string]sdk.Coins),
	}
}

// FundAccount credits coins to an account
func (m *MockBankKeeper) FundAccount(addr sdk.AccAddress, coins sdk.Coins) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[addr.String()] = m.balances[addr.String()].Add(coins...)
}

// Balance returns an account's balance in one denom
func (m *MockBankKeeper) Balance(addr sdk.AccAddress, denom string) math.Int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balances[addr.String()].AmountOf(denom)
}

// SendCoins moves coins between accounts, failing on insufficient funds
func (m *MockBankKeeper) SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	from := fromAddr.String()
	balance := m.balances[from]
	if !balance.IsAllGTE(amt) {
		return fmt.Errorf("insufficient funds: %s has %s, needs %s", from, balance, amt)
	}

	m.balances[from] = balance.Sub(amt...)
	m.balances[toAddr.String()] = m.balances[toAddr.String()].Add(amt...)
	m.Transfers = append(m.Transfers, Transfer{From: from, To: toAddr.String(), Amount: amt})
	return nil
}
