package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	routertypes "github.com/meridian-chain/meridian/x/router/types"
)

// MockRelayAdapter is a scriptable relay for router tests. It quotes a
// fixed fee, hands out sequential handles, and reports whatever delivery
// status the test sets per handle.
type MockRelayAdapter struct {
	Fee          sdk.Coin
	FailDispatch bool
	Dispatched   [][]byte
	Recipients   []string
	Deliveries   map[string]routertypes.DeliveryStatus
	seq          uint64
}

var _ routertypes.RelayAdapter = (*MockRelayAdapter)(nil)

// NewMockRelayAdapter creates a mock relay quoting the given flat fee
func NewMockRelayAdapter(fee sdk.Coin) *MockRelayAdapter {
	return &MockRelayAdapter{
		Fee:        fee,
		Deliveries: make(map[string]routertypes.DeliveryStatus),
	}
}

// EstimateFee returns the scripted flat fee
func (m *MockRelayAdapter) EstimateFee(ctx sdk.Context, payload []byte) (sdk.Coin, error) {
	return m.Fee, nil
}

// Dispatch records the payload and returns a sequential handle, or rejects
// when scripted to fail
func (m *MockRelayAdapter) Dispatch(ctx sdk.Context, recipient string, payload []byte) (string, error) {
	if m.FailDispatch {
		return "", fmt.Errorf("relay rejected message")
	}
	m.seq++
	m.Dispatched = append(m.Dispatched, payload)
	m.Recipients = append(m.Recipients, recipient)
	return fmt.Sprintf("mock/%d", m.seq), nil
}

// QueryDelivery reports the scripted status for a handle, pending by default
func (m *MockRelayAdapter) QueryDelivery(ctx sdk.Context, handle string) (routertypes.DeliveryStatus, error) {
	return m.Deliveries[handle], nil
}

// LastHandle returns the handle of the most recent dispatch
func (m *MockRelayAdapter) LastHandle() string {
	return fmt.Sprintf("mock/%d", m.seq)
}
