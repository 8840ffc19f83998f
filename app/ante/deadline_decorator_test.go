package ante_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	protov2 "google.golang.org/protobuf/proto"

	"github.com/meridian-chain/meridian/app/ante"
	routertypes "github.com/meridian-chain/meridian/x/router/types"
)

type stubTx struct {
	msgs []sdk.Msg
}

func (t stubTx) GetMsgs() []sdk.Msg                    { return t.msgs }
func (t stubTx) GetMsgsV2() ([]protov2.Message, error) { return nil, nil }

func passThrough(ctx sdk.Context, _ sdk.Tx, _ bool) (sdk.Context, error) {
	return ctx, nil
}

func TestDeadlineDecorator(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	ctx := sdk.Context{}.WithBlockTime(now)
	dd := ante.NewDeadlineDecorator()

	swap := func(deadline int64) *routertypes.MsgSwapExactTokensForTokens {
		return &routertypes.MsgSwapExactTokensForTokens{
			AmountIn:     math.NewInt(1000),
			AmountOutMin: math.ZeroInt(),
			Path:         []string{"uatom", "umrd"},
			Deadline:     deadline,
		}
	}

	tests := []struct {
		name    string
		tx      sdk.Tx
		wantErr bool
	}{
		{"future deadline", stubTx{msgs: []sdk.Msg{swap(now.Unix() + 60)}}, false},
		{"no deadline", stubTx{msgs: []sdk.Msg{swap(0)}}, false},
		{"expired deadline", stubTx{msgs: []sdk.Msg{swap(now.Unix() - 1)}}, true},
		{"expired cross-chain route", stubTx{msgs: []sdk.Msg{&routertypes.MsgExecuteCrossChainRoute{
			AmountIn: math.NewInt(1000),
			Deadline: now.Unix() - 1,
		}}}, true},
		{"non-router msg ignored", stubTx{msgs: []sdk.Msg{&routertypes.MsgRefundRoute{RouteId: 1}}}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dd.AnteHandle(ctx, tc.tx, false, passThrough)
			if tc.wantErr {
				require.ErrorIs(t, err, routertypes.ErrDeadlineExpired)
				return
			}
			require.NoError(t, err)
		})
	}
}
