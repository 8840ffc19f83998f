package ante

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	routertypes "github.com/meridian-chain/meridian/x/router/types"
)

// DeadlineDecorator rejects router transactions whose deadline has already
// passed. The keeper repeats the check at execution time; failing here keeps
// stale swaps out of blocks entirely.
type DeadlineDecorator struct{}

func NewDeadlineDecorator() DeadlineDecorator {
	return DeadlineDecorator{}
}

// AnteHandle implements sdk.AnteDecorator
func (dd DeadlineDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (sdk.Context, error) {
	blockTime := ctx.BlockTime().Unix()

	for _, msg := range tx.GetMsgs() {
		var deadline int64
		switch m := msg.(type) {
		case *routertypes.MsgSwapExactTokensForTokens:
			deadline = m.Deadline
		case *routertypes.MsgExecuteCrossChainRoute:
			deadline = m.Deadline
		case *routertypes.MsgExecuteMultiPathRoute:
			deadline = m.Deadline
		default:
			continue
		}

		if deadline > 0 && blockTime > deadline {
			return ctx, routertypes.ErrDeadlineExpired.Wrapf("deadline %d, block time %d", deadline, blockTime)
		}
	}

	return next(ctx, tx, simulate)
}
