package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	dexkeeper "github.com/meridian-chain/meridian/x/dex/keeper"
	dextypes "github.com/meridian-chain/meridian/x/dex/types"
	feegovkeeper "github.com/meridian-chain/meridian/x/feegov/keeper"
	feegovtypes "github.com/meridian-chain/meridian/x/feegov/types"
	oraclekeeper "github.com/meridian-chain/meridian/x/oracle/keeper"
	oracletypes "github.com/meridian-chain/meridian/x/oracle/types"
	routerkeeper "github.com/meridian-chain/meridian/x/router/keeper"
	routertypes "github.com/meridian-chain/meridian/x/router/types"
)

// LocalChainID names the chain in router fixtures.
const LocalChainID = "meridian-1"

// GenesisTime anchors fixture block time so tests are deterministic.
var GenesisTime = time.Unix(1_700_000_000, 0).UTC()

// TestKeepers bundles all module keepers over one in-memory store.
type TestKeepers struct {
	Ctx       sdk.Context
	Bank      *MockBankKeeper
	Dex       dexkeeper.Keeper
	Oracle    oraclekeeper.Keeper
	FeeGov    feegovkeeper.Keeper
	Router    routerkeeper.Keeper
	Authority string
}

// NewTestKeepers wires the dex, oracle, feegov, and router keepers the way
// the app does, backed by a memory db and the mock bank. Each module starts
// from its default genesis.
func NewTestKeepers(t testing.TB) *TestKeepers {
	dexKey := storetypes.NewKVStoreKey(dextypes.StoreKey)
	oracleKey := storetypes.NewKVStoreKey(oracletypes.StoreKey)
	feegovKey := storetypes.NewKVStoreKey(feegovtypes.StoreKey)
	routerKey := storetypes.NewKVStoreKey(routertypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(dexKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(oracleKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(feegovKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(routerKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger()).
		WithBlockHeight(1).
		WithBlockTime(GenesisTime)

	authority := authtypes.NewModuleAddress("gov").String()
	bank := NewMockBankKeeper()

	oracleK := oraclekeeper.NewKeeper(oracleKey)
	feegovK := feegovkeeper.NewKeeper(feegovKey, bank, authority)
	dexK := dexkeeper.NewKeeper(dexKey, bank, feegovK, oracleK, authority)
	routerK := routerkeeper.NewKeeper(routerKey, bank, dexK, feegovK, LocalChainID, authority)

	require.NoError(t, oracleK.InitGenesis(ctx, *oracletypes.DefaultGenesis()))
	require.NoError(t, feegovK.InitGenesis(ctx, *feegovtypes.DefaultGenesis()))
	require.NoError(t, dexK.InitGenesis(ctx, *dextypes.DefaultGenesis()))
	require.NoError(t, routerK.InitGenesis(ctx, *routertypes.DefaultGenesis()))

	return &TestKeepers{
		Ctx:       ctx,
		Bank:      bank,
		Dex:       dexK,
		Oracle:    oracleK,
		FeeGov:    feegovK,
		Router:    routerK,
		Authority: authority,
	}
}

// FundedAccount creates a deterministic test account funded with coins
func (tk *TestKeepers) FundedAccount(seed byte, coins sdk.Coins) sdk.AccAddress {
	addr := sdk.AccAddress{seed, seed, seed, seed, seed, seed, seed, seed, seed, seed,
		seed, seed, seed, seed, seed, seed, seed, seed, seed, seed}
	tk.Bank.FundAccount(addr, coins)
	return addr
}
