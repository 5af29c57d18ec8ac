package kraken

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betbot/exrest/rest/client"
	"github.com/betbot/exrest/rest/types"
)

func TestPublicRoutes(t *testing.T) {
	tests := []struct {
		op       client.PublicOp
		endpoint string
		nullary  bool
	}{
		{Time, "Time", true},
		{SystemStatus, "SystemStatus", true},
		{Assets, "Assets", false},
		{AssetPairs, "AssetPairs", false},
		{Ticker, "Ticker", false},
		{OHLC, "OHLC", false},
		{Depth, "Depth", false},
		{Trades, "Trades", false},
		{Spread, "Spread", false},
	}

	assert.Len(t, Exchange.PublicOps(), len(tests))
	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			r, ok := Exchange.PublicRoute(tt.op)
			require.True(t, ok)
			assert.Equal(t, tt.endpoint, r.Endpoint)
			assert.Equal(t, tt.nullary, r.Nullary)
		})
	}
}

func TestPrivateRoutes(t *testing.T) {
	tests := map[client.PrivateOp]string{
		TradeBalance:       "TradeBalance",
		OpenOrders:         "OpenOrders",
		ClosedOrders:       "ClosedOrders",
		QueryOrders:        "QueryOrders",
		TradesHistory:      "TradesHistory",
		QueryTrades:        "QueryTrades",
		OpenPositions:      "OpenPositions",
		Ledgers:            "Ledgers",
		QueryLedgers:       "QueryLedgers",
		TradeVolume:        "TradeVolume",
		AddExport:          "AddExport",
		ExportStatus:       "ExportStatus",
		RetrieveExport:     "RetrieveExport",
		RemoveExport:       "RemoveExport",
		AddOrder:           "AddOrder",
		CancelOrder:        "CancelOrder",
		CancelAll:          "CancelAll",
		CancelAllAfter:     "CancelAllOrdersAfter",
		DepositMethods:     "DepositMethods",
		DepositAddresses:   "DepositAddresses",
		DepositStatus:      "DepositStatus",
		WithdrawInfo:       "WithdrawInfo",
		Withdraw:           "Withdraw",
		WithdrawStatus:     "WithdrawStatus",
		WithdrawCancel:     "WithdrawCancel",
		WalletTransfer:     "WalletTransfer",
		GetWebsocketsToken: "GetWebsocketsToken",
	}

	// 27 个带参数操作 + Balance
	assert.Len(t, Exchange.PrivateOps(), len(tests)+1)

	r, ok := Exchange.PrivateRoute(Balance)
	require.True(t, ok)
	assert.Equal(t, "Balance", r.Endpoint)
	assert.True(t, r.Nullary)

	for op, endpoint := range tests {
		r, ok := Exchange.PrivateRoute(op)
		require.True(t, ok, op)
		assert.Equal(t, endpoint, r.Endpoint, op)
		assert.False(t, r.Nullary, op)
	}
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, "kraken", Exchange.Name)
	assert.Equal(t, types.DefaultApiParams(), Exchange.Defaults)
}
