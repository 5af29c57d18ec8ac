// Package kraken 定义 Kraken REST API 的操作表和客户端构造函数。
// 端点名与 https://docs.kraken.com/rest/ 保持一致。
package kraken

import (
	"github.com/betbot/exrest/rest/client"
	"github.com/betbot/exrest/rest/types"
)

// 公共操作（Market Data）
const (
	Time         client.PublicOp = "time"
	SystemStatus client.PublicOp = "system_status"
	Assets       client.PublicOp = "assets"
	AssetPairs   client.PublicOp = "asset_pairs"
	Ticker       client.PublicOp = "ticker"
	OHLC         client.PublicOp = "ohlc"
	Depth        client.PublicOp = "depth"
	Trades       client.PublicOp = "trades"
	Spread       client.PublicOp = "spread"
)

// 私有操作（User Data / Trading / Funding）
const (
	Balance            client.PrivateOp = "balance"
	TradeBalance       client.PrivateOp = "trade_balance"
	OpenOrders         client.PrivateOp = "open_orders"
	ClosedOrders       client.PrivateOp = "closed_orders"
	QueryOrders        client.PrivateOp = "query_orders"
	TradesHistory      client.PrivateOp = "trades_history"
	QueryTrades        client.PrivateOp = "query_trades"
	OpenPositions      client.PrivateOp = "open_positions"
	Ledgers            client.PrivateOp = "ledgers"
	QueryLedgers       client.PrivateOp = "query_ledgers"
	TradeVolume        client.PrivateOp = "trade_volume"
	AddExport          client.PrivateOp = "add_export"
	ExportStatus       client.PrivateOp = "export_status"
	RetrieveExport     client.PrivateOp = "retrieve_export"
	RemoveExport       client.PrivateOp = "remove_export"
	AddOrder           client.PrivateOp = "add_order"
	CancelOrder        client.PrivateOp = "cancel_order"
	CancelAll          client.PrivateOp = "cancel_all"
	CancelAllAfter     client.PrivateOp = "cancel_all_after"
	DepositMethods     client.PrivateOp = "deposit_methods"
	DepositAddresses   client.PrivateOp = "deposit_addresses"
	DepositStatus      client.PrivateOp = "deposit_status"
	WithdrawInfo       client.PrivateOp = "withdraw_info"
	Withdraw           client.PrivateOp = "withdraw"
	WithdrawStatus     client.PrivateOp = "withdraw_status"
	WithdrawCancel     client.PrivateOp = "withdraw_cancel"
	WalletTransfer     client.PrivateOp = "wallet_transfer"
	GetWebsocketsToken client.PrivateOp = "get_websockets_token"
)

// Exchange Kraken 交易所定义
var Exchange = client.NewExchange("kraken", types.DefaultApiParams(),
	map[client.PublicOp]client.Route{
		Time:         {Endpoint: "Time", Nullary: true},
		SystemStatus: {Endpoint: "SystemStatus", Nullary: true},
		Assets:       {Endpoint: "Assets"},
		AssetPairs:   {Endpoint: "AssetPairs"},
		Ticker:       {Endpoint: "Ticker"},
		OHLC:         {Endpoint: "OHLC"},
		Depth:        {Endpoint: "Depth"},
		Trades:       {Endpoint: "Trades"},
		Spread:       {Endpoint: "Spread"},
	},
	map[client.PrivateOp]client.Route{
		Balance:            {Endpoint: "Balance", Nullary: true},
		TradeBalance:       {Endpoint: "TradeBalance"},
		OpenOrders:         {Endpoint: "OpenOrders"},
		ClosedOrders:       {Endpoint: "ClosedOrders"},
		QueryOrders:        {Endpoint: "QueryOrders"},
		TradesHistory:      {Endpoint: "TradesHistory"},
		QueryTrades:        {Endpoint: "QueryTrades"},
		OpenPositions:      {Endpoint: "OpenPositions"},
		Ledgers:            {Endpoint: "Ledgers"},
		QueryLedgers:       {Endpoint: "QueryLedgers"},
		TradeVolume:        {Endpoint: "TradeVolume"},
		AddExport:          {Endpoint: "AddExport"},
		ExportStatus:       {Endpoint: "ExportStatus"},
		RetrieveExport:     {Endpoint: "RetrieveExport"},
		RemoveExport:       {Endpoint: "RemoveExport"},
		AddOrder:           {Endpoint: "AddOrder"},
		CancelOrder:        {Endpoint: "CancelOrder"},
		CancelAll:          {Endpoint: "CancelAll"},
		CancelAllAfter:     {Endpoint: "CancelAllOrdersAfter"},
		DepositMethods:     {Endpoint: "DepositMethods"},
		DepositAddresses:   {Endpoint: "DepositAddresses"},
		DepositStatus:      {Endpoint: "DepositStatus"},
		WithdrawInfo:       {Endpoint: "WithdrawInfo"},
		Withdraw:           {Endpoint: "Withdraw"},
		WithdrawStatus:     {Endpoint: "WithdrawStatus"},
		WithdrawCancel:     {Endpoint: "WithdrawCancel"},
		WalletTransfer:     {Endpoint: "WalletTransfer"},
		GetWebsocketsToken: {Endpoint: "GetWebsocketsToken"},
	},
)

// NewPublicClient 创建 Kraken 公共客户端
func NewPublicClient(opts ...client.Option) (*client.PublicClient, error) {
	return client.NewPublicClient(Exchange, opts...)
}

// NewPrivateClient 创建 Kraken 私有客户端
func NewPrivateClient(creds *types.ApiCredentials, opts ...client.Option) (*client.PrivateClient, error) {
	return client.NewPrivateClient(Exchange, creds, opts...)
}
