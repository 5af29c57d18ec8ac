// Package deribit 定义 Deribit REST API（market data）的操作表。
package deribit

import (
	"github.com/betbot/exrest/rest/client"
	"github.com/betbot/exrest/rest/types"
)

// Deribit 默认 API 参数
const (
	DefaultBaseURL = "https://www.deribit.com/api"
	DefaultVersion = "v2"
)

// 公共操作，端点名与操作名相同
const (
	GetTime                          client.PublicOp = "get_time"
	GetCurrencies                    client.PublicOp = "get_currencies"
	GetIndexPriceNames               client.PublicOp = "get_index_price_names"
	Hello                            client.PublicOp = "hello"
	Test                             client.PublicOp = "test"
	GetAnnouncements                 client.PublicOp = "get_announcements"
	GetBookSummaryByCurrency         client.PublicOp = "get_book_summary_by_currency"
	GetBookSummaryByInstrument       client.PublicOp = "get_book_summary_by_instrument"
	GetContractSize                  client.PublicOp = "get_contract_size"
	GetFundingChartData              client.PublicOp = "get_funding_chart_data"
	GetFundingRateHistory            client.PublicOp = "get_funding_rate_history"
	GetFundingRateValue              client.PublicOp = "get_funding_rate_value"
	GetHistoricalVolatility          client.PublicOp = "get_historical_volatility"
	GetIndexPrice                    client.PublicOp = "get_index_price"
	GetInstrument                    client.PublicOp = "get_instrument"
	GetInstruments                   client.PublicOp = "get_instruments"
	GetLastSettlementsByCurrency     client.PublicOp = "get_last_settlements_by_currency"
	GetLastSettlementsByInstrument   client.PublicOp = "get_last_settlements_by_instrument"
	GetLastTradesByCurrency          client.PublicOp = "get_last_trades_by_currency"
	GetLastTradesByCurrencyAndTime   client.PublicOp = "get_last_trades_by_currency_and_time"
	GetLastTradesByInstrument        client.PublicOp = "get_last_trades_by_instrument"
	GetLastTradesByInstrumentAndTime client.PublicOp = "get_last_trades_by_instrument_and_time"
	GetMarkPriceHistory              client.PublicOp = "get_mark_price_history"
	GetOrderBook                     client.PublicOp = "get_order_book"
	GetTradeVolumes                  client.PublicOp = "get_trade_volumes"
	GetTradingviewChartData          client.PublicOp = "get_tradingview_chart_data"
	GetVolatilityIndexData           client.PublicOp = "get_volatility_index_data"
	Ticker                           client.PublicOp = "ticker"
)

var nullary = []client.PublicOp{
	GetTime,
	GetCurrencies,
	GetIndexPriceNames,
}

var unary = []client.PublicOp{
	Hello,
	Test,
	GetAnnouncements,
	GetBookSummaryByCurrency,
	GetBookSummaryByInstrument,
	GetContractSize,
	GetFundingChartData,
	GetFundingRateHistory,
	GetFundingRateValue,
	GetHistoricalVolatility,
	GetIndexPrice,
	GetInstrument,
	GetInstruments,
	GetLastSettlementsByCurrency,
	GetLastSettlementsByInstrument,
	GetLastTradesByCurrency,
	GetLastTradesByCurrencyAndTime,
	GetLastTradesByInstrument,
	GetLastTradesByInstrumentAndTime,
	GetMarkPriceHistory,
	GetOrderBook,
	GetTradeVolumes,
	GetTradingviewChartData,
	GetVolatilityIndexData,
	Ticker,
}

// DefaultApiParams Deribit 生产环境参数
func DefaultApiParams() types.ApiParams {
	return types.ApiParams{
		BaseURL: DefaultBaseURL,
		Version: DefaultVersion,
	}
}

// Exchange Deribit 交易所定义（暂无私有操作）
var Exchange = client.NewExchange("deribit", DefaultApiParams(), publicRoutes(), nil)

func publicRoutes() map[client.PublicOp]client.Route {
	routes := make(map[client.PublicOp]client.Route, len(nullary)+len(unary))
	for _, op := range nullary {
		routes[op] = client.Route{Endpoint: string(op), Nullary: true}
	}
	for _, op := range unary {
		routes[op] = client.Route{Endpoint: string(op)}
	}
	return routes
}

// NewPublicClient 创建 Deribit 公共客户端
func NewPublicClient(opts ...client.Option) (*client.PublicClient, error) {
	return client.NewPublicClient(Exchange, opts...)
}
