package client

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/betbot/exrest/pkg/logger"
	sdkhttp "github.com/betbot/exrest/pkg/sdk/http"
	"github.com/betbot/exrest/rest/signing"
	"github.com/betbot/exrest/rest/types"
)

// Option 客户端选项
type Option func(*options)

type options struct {
	params *types.ApiParams
	http   sdkhttp.Options
	logger *logrus.Entry
	nonces *signing.NonceSource
}

// WithApiParams 覆盖交易所默认的 base URL / version
func WithApiParams(p types.ApiParams) Option {
	return func(o *options) {
		o.params = &p
	}
}

// WithHTTPClient 使用自定义 http.Client（忽略 WithTimeout / WithProxy）
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.http.HTTPClient = hc
	}
}

// WithTimeout 单次请求超时
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.http.Timeout = d
	}
}

// WithProxy HTTP 代理地址
func WithProxy(proxy string) Option {
	return func(o *options) {
		o.http.Proxy = proxy
	}
}

// WithLogger 日志输出（只记录请求元信息，不记录凭证和签名）
func WithLogger(l *logrus.Entry) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithNonceSource 指定 nonce 生成器（默认按 API key 共享）
// 仅对私有客户端生效。
func WithNonceSource(s *signing.NonceSource) Option {
	return func(o *options) {
		o.nonces = s
	}
}

func buildOptions(exchange *Exchange, opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.params == nil {
		p := exchange.Defaults
		o.params = &p
	}
	if o.logger == nil {
		o.logger = logger.Component("rest").WithField("exchange", exchange.Name)
	}
	o.http.Logger = o.logger
	return o
}
