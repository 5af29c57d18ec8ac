package client

import (
	"context"
	"fmt"

	sdkhttp "github.com/betbot/exrest/pkg/sdk/http"
	"github.com/betbot/exrest/rest/signing"
	"github.com/betbot/exrest/rest/types"
)

// PublicAPI 公共能力：公共客户端和私有客户端都实现
type PublicAPI interface {
	Exchange() *Exchange
	Params() types.ApiParams
	Public(ctx context.Context, op PublicOp, params string) (string, error)
	PublicRequest(ctx context.Context, endpoint string, params string) (string, error)
}

// PrivateAPI 私有能力：只有持有凭证的客户端实现
type PrivateAPI interface {
	PublicAPI
	Private(ctx context.Context, op PrivateOp, params string) (string, error)
	PrivateRequest(ctx context.Context, endpoint string, params string) (string, error)
}

var (
	_ PublicAPI  = (*PublicClient)(nil)
	_ PrivateAPI = (*PrivateClient)(nil)
)

// base 公共能力的实现，两种客户端共用
type base struct {
	exchange *Exchange
	req      *requester
	opts     *options
}

// PublicClient 公共客户端，只能调用公共端点
type PublicClient struct {
	base
}

// NewPublicClient 创建公共客户端
// 未指定 WithApiParams 时使用交易所默认参数。
func NewPublicClient(exchange *Exchange, opts ...Option) (*PublicClient, error) {
	o := buildOptions(exchange, opts)

	transport, err := sdkhttp.NewClient(o.http)
	if err != nil {
		return nil, fmt.Errorf("创建 HTTP 客户端失败: %w", err)
	}

	return &PublicClient{
		base: base{
			exchange: exchange,
			req: &requester{
				transport: transport,
				params:    *o.params,
				logger:    o.logger,
			},
			opts: o,
		},
	}, nil
}

// Exchange 返回交易所定义
func (c *base) Exchange() *Exchange {
	return c.exchange
}

// Params 返回 API 参数
func (c *base) Params() types.ApiParams {
	return c.req.params
}

// Public 调用公共操作
func (c *base) Public(ctx context.Context, op PublicOp, params string) (string, error) {
	route, err := resolve(c.exchange, c.exchange.public, op, params)
	if err != nil {
		return "", err
	}
	return c.PublicRequest(ctx, route.Endpoint, params)
}

// PublicRequest 按端点名直接调用公共端点（GET public/<endpoint>）
func (c *base) PublicRequest(ctx context.Context, endpoint string, params string) (string, error) {
	return c.req.do(ctx, types.PublicEndpoint(endpoint), params, nil)
}

// SetCredentials 提供 API 凭证，升级为私有客户端
// transport 和 API 参数原样沿用；升级不可逆，没有降级操作。
func (c *PublicClient) SetCredentials(creds *types.ApiCredentials) *PrivateClient {
	nonces := c.opts.nonces
	if nonces == nil {
		key := ""
		if creds != nil {
			key = creds.APIKey()
		}
		nonces = signing.NonceSourceFor(key)
	}
	return &PrivateClient{
		base:   c.base,
		creds:  creds,
		nonces: nonces,
	}
}

// PrivateClient 私有客户端：公共操作 + 需要凭证的私有操作
type PrivateClient struct {
	base
	creds  *types.ApiCredentials
	nonces *signing.NonceSource
}

// NewPrivateClient 直接创建私有客户端
func NewPrivateClient(exchange *Exchange, creds *types.ApiCredentials, opts ...Option) (*PrivateClient, error) {
	pub, err := NewPublicClient(exchange, opts...)
	if err != nil {
		return nil, err
	}
	return pub.SetCredentials(creds), nil
}

// Private 调用私有操作
func (c *PrivateClient) Private(ctx context.Context, op PrivateOp, params string) (string, error) {
	route, err := resolve(c.exchange, c.exchange.private, op, params)
	if err != nil {
		return "", err
	}
	return c.PrivateRequest(ctx, route.Endpoint, params)
}

// PrivateRequest 按端点名直接调用私有端点（POST private/<endpoint>，签名）
func (c *PrivateClient) PrivateRequest(ctx context.Context, endpoint string, params string) (string, error) {
	return c.req.do(ctx, types.PrivateEndpoint(endpoint, c.creds), params, c.nonces)
}

// resolve 从操作表中查找操作
func resolve[Op ~string](exchange *Exchange, routes map[Op]Route, op Op, params string) (Route, error) {
	route, ok := routes[op]
	if !ok {
		return Route{}, fmt.Errorf("%w: %s/%s", ErrUnknownOperation, exchange.Name, op)
	}
	if route.Nullary && params != "" {
		return Route{}, fmt.Errorf("%w: %s/%s", ErrUnexpectedParams, exchange.Name, op)
	}
	return route, nil
}
