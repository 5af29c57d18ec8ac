package signing

import (
	"errors"
	"fmt"

	"golang.org/x/net/http/httpguts"

	"github.com/betbot/exrest/rest/types"
)

// ErrInvalidHeaderValue 认证头包含非法字符
var ErrInvalidHeaderValue = errors.New("invalid header value")

// L2HeaderArgs 私有请求签名参数
type L2HeaderArgs struct {
	RequestPath string // 完整请求路径，例如 /0/private/Balance
	Body        string // 实际发送的请求体
	Nonce       uint64
}

// CreateAuthHeaders 创建私有请求认证头（API-Key / API-Sign）
func CreateAuthHeaders(creds *types.ApiCredentials, args *L2HeaderArgs) (*types.AuthHeader, error) {
	if creds == nil {
		return nil, &types.ConfigError{Op: "create auth headers", Err: errors.New("missing api credentials")}
	}

	sig, err := BuildSignature(args.RequestPath, args.Body, FormatNonce(args.Nonce), creds.APISecret())
	if err != nil {
		return nil, err
	}

	if err := validateHeaderValue(types.HeaderAPIKey, creds.APIKey()); err != nil {
		return nil, err
	}
	if err := validateHeaderValue(types.HeaderAPISign, sig); err != nil {
		return nil, err
	}

	return &types.AuthHeader{
		APIKey:  creds.APIKey(),
		APISign: sig,
	}, nil
}

// 不截断、不转义：非法值直接报错
func validateHeaderValue(name, value string) error {
	if !httpguts.ValidHeaderFieldValue(value) {
		return &types.ConfigError{
			Op:  "create auth headers",
			Err: fmt.Errorf("%w: %s", ErrInvalidHeaderValue, name),
		}
	}
	return nil
}
