package types

import "fmt"

// 默认 API 参数（Kraken 生产环境）
const (
	DefaultBaseURL = "https://api.kraken.com"
	DefaultVersion = "0"
)

// Visibility 端点可见性
type Visibility int

const (
	VisibilityPublic  Visibility = iota // 公共端点，无需认证
	VisibilityPrivate                   // 私有端点，需要 API 凭证签名
)

// String 返回路径前缀
func (v Visibility) String() string {
	if v == VisibilityPrivate {
		return "private"
	}
	return "public"
}

// ApiParams API 参数（非机密配置，客户端内所有请求只读共享）
type ApiParams struct {
	BaseURL string
	Version string
}

// DefaultApiParams 返回默认 API 参数
func DefaultApiParams() ApiParams {
	return ApiParams{
		BaseURL: DefaultBaseURL,
		Version: DefaultVersion,
	}
}

// ApiCredentials API 凭证
// 构造后不可变；私有请求通过指针共享，不复制密钥。
type ApiCredentials struct {
	apiKey    string
	apiSecret string // base64 编码
}

// NewApiCredentials 创建 API 凭证
func NewApiCredentials(apiKey, apiSecret string) *ApiCredentials {
	return &ApiCredentials{
		apiKey:    apiKey,
		apiSecret: apiSecret,
	}
}

// APIKey 返回 API key
func (c *ApiCredentials) APIKey() string {
	return c.apiKey
}

// APISecret 返回 base64 编码的签名密钥
func (c *ApiCredentials) APISecret() string {
	return c.apiSecret
}

// String 隐藏密钥，避免凭证被打印到日志
func (c *ApiCredentials) String() string {
	if c == nil {
		return "ApiCredentials(nil)"
	}
	return fmt.Sprintf("ApiCredentials{APIKey: %s, APISecret: ***}", maskKey(c.apiKey))
}

// GoString 同 String，覆盖 %#v
func (c *ApiCredentials) GoString() string {
	return c.String()
}

func maskKey(key string) string {
	if len(key) <= 4 {
		return "***"
	}
	return key[:4] + "***"
}
