package types

// 认证头名称
const (
	HeaderAPIKey  = "API-Key"
	HeaderAPISign = "API-Sign"
)

// AuthHeader 私有请求认证头
type AuthHeader struct {
	APIKey  string `json:"API-Key"`
	APISign string `json:"API-Sign"`
}

// Map 转换为 header map
func (h *AuthHeader) Map() map[string]string {
	return map[string]string{
		HeaderAPIKey:  h.APIKey,
		HeaderAPISign: h.APISign,
	}
}
