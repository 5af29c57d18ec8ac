package types

import (
	"errors"
	"fmt"
)

// ConfigError 配置错误（致命，不可重试）
// 例如：secret 不是合法的 base64，或认证头包含非法字符。
type ConfigError struct {
	Op  string
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("配置错误 (%s): %v", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// TransportError 传输错误（DNS、连接拒绝、超时、TLS 等），是否重试由调用方决定
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s 请求失败: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsConfigError 判断是否为配置错误
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsTransportError 判断是否为传输错误
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
