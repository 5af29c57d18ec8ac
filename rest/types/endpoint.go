package types

// Endpoint 端点描述符
// Public 端点不携带凭证；Private 端点在构造时绑定凭证，而不是在发送时。
type Endpoint struct {
	Visibility  Visibility
	Name        string
	Credentials *ApiCredentials
}

// PublicEndpoint 创建公共端点
func PublicEndpoint(name string) Endpoint {
	return Endpoint{
		Visibility: VisibilityPublic,
		Name:       name,
	}
}

// PrivateEndpoint 创建私有端点
func PrivateEndpoint(name string, creds *ApiCredentials) Endpoint {
	return Endpoint{
		Visibility:  VisibilityPrivate,
		Name:        name,
		Credentials: creds,
	}
}

// IsPrivate 是否为私有端点
func (e Endpoint) IsPrivate() bool {
	return e.Visibility == VisibilityPrivate
}

// Path 返回规范路径 "public/<name>" 或 "private/<name>"
func (e Endpoint) Path() string {
	return e.Visibility.String() + "/" + e.Name
}

// String 同 Path
func (e Endpoint) String() string {
	return e.Path()
}
