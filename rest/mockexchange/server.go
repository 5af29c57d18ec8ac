// Package mockexchange 提供进程内的 Kraken 风格交易所服务端，用于测试签名客户端。
// 私有请求会校验 API-Sign 签名和 nonce 严格递增，校验失败按交易所习惯返回错误 JSON。
package mockexchange

import (
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/betbot/exrest/rest/signing"
	"github.com/betbot/exrest/rest/types"
)

// Request 服务端收到的请求记录
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Body     string
	APIKey   string
	Nonce    uint64
	Verified bool
}

type canned struct {
	status int
	body   string
}

// Server 模拟交易所
type Server struct {
	engine *gin.Engine

	mu        sync.Mutex
	secrets   map[string]string // apiKey -> secret
	lastNonce map[string]uint64
	requests  []Request
	responses map[string]canned // "public/Time" -> 固定响应
}

// New 创建模拟交易所
func New() *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		engine:    gin.New(),
		secrets:   make(map[string]string),
		lastNonce: make(map[string]uint64),
		responses: make(map[string]canned),
	}
	s.engine.Use(gin.Recovery())
	s.engine.GET("/:version/public/:name", s.handlePublic)
	s.engine.POST("/:version/private/:name", s.handlePrivate)
	return s
}

// Handler 返回 http.Handler（用于 httptest.NewServer）
func (s *Server) Handler() http.Handler {
	return s.engine
}

// AddKey 注册 API 凭证
func (s *Server) AddKey(apiKey, secret string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.secrets[apiKey] = secret
}

// Respond 为端点设置固定响应，path 形如 "public/Time"
func (s *Server) Respond(path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[path] = canned{status: status, body: body}
}

// Requests 返回收到的全部请求
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Server) handlePublic(c *gin.Context) {
	name := c.Param("name")

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method:   c.Request.Method,
		Path:     c.Request.URL.Path,
		RawQuery: c.Request.URL.RawQuery,
	})
	resp, ok := s.responses["public/"+name]
	s.mu.Unlock()

	if ok {
		c.String(resp.status, resp.body)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"error": []string{},
		"result": gin.H{
			"endpoint": name,
			"query":    c.Request.URL.RawQuery,
		},
	})
}

func (s *Server) handlePrivate(c *gin.Context) {
	name := c.Param("name")

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": []string{"EGeneral:Invalid arguments"}})
		return
	}
	body := string(raw)
	apiKey := c.GetHeader(types.HeaderAPIKey)
	rec := Request{
		Method: c.Request.Method,
		Path:   c.Request.URL.Path,
		Body:   body,
		APIKey: apiKey,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	form, err := url.ParseQuery(body)
	if err != nil {
		s.requests = append(s.requests, rec)
		c.JSON(http.StatusOK, gin.H{"error": []string{"EGeneral:Invalid arguments"}})
		return
	}
	nonceStr := form.Get("nonce")
	nonce, err := strconv.ParseUint(nonceStr, 10, 64)
	if err != nil {
		s.requests = append(s.requests, rec)
		c.JSON(http.StatusOK, gin.H{"error": []string{"EAPI:Invalid nonce"}})
		return
	}
	rec.Nonce = nonce

	secret, ok := s.secrets[apiKey]
	if !ok {
		s.requests = append(s.requests, rec)
		c.JSON(http.StatusForbidden, gin.H{"error": []string{"EAPI:Invalid key"}})
		return
	}

	valid, err := signing.VerifySignature(c.Request.URL.Path, body, nonceStr, secret, c.GetHeader(types.HeaderAPISign))
	if err != nil || !valid {
		s.requests = append(s.requests, rec)
		c.JSON(http.StatusUnauthorized, gin.H{"error": []string{"EAPI:Invalid signature"}})
		return
	}
	rec.Verified = true
	s.requests = append(s.requests, rec)

	if nonce <= s.lastNonce[apiKey] {
		c.JSON(http.StatusOK, gin.H{"error": []string{"EAPI:Invalid nonce"}})
		return
	}
	s.lastNonce[apiKey] = nonce

	if resp, ok := s.responses["private/"+name]; ok {
		c.String(resp.status, resp.body)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"error": []string{},
		"result": gin.H{
			"endpoint": name,
			"params":   body,
		},
	})
}
