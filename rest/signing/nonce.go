package signing

import (
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// NonceSource 单调递增的 nonce 生成器
// nonce 取发送时刻的 Unix 毫秒时间；同一毫秒内或时钟回拨时取 last+1，
// 保证同一组凭证下服务端看到的 nonce 严格递增。
type NonceSource struct {
	last atomic.Uint64
	now  func() time.Time
}

// NewNonceSource 创建 nonce 生成器，now 为 nil 时使用 time.Now
func NewNonceSource(now func() time.Time) *NonceSource {
	if now == nil {
		now = time.Now
	}
	return &NonceSource{now: now}
}

// Next 返回下一个 nonce
func (s *NonceSource) Next() uint64 {
	for {
		last := s.last.Load()
		next := uint64(s.now().UnixMilli())
		if next <= last {
			next = last + 1
		}
		if s.last.CompareAndSwap(last, next) {
			return next
		}
	}
}

// Last 返回最近一次生成的 nonce（未生成过为 0）
func (s *NonceSource) Last() uint64 {
	return s.last.Load()
}

// FormatNonce nonce 转字符串
func FormatNonce(nonce uint64) string {
	return strconv.FormatUint(nonce, 10)
}

// 同一个 API key 的所有私有客户端共享一个 nonce 生成器
var keyedSources sync.Map // map[string]*NonceSource

// NonceSourceFor 返回 apiKey 对应的共享 nonce 生成器
func NonceSourceFor(apiKey string) *NonceSource {
	if s, ok := keyedSources.Load(apiKey); ok {
		return s.(*NonceSource)
	}
	s, _ := keyedSources.LoadOrStore(apiKey, NewNonceSource(nil))
	return s.(*NonceSource)
}
