package client

import (
	"sort"

	"github.com/betbot/exrest/rest/types"
)

// PublicOp 公共操作名（例如 "ticker"）
type PublicOp string

// PrivateOp 私有操作名（例如 "balance"）
// 与 PublicOp 是不同类型，私有操作无法传给只有公共能力的客户端。
type PrivateOp string

// Route 操作到端点的映射
type Route struct {
	Endpoint string // 交易所文档中的端点名，例如 "TradeBalance"
	Nullary  bool   // 无参数操作
}

// Exchange 交易所定义：默认 API 参数 + 操作表
// 操作表是数据而不是推断，必须与交易所文档中的端点名保持一致。
type Exchange struct {
	Name     string
	Defaults types.ApiParams
	public   map[PublicOp]Route
	private  map[PrivateOp]Route
}

// NewExchange 创建交易所定义
func NewExchange(name string, defaults types.ApiParams, public map[PublicOp]Route, private map[PrivateOp]Route) *Exchange {
	e := &Exchange{
		Name:     name,
		Defaults: defaults,
		public:   make(map[PublicOp]Route, len(public)),
		private:  make(map[PrivateOp]Route, len(private)),
	}
	for op, r := range public {
		e.public[op] = r
	}
	for op, r := range private {
		e.private[op] = r
	}
	return e
}

// PublicRoute 查找公共操作
func (e *Exchange) PublicRoute(op PublicOp) (Route, bool) {
	r, ok := e.public[op]
	return r, ok
}

// PrivateRoute 查找私有操作
func (e *Exchange) PrivateRoute(op PrivateOp) (Route, bool) {
	r, ok := e.private[op]
	return r, ok
}

// PublicOps 返回所有公共操作（按名称排序）
func (e *Exchange) PublicOps() []PublicOp {
	ops := make([]PublicOp, 0, len(e.public))
	for op := range e.public {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}

// PrivateOps 返回所有私有操作（按名称排序）
func (e *Exchange) PrivateOps() []PrivateOp {
	ops := make([]PrivateOp, 0, len(e.private))
	for op := range e.private {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}
