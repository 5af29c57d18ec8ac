package client

import "errors"

var (
	// ErrUnknownOperation 操作不在交易所操作表中
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrUnexpectedParams 无参数操作传入了参数
	ErrUnexpectedParams = errors.New("operation takes no parameters")
)
