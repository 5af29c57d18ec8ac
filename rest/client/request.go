package client

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	sdkhttp "github.com/betbot/exrest/pkg/sdk/http"
	"github.com/betbot/exrest/rest/signing"
	"github.com/betbot/exrest/rest/types"
)

const contentTypeForm = "application/x-www-form-urlencoded"

// requester 请求构建器：拼接 URL、选择 HTTP 方法、生成 nonce、签名并注入认证头
type requester struct {
	transport *sdkhttp.Client
	params    types.ApiParams
	logger    *logrus.Entry
}

// do 执行请求并返回原始响应体
// 非 2xx 响应不视为错误，响应体原样返回，由调用方解析交易所错误信息。
func (r *requester) do(ctx context.Context, endpoint types.Endpoint, params string, nonces *signing.NonceSource) (string, error) {
	apiPath := "/" + r.params.Version + "/" + endpoint.Path()
	reqURL := strings.TrimRight(r.params.BaseURL, "/") + apiPath

	var (
		method string
		opt    *sdkhttp.RequestOptions
	)
	if endpoint.IsPrivate() {
		method = http.MethodPost

		nonce := nonces.Next()
		body := "nonce=" + signing.FormatNonce(nonce)
		if params != "" {
			body += "&" + params
		}

		auth, err := signing.CreateAuthHeaders(endpoint.Credentials, &signing.L2HeaderArgs{
			RequestPath: apiPath,
			Body:        body,
			Nonce:       nonce,
		})
		if err != nil {
			return "", err
		}

		headers := auth.Map()
		headers["Content-Type"] = contentTypeForm
		opt = &sdkhttp.RequestOptions{Headers: headers, Body: body}
	} else {
		method = http.MethodGet
		if params != "" {
			reqURL += "?" + params
		}
	}

	resp, err := r.transport.DoRaw(ctx, method, reqURL, opt)
	if err != nil {
		return "", &types.TransportError{Method: method, URL: reqURL, Err: err}
	}

	r.logger.WithFields(logrus.Fields{
		"req_id":  uuid.NewString(),
		"method":  method,
		"path":    apiPath,
		"status":  resp.StatusCode,
		"elapsed": resp.Duration,
	}).Debug("request done")

	return resp.Body, nil
}
