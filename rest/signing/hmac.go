package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"errors"

	"github.com/betbot/exrest/rest/types"
)

// ErrInvalidSecret secret 不是合法的 base64
var ErrInvalidSecret = errors.New("invalid api secret: not valid base64")

// BuildSignature 构建 API-Sign 签名
//
//	digest    = SHA256(nonce + body)
//	signature = base64(HMAC-SHA512(base64decode(secret), apiPath + digest))
//
// body 必须是实际发送的请求体（已包含 nonce=<nonce> 字段）。
func BuildSignature(apiPath, body, nonce, secret string) (string, error) {
	key, err := decodeSecret(secret)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sign(key, apiPath, body, nonce)), nil
}

// VerifySignature 校验签名（常量时间比较）
func VerifySignature(apiPath, body, nonce, secret, signature string) (bool, error) {
	key, err := decodeSecret(secret)
	if err != nil {
		return false, err
	}
	got, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false, nil
	}
	return hmac.Equal(got, sign(key, apiPath, body, nonce)), nil
}

func decodeSecret(secret string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return nil, &types.ConfigError{Op: "decode secret", Err: errors.Join(ErrInvalidSecret, err)}
	}
	return key, nil
}

func sign(key []byte, apiPath, body, nonce string) []byte {
	digest := sha256.Sum256([]byte(nonce + body))

	message := make([]byte, 0, len(apiPath)+len(digest))
	message = append(message, apiPath...)
	message = append(message, digest[:]...)

	mac := hmac.New(sha512.New, key)
	mac.Write(message)
	return mac.Sum(nil)
}
