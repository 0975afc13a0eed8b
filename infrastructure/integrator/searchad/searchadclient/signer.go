package searchadclient

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// Sign gera a assinatura HMAC-SHA256 de "{timestamp}.{method}.{path}" em
// base64. A query string não participa da mensagem assinada; o timestamp
// participa, por isso os cabeçalhos precisam ser regenerados a cada
// tentativa e nunca reaproveitados entre retries.
func Sign(method, path, timestamp, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp + "." + method + "." + path))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
