// Package whatsapp compone deep links de WhatsApp (wa.me). La app no habla
// con WhatsApp: solo arma la URL que el operador abre desde la interfaz.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizePhone reduce el teléfono a solo dígitos: "+55 (11) 98888-1001"
// queda "5511988881001". El número se guarda tal cual en el directorio; la
// normalización ocurre recién al componer el mensaje.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ComposeLink arma https://wa.me/<dígitos>?text=<mensaje>. Falla solo si el
// teléfono no contiene ningún dígito.
func ComposeLink(phone, message string) (string, error) {
	digits := NormalizePhone(phone)
	if digits == "" {
		return "", fmt.Errorf("teléfono sin dígitos: %q", phone)
	}
	u := &url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + digits,
		RawQuery: "text=" + url.QueryEscape(message),
	}
	return u.String(), nil
}
