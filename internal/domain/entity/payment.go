package entity

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// PaymentMethod forma de pago registrada en el punto de venta.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
	PaymentPix  PaymentMethod = "pix"
)

// IsDigital indica si el pago no entra como efectivo en la gaveta (tarjeta o pix).
// Para la conciliación pix se agrupa con tarjeta.
func (m PaymentMethod) IsDigital() bool {
	return m == PaymentCard || m == PaymentPix
}

// Valid indica si m es uno de los valores enumerados.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentPix:
		return true
	}
	return false
}

// ParsePaymentMethod convierte la entrada del checkout al enumerado. Los valores
// enumerados pasan tal cual; etiquetas libres como "dinheiro" o "Cartão de Crédito"
// se resuelven con ClassifyLegacyPaymentMethod.
func ParsePaymentMethod(s string) PaymentMethod {
	if v := PaymentMethod(strings.ToLower(strings.TrimSpace(s))); v.Valid() {
		return v
	}
	return ClassifyLegacyPaymentMethod(s)
}

// needles de tarjeta: prefijos en portugués (cartão, crédito, débito) y en inglés.
var cardNeedles = []string{"card", "cart", "cred", "deb"}

// ClassifyLegacyPaymentMethod clasifica el texto libre de ventas históricas.
// Se pliegan acentos y mayúsculas; "pix" gana sobre tarjeta y cualquier texto
// no reconocido (incluido el vacío) se trata como efectivo.
func ClassifyLegacyPaymentMethod(text string) PaymentMethod {
	folded := foldText(text)
	if strings.Contains(folded, "pix") {
		return PaymentPix
	}
	for _, needle := range cardNeedles {
		if strings.Contains(folded, needle) {
			return PaymentCard
		}
	}
	return PaymentCash
}

func foldText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
