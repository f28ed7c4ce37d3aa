// Package cpf valida el Cadastro de Pessoas Físicas brasileño (módulo 11).
package cpf

import (
	"errors"
	"unicode"
)

// ErrInvalid CPF con longitud o dígitos verificadores incorrectos.
var ErrInvalid = errors.New("cpf: inválido")

// Normalize devuelve solo los dígitos de s ("123.456.789-09" -> "12345678909").
func Normalize(s string) string {
	return string(extractDigits(s))
}

// Validate comprueba longitud, secuencias repetidas y los dos dígitos verificadores.
func Validate(s string) error {
	d := extractDigits(s)
	if len(d) != 11 {
		return ErrInvalid
	}
	allSame := true
	for _, c := range d[1:] {
		if c != d[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return ErrInvalid
	}
	if checkDigit(d[:9]) != d[9] || checkDigit(d[:10]) != d[10] {
		return ErrInvalid
	}
	return nil
}

// Valid atajo booleano de Validate.
func Valid(s string) bool {
	return Validate(s) == nil
}

// checkDigit pesos decrecientes desde len(base)+1 hasta 2.
func checkDigit(base []byte) byte {
	var sum int
	weight := len(base) + 1
	for _, c := range base {
		sum += int(c-'0') * weight
		weight--
	}
	r := (sum * 10) % 11
	if r == 10 {
		r = 0
	}
	return byte('0' + r)
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			out = append(out, byte(r))
		}
	}
	return out
}
