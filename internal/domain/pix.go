package domain

import (
	"regexp"
	"strings"
)

// PixKeyKind names the accepted PIX key formats.
type PixKeyKind string

const (
	PixKeyCPF     PixKeyKind = "cpf"
	PixKeyCNPJ    PixKeyKind = "cnpj"
	PixKeyEmail   PixKeyKind = "email"
	PixKeyPhone   PixKeyKind = "phone"
	PixKeyRandom  PixKeyKind = "random"
	PixKeyInvalid PixKeyKind = "invalid"
)

var (
	pixCPFPattern    = regexp.MustCompile(`^\d{11}$`)
	pixCNPJPattern   = regexp.MustCompile(`^\d{14}$`)
	pixEmailPattern  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	pixPhonePattern  = regexp.MustCompile(`^\+55\d{10,11}$`)
	pixRandomPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
)

// ClassifyPixKey trims the candidate and reports which key format it
// matches. Blank input is always PixKeyInvalid.
func ClassifyPixKey(key string) PixKeyKind {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return PixKeyInvalid
	}

	switch {
	case pixCPFPattern.MatchString(trimmed):
		return PixKeyCPF
	case pixCNPJPattern.MatchString(trimmed):
		return PixKeyCNPJ
	case pixEmailPattern.MatchString(trimmed):
		return PixKeyEmail
	case pixPhonePattern.MatchString(trimmed):
		return PixKeyPhone
	case pixRandomPattern.MatchString(trimmed):
		return PixKeyRandom
	default:
		return PixKeyInvalid
	}
}

// ValidatePixKey reports whether the candidate is an acceptable PIX key:
// a CPF (11 digits), CNPJ (14 digits), email address, Brazilian phone
// number (+55 plus 10-11 digits), or a UUID-formatted random key.
func ValidatePixKey(key string) bool {
	return ClassifyPixKey(key) != PixKeyInvalid
}
