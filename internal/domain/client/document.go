package client

import "strings"

// Digits strips punctuation from a CPF/CNPJ string.
func Digits(document string) string {
	var b strings.Builder
	for _, r := range document {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DetectType classifies a document by its digit count. Check digits are not
// verified.
func DetectType(document string) DocumentType {
	switch len(Digits(document)) {
	case 11:
		return TypeCPF
	case 14:
		return TypeCNPJ
	default:
		return TypeUnknown
	}
}
