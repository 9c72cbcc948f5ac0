package entity

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText recorta espacios y normaliza a NFC, para que "Café" compuesto y
// descompuesto se consideren el mismo nombre.
func NormalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// ContainsFold busca needle dentro de s sin distinguir mayúsculas (equivalente a ILIKE '%needle%').
func ContainsFold(s, needle string) bool {
	if needle == "" {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(NormalizeText(s)), fold.String(NormalizeText(needle)))
}
