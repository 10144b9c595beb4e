package catalogo

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizar lleva un código o nombre de producto a su forma de comparación:
// mayúsculas, sin espacios en los extremos y sin tildes ("Almacén" == "ALMACEN").
// Se usa en la búsqueda de la pantalla de ventas.
func Normalizar(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plano, _, err := transform.String(t, s)
	if err != nil {
		plano = s
	}
	return strings.ToUpper(strings.TrimSpace(plano))
}

// Coincide indica si la consulta q coincide con el código o el nombre del
// producto, ignorando mayúsculas y tildes. El código exige igualdad exacta;
// el nombre acepta coincidencia por substring.
func Coincide(q, codigo, nombre string) bool {
	nq := Normalizar(q)
	if nq == "" {
		return false
	}
	if Normalizar(codigo) == nq {
		return true
	}
	return strings.Contains(Normalizar(nombre), nq)
}

// CodigoValido verifica la forma de un código de producto: no vacío y sin
// espacios internos. El llamador es responsable de normalizarlo antes.
func CodigoValido(codigo string) bool {
	if codigo == "" {
		return false
	}
	return !strings.ContainsFunc(codigo, unicode.IsSpace)
}
