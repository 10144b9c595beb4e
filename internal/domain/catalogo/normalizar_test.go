package catalogo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crodval/multicentro-api/internal/domain/catalogo"
)

func TestNormalizar_MayusculasEspaciosYTildes(t *testing.T) {
	assert.Equal(t, "ALMACEN", catalogo.Normalizar("  Almacén "))
	assert.Equal(t, "CAFE MOLIDO", catalogo.Normalizar("café molido"))
	assert.Equal(t, "NIÑO", catalogo.Normalizar("niño"), "la eñe no es tilde, se conserva")
	assert.Equal(t, "", catalogo.Normalizar("   "))
}

func TestCoincide_CodigoExactoYNombreSubstring(t *testing.T) {
	// Código: igualdad exacta sin importar mayúsculas ni tildes.
	assert.True(t, catalogo.Coincide("abc-01", "ABC-01", "Jabón líquido"))
	assert.False(t, catalogo.Coincide("abc", "ABC-01", "otro producto"))

	// Nombre: substring.
	assert.True(t, catalogo.Coincide("jabon", "ABC-01", "Jabón líquido"))
	assert.True(t, catalogo.Coincide("LÍQUIDO", "ABC-01", "jabon liquido"))
	assert.False(t, catalogo.Coincide("shampoo", "ABC-01", "Jabón líquido"))

	// Consulta vacía nunca coincide.
	assert.False(t, catalogo.Coincide("  ", "ABC-01", "Jabón líquido"))
}

func TestCodigoValido_RechazaEspaciosInternos(t *testing.T) {
	assert.True(t, catalogo.CodigoValido("ABC-01"))
	assert.False(t, catalogo.CodigoValido("ABC 01"))
	assert.False(t, catalogo.CodigoValido("AB\t01"))
	assert.False(t, catalogo.CodigoValido(""))
}
