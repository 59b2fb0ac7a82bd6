package ordering

import (
	"math/rand/v2"

	"github.com/jhoicas/restaurante-rb-api/internal/domain/entity"
)

// RandomCodes sortea códigos uniformes en [OrderCodeMin, OrderCodeMax].
// No consulta la base: dos órdenes pueden compartir código. El identificador
// único para el cliente es PublicOrderCode(id).
type RandomCodes struct{}

// Next devuelve un código de 6 dígitos.
func (RandomCodes) Next() int {
	return entity.OrderCodeMin + rand.IntN(entity.OrderCodeMax-entity.OrderCodeMin+1)
}
