// Package inventory contiene la lógica pura del motor de stock: estado,
// tabla de efectos por (tipo, unidad) y replay del log de movimientos.
package inventory

// Status clasifica el stock actual frente al inventario ideal de la cuenta.
type Status string

const (
	StatusCritical Status = "critical"
	StatusLow      Status = "low"
	StatusNormal   Status = "normal"
)

// ComputeStatus clasifica un saldo contra el umbral ideal:
// <= 0 critical; entre 0 y el ideal low; >= ideal normal.
// Se aplica de forma independiente a cada eje (sellado / porciones).
func ComputeStatus(currentStock, idealStock int) Status {
	switch {
	case currentStock <= 0:
		return StatusCritical
	case currentStock < idealStock:
		return StatusLow
	default:
		return StatusNormal
	}
}
