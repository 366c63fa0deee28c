package entity

// Printer representa un equipo. TonerID y DrumID son los insumos asignados actualmente,
// no el dueño del historial de movimientos.
type Printer struct {
	ID      string
	Name    string
	Model   string
	BrandID string
	TonerID *string
	DrumID  *string
}

