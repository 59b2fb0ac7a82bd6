package entity

// Establishment una sede del restaurante.
type Establishment struct {
	ID        int64
	Name      string // Nombre_sede
	City      string
	TableType string // Tipo_de_mesa
	Manager   string // Responsable
	Waiter    string // Mesero
}
