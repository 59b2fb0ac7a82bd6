package dto

// EstablishmentRequest cuerpo de POST/PUT /admin/establecimientos.
type EstablishmentRequest struct {
	ID        int64  `json:"Id_Establecimiento"`
	Name      string `json:"Nombre_sede"`
	City      string `json:"Ciudad"`
	TableType string `json:"Tipo_de_mesa"`
	Manager   string `json:"Responsable"`
	Waiter    string `json:"Mesero"`
}

// EstablishmentResponse salida de una sede.
type EstablishmentResponse struct {
	ID        int64  `json:"Id_Establecimiento"`
	Name      string `json:"Nombre_sede"`
	City      string `json:"Ciudad"`
	TableType string `json:"Tipo_de_mesa"`
	Manager   string `json:"Responsable"`
	Waiter    string `json:"Mesero"`
}

// EstablishmentListResponse respuesta de GET /admin/establecimientos.
type EstablishmentListResponse struct {
	Success        bool                    `json:"success"`
	Establishments []EstablishmentResponse `json:"establecimientos"`
}
