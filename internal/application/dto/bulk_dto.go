package dto

// BulkError fallo de una fila concreta de la carga masiva. Fila es 1-based
// contando la cabecera: la primera fila de datos es la fila 2.
type BulkError struct {
	Fila   int    `json:"fila"`
	Motivo string `json:"motivo"`
}

// BulkResult agregado de una carga masiva: Fallidos = rechazos de validación
// por fila + rechazos dentro de la transacción; Errores los reúne en ese
// mismo orden.
type BulkResult struct {
	Insertados int         `json:"insertados"`
	Fallidos   int         `json:"fallidos"`
	Errores    []BulkError `json:"errores"`
}

// BulkResponse envoltorio HTTP de la carga masiva.
type BulkResponse struct {
	Success    bool        `json:"success"`
	Insertados int         `json:"insertados"`
	Fallidos   int         `json:"fallidos"`
	Errores    []BulkError `json:"errores"`
}
