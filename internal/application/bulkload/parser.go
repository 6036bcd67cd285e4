package bulkload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrFormato indica que el archivo no es un spreadsheet ni un CSV legible.
var ErrFormato = errors.New("formato de archivo no soportado")

// Row fila cruda del archivo: cabecera (minúsculas, recortada) → celda como
// texto recortado. Las celdas ausentes simplemente no están en el mapa.
type Row map[string]string

// Decode convierte el archivo subido en filas crudas según su extensión
// (.xlsx/.xls vía excelize, .csv vía encoding/csv). Un contenido ilegible
// para la extensión declarada también es ErrFormato.
func Decode(r io.Reader, filename string) ([]Row, error) {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".xlsx"), strings.HasSuffix(lower, ".xls"):
		return decodeExcel(r)
	case strings.HasSuffix(lower, ".csv"):
		return decodeCSV(r)
	default:
		return nil, ErrFormato
	}
}

func decodeExcel(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFormato, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: libro sin hojas", ErrFormato)
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", sheets[0], err)
	}
	return toRows(records), nil
}

func decodeCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // filas cortas se rellenan con celdas vacías
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFormato, err)
	}
	return toRows(records), nil
}

// toRows arma las filas con la primera fila como cabecera. Solo los registros
// sin celdas se descartan; una fila de celdas vacías (",,") sí cuenta como
// fila de datos y la rechaza la validación, con lo que la numeración de las
// filas siguientes no se corre.
func toRows(records [][]string) []Row {
	if len(records) == 0 {
		return nil
	}
	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var rows []Row
	for _, rec := range records[1:] {
		if len(rec) == 0 {
			continue
		}
		row := make(Row, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			var v string
			if i < len(rec) {
				v = strings.TrimSpace(rec[i])
			}
			row[h] = v
		}
		rows = append(rows, row)
	}
	return rows
}
