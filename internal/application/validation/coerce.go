package validation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Los valores de entrada llegan "duck-typed": el decode JSON produce float64,
// string, bool o nil, y las celdas de un spreadsheet llegan siempre como
// string. Estas coerciones definen el mapeo total una sola vez.

var (
	// Solo letras (incluye tildes y ñ) y espacios.
	reNombre = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚáéíóúÑñ\s]+$`)
	// Número con punto decimal opcional: "123" o "123.45".
	reDecimal = regexp.MustCompile(`^\d+(\.\d+)?$`)
	// Entero sin signo: "123".
	reEntero = regexp.MustCompile(`^\d+$`)
)

// NombreValido indica si el texto cumple el patrón de nombre estricto.
func NombreValido(s string) bool {
	return reNombre.MatchString(s)
}

// CoerceString devuelve el valor como string recortado. ok=false si el valor
// no es string ni está ausente (nil cuenta como string vacío presente).
func CoerceString(v any) (string, bool) {
	switch s := v.(type) {
	case nil:
		return "", true
	case string:
		return strings.TrimSpace(s), true
	default:
		return "", false
	}
}

// CoerceDecimal acepta un número JSON o un string numérico con punto decimal
// ("12.50"). Cualquier otra cosa devuelve ok=false.
func CoerceDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), true
	case string:
		s := strings.TrimSpace(n)
		if !reDecimal.MatchString(s) {
			return decimal.Zero, false
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}

// CoerceEntero acepta un número JSON de valor entero o un string de dígitos.
func CoerceEntero(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int64(n), true
	case string:
		s := strings.TrimSpace(n)
		if !reEntero.MatchString(s) {
			return 0, false
		}
		e, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, false
		}
		return e, true
	default:
		return 0, false
	}
}

// CoerceBool acepta bool o los tokens true/1/yes y false/0/no (cualquier
// mayúscula). Devuelve (nil, true) si el valor está ausente y (nil, false)
// si está presente pero no es reconocible.
func CoerceBool(v any) (*bool, bool) {
	switch b := v.(type) {
	case nil:
		return nil, true
	case bool:
		return &b, true
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "1", "yes":
			t := true
			return &t, true
		case "false", "0", "no":
			f := false
			return &f, true
		case "":
			return nil, true
		}
		return nil, false
	case float64:
		t := b != 0
		return &t, true
	default:
		return nil, false
	}
}
