package validation

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

// Límites de los campos de producto.
const (
	maxDescripcionProd = 500
	maxSKU             = 60
)

// ProductoNormalizado registro tipado listo para persistir.
// Activo nil significa "no informado" (en create aplica el default true).
type ProductoNormalizado struct {
	Nombre      string
	Descripcion *string
	SKU         *string
	Precio      decimal.Decimal
	Stock       int
	Activo      *bool
	IDCategoria int64
}

// ProductoCambios cambios parciales de un update. Un puntero nil significa
// "no tocar"; Descripcion o SKU apuntando a "" significan limpiar el campo.
type ProductoCambios struct {
	Nombre      *string
	Descripcion *string
	SKU         *string
	Precio      *decimal.Decimal
	Stock       *int
	Activo      *bool
	IDCategoria *int64
}

// ValidarProductoCreate aplica el esquema estricto de alta y acumula todos
// los campos que fallan: nombre 1–50 letras/espacios, precio numérico > 0
// (número o string con punto), stock entero >= 0 (default 0), idCategoria
// entero positivo obligatorio, sku y descripción opcionales con tope.
func ValidarProductoCreate(in dto.ProductoPayload) (*ProductoNormalizado, error) {
	var errs []domain.FieldError
	out := &ProductoNormalizado{}

	nombre, ok := CoerceString(in.Nombre)
	switch {
	case !ok || nombre == "":
		errs = append(errs, domain.FieldError{Field: "nombre", Message: "El nombre es obligatorio"})
	case len([]rune(nombre)) > maxNombre:
		errs = append(errs, domain.FieldError{Field: "nombre", Message: "El nombre no puede superar 50 caracteres"})
	case !NombreValido(nombre):
		errs = append(errs, domain.FieldError{Field: "nombre", Message: "El nombre solo puede contener letras y espacios (sin números)"})
	default:
		out.Nombre = nombre
	}

	if desc, derrs := validarDescripcion(in.Descripcion, maxDescripcionProd, "La descripción no puede superar 500 caracteres"); len(derrs) > 0 {
		errs = append(errs, derrs...)
	} else {
		out.Descripcion = desc
	}

	if sku, serrs := validarSKU(in.SKU); len(serrs) > 0 {
		errs = append(errs, serrs...)
	} else {
		out.SKU = sku
	}

	if in.Precio == nil {
		errs = append(errs, domain.FieldError{Field: "precio", Message: "El precio es obligatorio"})
	} else if precio, perrs := validarPrecio(in.Precio); len(perrs) > 0 {
		errs = append(errs, perrs...)
	} else {
		out.Precio = *precio
	}

	if in.Stock == nil {
		out.Stock = 0
	} else if stock, serrs := validarStock(in.Stock); len(serrs) > 0 {
		errs = append(errs, serrs...)
	} else {
		out.Stock = *stock
	}

	activo, ok := CoerceBool(in.Activo)
	if !ok {
		errs = append(errs, domain.FieldError{Field: "activo", Message: "El campo activo debe ser booleano"})
	} else {
		out.Activo = activo
	}

	if in.IDCategoria == nil {
		errs = append(errs, domain.FieldError{Field: "idCategoria", Message: "La categoría es obligatoria"})
	} else if id, cerrs := validarIDCategoria(in.IDCategoria); len(cerrs) > 0 {
		errs = append(errs, cerrs...)
	} else {
		out.IDCategoria = *id
	}

	if err := domain.NewValidationError(errs); err != nil {
		return nil, err
	}
	return out, nil
}

// ValidarProductoUpdate valida los campos presentes; los ausentes no se
// tocan. Mismo esquema estricto que el alta.
func ValidarProductoUpdate(in dto.ProductoPayload) (*ProductoCambios, error) {
	var errs []domain.FieldError
	out := &ProductoCambios{}

	if in.Nombre != nil {
		nombre, ok := CoerceString(in.Nombre)
		switch {
		case !ok || nombre == "":
			errs = append(errs, domain.FieldError{Field: "nombre", Message: "El nombre no puede estar vacío"})
		case len([]rune(nombre)) > maxNombre:
			errs = append(errs, domain.FieldError{Field: "nombre", Message: "El nombre no puede superar 50 caracteres"})
		case !NombreValido(nombre):
			errs = append(errs, domain.FieldError{Field: "nombre", Message: "El nombre solo puede contener letras y espacios (sin números)"})
		default:
			out.Nombre = &nombre
		}
	}

	if in.Descripcion != nil {
		desc, derrs := validarDescripcion(in.Descripcion, maxDescripcionProd, "La descripción no puede superar 500 caracteres")
		if len(derrs) > 0 {
			errs = append(errs, derrs...)
		} else {
			out.Descripcion = textoOLimpiar(desc)
		}
	}

	if in.SKU != nil {
		sku, serrs := validarSKU(in.SKU)
		if len(serrs) > 0 {
			errs = append(errs, serrs...)
		} else {
			out.SKU = textoOLimpiar(sku)
		}
	}

	if in.Precio != nil {
		precio, perrs := validarPrecio(in.Precio)
		if len(perrs) > 0 {
			errs = append(errs, perrs...)
		} else {
			out.Precio = precio
		}
	}

	if in.Stock != nil {
		stock, serrs := validarStock(in.Stock)
		if len(serrs) > 0 {
			errs = append(errs, serrs...)
		} else {
			out.Stock = stock
		}
	}

	if in.Activo != nil {
		activo, ok := CoerceBool(in.Activo)
		if !ok {
			errs = append(errs, domain.FieldError{Field: "activo", Message: "El campo activo debe ser booleano"})
		} else {
			out.Activo = activo
		}
	}

	if in.IDCategoria != nil {
		id, cerrs := validarIDCategoria(in.IDCategoria)
		if len(cerrs) > 0 {
			errs = append(errs, cerrs...)
		} else {
			out.IDCategoria = id
		}
	}

	if err := domain.NewValidationError(errs); err != nil {
		return nil, err
	}
	return out, nil
}

func validarSKU(v any) (*string, []domain.FieldError) {
	sku, ok := CoerceString(v)
	if !ok {
		return nil, []domain.FieldError{{Field: "sku", Message: "El SKU debe ser texto"}}
	}
	if len([]rune(sku)) > maxSKU {
		return nil, []domain.FieldError{{Field: "sku", Message: "El SKU no puede superar 60 caracteres"}}
	}
	if sku == "" {
		return nil, nil
	}
	return &sku, nil
}

func validarPrecio(v any) (*decimal.Decimal, []domain.FieldError) {
	precio, ok := CoerceDecimal(v)
	if !ok {
		return nil, []domain.FieldError{{Field: "precio", Message: "El precio debe ser numérico (usa punto para decimales)"}}
	}
	if !precio.IsPositive() {
		return nil, []domain.FieldError{{Field: "precio", Message: "El precio debe ser mayor a 0"}}
	}
	return &precio, nil
}

func validarStock(v any) (*int, []domain.FieldError) {
	n, ok := CoerceEntero(v)
	if !ok {
		return nil, []domain.FieldError{{Field: "stock", Message: "El stock debe ser un número entero"}}
	}
	if n < 0 {
		return nil, []domain.FieldError{{Field: "stock", Message: "El stock no puede ser negativo"}}
	}
	stock := int(n)
	return &stock, nil
}

func validarIDCategoria(v any) (*int64, []domain.FieldError) {
	id, ok := CoerceEntero(v)
	if !ok || id <= 0 {
		return nil, []domain.FieldError{{Field: "idCategoria", Message: "La categoría es obligatoria"}}
	}
	return &id, nil
}

// textoOLimpiar distingue "campo informado vacío" (limpiar en el update) de
// un texto real: nil normalizado pasa a puntero a "" para señalar limpieza.
func textoOLimpiar(s *string) *string {
	if s != nil {
		return s
	}
	vacia := ""
	return &vacia
}
