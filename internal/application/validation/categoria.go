package validation

import (
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

// Límites de los campos de categoría.
const (
	maxNombre           = 50
	maxDescripcionCateg = 255
)

// CategoriaNormalizada registro tipado listo para persistir.
// Activo nil significa "no informado" (en create aplica el default true).
type CategoriaNormalizada struct {
	Nombre      string
	Descripcion *string
	Activo      *bool
}

// CategoriaCambios cambios parciales de un update. Un puntero nil significa
// "no tocar"; Descripcion apuntando a "" significa limpiar el campo.
type CategoriaCambios struct {
	Nombre      *string
	Descripcion *string
	Activo      *bool
}

// ValidarCategoriaCreate aplica el esquema estricto de alta: nombre
// obligatorio de 1 a 50 letras/espacios, descripción opcional hasta 255.
// Acumula todos los campos que fallan antes de devolver el error.
func ValidarCategoriaCreate(in dto.CategoriaPayload) (*CategoriaNormalizada, error) {
	var errs []domain.FieldError
	out := &CategoriaNormalizada{}

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

	if desc, derrs := validarDescripcion(in.Descripcion, maxDescripcionCateg, "La descripción no puede superar 255 caracteres"); len(derrs) > 0 {
		errs = append(errs, derrs...)
	} else {
		out.Descripcion = desc
	}

	activo, ok := CoerceBool(in.Activo)
	if !ok {
		errs = append(errs, domain.FieldError{Field: "activo", Message: "El campo activo debe ser booleano"})
	} else {
		out.Activo = activo
	}

	if err := domain.NewValidationError(errs); err != nil {
		return nil, err
	}
	return out, nil
}

// ValidarCategoriaUpdate valida los campos presentes; los ausentes no se
// tocan. Mismo esquema estricto que el alta.
func ValidarCategoriaUpdate(in dto.CategoriaPayload) (*CategoriaCambios, error) {
	var errs []domain.FieldError
	out := &CategoriaCambios{}

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
		desc, derrs := validarDescripcion(in.Descripcion, maxDescripcionCateg, "La descripción no puede superar 255 caracteres")
		if len(derrs) > 0 {
			errs = append(errs, derrs...)
		} else if desc != nil {
			out.Descripcion = desc
		} else {
			vacia := ""
			out.Descripcion = &vacia
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

	if err := domain.NewValidationError(errs); err != nil {
		return nil, err
	}
	return out, nil
}

// validarDescripcion normaliza un texto opcional: recorta, vacío pasa a nil.
func validarDescripcion(v any, max int, msg string) (*string, []domain.FieldError) {
	desc, ok := CoerceString(v)
	if !ok {
		return nil, []domain.FieldError{{Field: "descripcion", Message: "La descripción debe ser texto"}}
	}
	if len([]rune(desc)) > max {
		return nil, []domain.FieldError{{Field: "descripcion", Message: msg}}
	}
	if desc == "" {
		return nil, nil
	}
	return &desc, nil
}
