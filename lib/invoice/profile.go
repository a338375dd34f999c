package invoice

import (
	"strings"

	"compaexpress/lib/models"
)

const (
	Placeholder    = "No especificado"
	DefaultCountry = "Ecuador"
	DefaultProduct = "Producto"
)

// Optional is a tagged optional value
type Optional[T any] struct {
	value T
	set   bool
}

// Some wraps a present value
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an absent value
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// OrElse returns the value, or fallback when absent
func (o Optional[T]) OrElse(fallback T) T {
	if o.set {
		return o.value
	}
	return fallback
}

// BusinessProfile is the issuing business with every optional attribute made explicit
type BusinessProfile struct {
	Name           string
	TaxID          string
	Representative Optional[string]
	Address        Optional[string]
	Phone          Optional[string]
	Email          Optional[string]
	City           Optional[string]
	Province       Optional[string]
	Country        Optional[string]
	MobileAccess   Optional[float64]
	PCAccess       Optional[float64]
	LogoKey        Optional[string]
}

// ResolvedProfile holds display strings after placeholder substitution
type ResolvedProfile struct {
	Name           string
	TaxID          string
	Representative string
	Address        string
	Phone          string
	Email          string
	City           string
	Province       string
	Country        string
	MobileAccess   string
	PCAccess       string
}

// NewBusinessProfile converts the request record. Empty strings and zero or
// non-numeric access counts are treated as absent.
func NewBusinessProfile(n models.Negocio) BusinessProfile {
	return BusinessProfile{
		Name:           n.Nombre,
		TaxID:          n.Ruc,
		Representative: optionalString(n.Representante),
		Address:        optionalString(n.Direccion),
		Phone:          optionalString(n.Telefono),
		Email:          optionalString(n.CorreoElectronico),
		City:           optionalString(n.Ciudad),
		Province:       optionalString(n.Provincia),
		Country:        optionalString(n.Pais),
		MobileAccess:   optionalCount(n.MovilAccess),
		PCAccess:       optionalCount(n.PcAccess),
		LogoKey:        optionalString(n.Logo),
	}
}

// Resolve is the single place where absent attributes become placeholder text
func (p BusinessProfile) Resolve() ResolvedProfile {
	return ResolvedProfile{
		Name:           p.Name,
		TaxID:          p.TaxID,
		Representative: p.Representative.OrElse(Placeholder),
		Address:        p.Address.OrElse(Placeholder),
		Phone:          p.Phone.OrElse(Placeholder),
		Email:          p.Email.OrElse(Placeholder),
		City:           p.City.OrElse(Placeholder),
		Province:       p.Province.OrElse(Placeholder),
		Country:        p.Country.OrElse(DefaultCountry),
		MobileAccess:   FormatQuantity(p.MobileAccess.OrElse(0)),
		PCAccess:       FormatQuantity(p.PCAccess.OrElse(0)),
	}
}

func optionalString(v *string) Optional[string] {
	if v == nil || strings.TrimSpace(*v) == "" {
		return None[string]()
	}
	return Some(*v)
}

func optionalCount(n models.Number) Optional[float64] {
	if !n.Numeric || n.Value == 0 {
		return None[float64]()
	}
	return Some(n.Value)
}
