package models

import (
	"time"
)

// Categorías conocidas del catálogo. Category acepta texto libre,
// pero la UI sólo ofrece estas cuatro.
const (
	CategoryRopa       = "Ropa"
	CategoryAccesorios = "Accesorios"
	CategoryHogar      = "Hogar"
	CategoryOtros      = "Otros"
)

// DefaultImageURL se usa cuando un producto se crea sin imagen.
const DefaultImageURL = "https://images.unsplash.com/photo-1599643478518-17488fbbcd75?auto=format&fit=crop&q=80&w=500"

// AvailableSizes son las tallas válidas para artículos de ropa.
var AvailableSizes = []string{"XS", "S", "M", "L", "XL", "XXL"}

// Product representa un producto del catálogo.
// El precio se expresa en Lempiras con granularidad de unidad entera.
type Product struct {
	ID          string    `json:"id" bson:"-"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"`
	ImageURL    string    `json:"imageUrl" bson:"image_url"`
	Category    string    `json:"category" bson:"category"`
	Sizes       []string  `json:"sizes,omitempty" bson:"sizes,omitempty"`
	SoldCount   int       `json:"soldCount" bson:"sold_count"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
}

// ProductDraft contiene únicamente los campos que un llamador puede
// fijar al crear un producto. id, createdAt y soldCount los asigna el sistema.
type ProductDraft struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	ImageURL    string   `json:"imageUrl"`
	Category    string   `json:"category"`
	Sizes       []string `json:"sizes"`
}

// ProductPatch representa los campos actualizables de un producto.
type ProductPatch struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
}

// IsEmpty indica si el patch no trae ningún campo.
func (p ProductPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Price == nil &&
		p.ImageURL == nil && p.Category == nil && p.Sizes == nil
}

// ValidSize verifica que la talla pertenezca al vocabulario conocido.
func ValidSize(size string) bool {
	for _, s := range AvailableSizes {
		if s == size {
			return true
		}
	}
	return false
}
