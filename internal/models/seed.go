package models

import "time"

// SeedProducts devuelve el catálogo fijo que se usa cuando la colección
// remota está vacía o inaccesible. La tienda nunca se muestra vacía.
func SeedProducts() []Product {
	now := time.Now()
	return []Product{
		{
			ID:          "1",
			Title:       "Camisa Minimalista JLV",
			Description: "Camisa de alta calidad con diseño exclusivo JLV.",
			Price:       450,
			ImageURL:    "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?auto=format&fit=crop&q=80&w=500",
			Category:    CategoryRopa,
			SoldCount:   120,
			CreatedAt:   now,
		},
		{
			ID:          "2",
			Title:       "Gorra Urbana",
			Description: "Estilo urbano y moderno para tu día a día.",
			Price:       250,
			ImageURL:    "https://images.unsplash.com/photo-1588850561407-ed78c282e89b?auto=format&fit=crop&q=80&w=500",
			Category:    CategoryAccesorios,
			SoldCount:   85,
			CreatedAt:   now,
		},
		{
			ID:          "3",
			Title:       "Hoodie Premium",
			Description: "Comodidad y estilo en una sola prenda.",
			Price:       800,
			ImageURL:    "https://images.unsplash.com/photo-1556905055-8f358a7a47b2?auto=format&fit=crop&q=80&w=500",
			Category:    CategoryRopa,
			SoldCount:   200,
			CreatedAt:   now,
		},
		{
			ID:          "4",
			Title:       "Taza JLV Edición Limitada",
			Description: "Disfruta tu café con estilo.",
			Price:       150,
			ImageURL:    "https://images.unsplash.com/photo-1514228742587-6b1558fcca3d?auto=format&fit=crop&q=80&w=500",
			Category:    CategoryHogar,
			SoldCount:   45,
			CreatedAt:   now,
		},
	}
}
