package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/NigthMare10/jlv-disenos/internal/models"
	"github.com/NigthMare10/jlv-disenos/internal/repository"
)

var (
	// ErrNotFound indica que el id no corresponde a ningún producto conocido.
	ErrNotFound = errors.New("product not found")
	// ErrInvalidDraft envuelve los errores de validación de un borrador.
	ErrInvalidDraft = errors.New("invalid product draft")
)

// CatalogStore mantiene la copia en memoria del catálogo. En modo conectado
// las escrituras van a la colección remota y el snapshot se reconcilia con
// los eventos del change stream (reemplazo completo, sin escritura
// optimista). Sin repositorio funciona contra el catálogo semilla local.
type CatalogStore struct {
	repo *repository.ProductRepository

	mu       sync.RWMutex
	products []models.Product

	ready     chan struct{}
	readyOnce sync.Once

	onReplace func()
}

func NewCatalogStore(repo *repository.ProductRepository) *CatalogStore {
	return &CatalogStore{
		repo:  repo,
		ready: make(chan struct{}),
	}
}

// OnReplace registra un callback que se invoca cada vez que el snapshot
// cambia (push remoto o mutación local). Se usa para invalidar cachés.
// Puede registrarse mientras Run ya está consumiendo el stream.
func (s *CatalogStore) OnReplace(fn func()) {
	s.mu.Lock()
	s.onReplace = fn
	s.mu.Unlock()
}

// notifyReplace invoca el callback fuera del lock del snapshot.
func (s *CatalogStore) notifyReplace() {
	s.mu.RLock()
	fn := s.onReplace
	s.mu.RUnlock()
	if fn != nil {
		fn()
	}
}

// Ready se cierra tras la primera carga exitosa o el fallback a semilla.
// Reemplaza al temporizador "esperar y rendirse" con una señal explícita.
func (s *CatalogStore) Ready() <-chan struct{} {
	return s.ready
}

func (s *CatalogStore) markReady() {
	s.readyOnce.Do(func() { close(s.ready) })
}

// Run carga el catálogo y luego consume el change stream hasta que el
// contexto se cancele. Cada evento remoto reemplaza el snapshot completo.
func (s *CatalogStore) Run(ctx context.Context) {
	if s.repo == nil {
		s.replaceAll(models.SeedProducts())
		s.markReady()
		zap.S().Info("📦 Catalog running in offline mode with seed data")
		return
	}

	s.loadOrSeed(ctx)
	s.markReady()

	for {
		if ctx.Err() != nil {
			return
		}
		stream, err := s.repo.Watch(ctx)
		if err != nil {
			zap.S().Warnw("catalog watch failed, retrying", "error", err)
			select {
			case <-time.After(3 * time.Second):
				continue
			case <-ctx.Done():
				return
			}
		}

		for stream.Next(ctx) {
			// El contenido del evento no importa: el estado remoto manda
			// y se recarga la lista completa.
			s.loadOrSeed(ctx)
		}
		stream.Close(context.Background())

		if err := stream.Err(); err != nil && ctx.Err() == nil {
			zap.S().Warnw("catalog stream interrupted, resubscribing", "error", err)
		}
	}
}

func (s *CatalogStore) loadOrSeed(ctx context.Context) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.S().Warnw("could not load catalog, falling back to seed data", "error", err)
		s.seedIfEmpty()
		return
	}
	if len(products) == 0 {
		s.replaceAll(models.SeedProducts())
		return
	}
	s.replaceAll(products)
}

// seedIfEmpty conserva el último snapshot bueno; sólo siembra si no hay nada.
func (s *CatalogStore) seedIfEmpty() {
	s.mu.RLock()
	empty := len(s.products) == 0
	s.mu.RUnlock()
	if empty {
		s.replaceAll(models.SeedProducts())
	}
}

func (s *CatalogStore) replaceAll(products []models.Product) {
	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
	s.notifyReplace()
}

// List devuelve una copia del snapshot actual. En modo conectado viene
// ordenado por fecha de creación descendente; la semilla conserva su orden
// de inserción.
func (s *CatalogStore) List() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ListByCategory filtra la copia del snapshot por categoría exacta.
func (s *CatalogStore) ListByCategory(category string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// ListBySold devuelve la copia ordenada por unidades vendidas ("más
// vendidos" en la tienda).
func (s *CatalogStore) ListBySold() []models.Product {
	out := s.List()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SoldCount > out[j].SoldCount
	})
	return out
}

// Get busca un producto por id en el snapshot.
func (s *CatalogStore) Get(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

// buildProduct valida el borrador y construye el producto completo con
// los valores por defecto aplicados.
func buildProduct(draft models.ProductDraft) (models.Product, error) {
	if draft.Price == nil || *draft.Price < 0 {
		return models.Product{}, fmt.Errorf("%w: price must be >= 0", ErrInvalidDraft)
	}

	category := draft.Category
	if category == "" {
		category = models.CategoryOtros
	}

	imageURL := draft.ImageURL
	if imageURL == "" {
		imageURL = models.DefaultImageURL
	}

	sizes := draft.Sizes
	if category != models.CategoryRopa {
		// Las tallas sólo tienen sentido para ropa.
		sizes = nil
	}
	for _, size := range sizes {
		if !models.ValidSize(size) {
			return models.Product{}, fmt.Errorf("%w: unknown size %q", ErrInvalidDraft, size)
		}
	}

	return models.Product{
		Title:       draft.Title,
		Description: draft.Description,
		Price:       *draft.Price,
		ImageURL:    imageURL,
		Category:    category,
		Sizes:       sizes,
		SoldCount:   0,
		CreatedAt:   time.Now(),
	}, nil
}

// Create valida el borrador y da de alta el producto. En modo conectado el
// snapshot se actualiza cuando llega el push del change stream.
func (s *CatalogStore) Create(ctx context.Context, draft models.ProductDraft) (models.Product, error) {
	product, err := buildProduct(draft)
	if err != nil {
		return models.Product{}, err
	}

	if s.repo == nil {
		product.ID = uuid.NewString()
		s.mu.Lock()
		s.products = append(s.products, product)
		s.mu.Unlock()
		s.notifyReplace()
		return product, nil
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return models.Product{}, err
	}
	return created, nil
}

// Update fusiona el patch sobre el producto. Un id inexistente en el
// almacén remoto se registra y se ignora, no es un error para el llamador.
func (s *CatalogStore) Update(ctx context.Context, id string, patch models.ProductPatch) error {
	if patch.Price != nil && *patch.Price < 0 {
		return fmt.Errorf("%w: price must be >= 0", ErrInvalidDraft)
	}
	if patch.IsEmpty() {
		return nil
	}

	if s.repo == nil {
		s.updateLocal(id, patch)
		return nil
	}

	err := s.repo.Update(ctx, id, patch)
	if errors.Is(err, repository.ErrNotFound) {
		zap.S().Warnw("update for unknown product ignored", "id", id)
		return nil
	}
	return err
}

func (s *CatalogStore) updateLocal(id string, patch models.ProductPatch) {
	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.ImageURL != nil {
			p.ImageURL = *patch.ImageURL
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Sizes != nil {
			p.Sizes = patch.Sizes
		}
		break
	}
	s.mu.Unlock()
	s.notifyReplace()
}

// Delete elimina el producto. Los carritos que ya guardaron una copia no
// se tocan.
func (s *CatalogStore) Delete(ctx context.Context, id string) error {
	if s.repo == nil {
		s.mu.Lock()
		kept := s.products[:0]
		found := false
		for _, p := range s.products {
			if p.ID == id {
				found = true
				continue
			}
			kept = append(kept, p)
		}
		s.products = kept
		s.mu.Unlock()
		s.notifyReplace()
		if !found {
			return ErrNotFound
		}
		return nil
	}

	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// AdjustedPrice calcula el nuevo precio tras aplicar el porcentaje,
// redondeado a la unidad y con piso en cero.
func AdjustedPrice(price, percentage float64) float64 {
	adjusted := math.Round(price * (1 + percentage/100))
	if adjusted < 0 {
		return 0
	}
	return adjusted
}

// BulkAdjustPrice aplica el porcentaje a todos los productos y devuelve
// cuántos se ajustaron. Las fallas por producto se registran y se continúa.
func (s *CatalogStore) BulkAdjustPrice(ctx context.Context, percentage float64) (int, error) {
	adjusted := 0

	if s.repo == nil {
		s.mu.Lock()
		for i := range s.products {
			s.products[i].Price = AdjustedPrice(s.products[i].Price, percentage)
			adjusted++
		}
		s.mu.Unlock()
		s.notifyReplace()
		return adjusted, nil
	}

	for _, p := range s.List() {
		newPrice := AdjustedPrice(p.Price, percentage)
		if err := s.repo.UpdatePrice(ctx, p.ID, newPrice); err != nil {
			zap.S().Warnw("bulk price update failed for product", "id", p.ID, "error", err)
			continue
		}
		adjusted++
	}
	return adjusted, nil
}
