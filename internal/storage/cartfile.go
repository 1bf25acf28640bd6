package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/NigthMare10/jlv-disenos/internal/models"
)

// FileStore persiste el carrito de cada sesión como un archivo JSON bajo
// el directorio de datos. Es el equivalente en servidor del localStorage
// del navegador: un documento por sesión, sin coordinación entre sesiones.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create cart data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(cartID string) string {
	// Los ids de carrito los genera el servidor (uuid), pero nunca se
	// usa el valor crudo como ruta.
	return filepath.Join(s.dir, filepath.Base(cartID)+".json")
}

// Load recupera el carrito. Un archivo inexistente o con contenido
// corrupto equivale a un carrito vacío; nunca es un error visible.
func (s *FileStore) Load(cartID string) []models.CartItem {
	data, err := os.ReadFile(s.path(cartID))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			zap.S().Warnw("could not read cart file", "cart_id", cartID, "error", err)
		}
		return nil
	}

	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		zap.S().Warnw("malformed cart file, starting empty", "cart_id", cartID, "error", err)
		return nil
	}
	return items
}

// Save serializa el carrito completo. La escritura es atómica (archivo
// temporal + rename) para no dejar un carrito a medias si el proceso muere.
func (s *FileStore) Save(cartID string, items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "cart-*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path(cartID))
}
