package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/nexus-coffee/internal/application/usecase"
)

var _ usecase.ReportArchive = (*DirArchive)(nil)

// DirArchive guarda los reportes generados en un directorio local
// (pdfs_generados por defecto).
type DirArchive struct {
	dir string
}

func NewDirArchive(dir string) *DirArchive {
	return &DirArchive{dir: dir}
}

// Save escribe data en dir/filename y crea el directorio si falta.
func (a *DirArchive) Save(_ context.Context, filename string, data []byte) (string, error) {
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return "", fmt.Errorf("archivo de reportes: crear %s: %w", a.dir, err)
	}
	path := filepath.Join(a.dir, filepath.Base(filename))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("archivo de reportes: escribir %s: %w", path, err)
	}
	return path, nil
}
