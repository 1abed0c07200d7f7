package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/jhoicas/nexus-coffee/internal/domain"
	"github.com/jhoicas/nexus-coffee/pkg/config"
)

// NewDB abre el *sql.DB para MySQL usando la configuración de la app.
// No se conservan conexiones ociosas: cada llamada del Gateway abre la suya
// y la cierra al devolverla.
func NewDB(ctx context.Context, cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("abrir DSN: %w", err)
	}
	db.SetMaxIdleConns(0)
	db.SetConnMaxLifetime(time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %s:%d/%s: %w", domain.ErrConnection, cfg.Host, cfg.Port, cfg.Database, err)
	}
	return db, nil
}
