package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type requestConnKey struct{}

// RequestConn hands out one dedicated connection for the lifetime of a
// request. The connection is checked out of the pool on the first Get and
// returned by Close.
type RequestConn struct {
	db *gorm.DB

	mu      sync.Mutex
	conn    *sql.Conn
	session *gorm.DB
}

func NewRequestConn(db *gorm.DB) *RequestConn {
	return &RequestConn{db: db}
}

// Get returns a gorm session bound to the request's connection, opening it on
// first use. Later calls return the same session.
func (rc *RequestConn) Get(ctx context.Context) (*gorm.DB, error) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.session != nil {
		return rc.session, nil
	}

	sqlDB, err := rc.db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}

	// NewDB keeps each chained call on a fresh statement that inherits the
	// connection below.
	session := rc.db.Session(&gorm.Session{NewDB: true, Context: ctx})
	session.Statement.ConnPool = conn

	rc.conn = conn
	rc.session = session
	return session, nil
}

// Opened reports whether Get has checked out a connection.
func (rc *RequestConn) Opened() bool {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.conn != nil
}

// Close returns the connection to the pool. It is safe to call when no
// connection was ever opened, and more than once.
func (rc *RequestConn) Close() error {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.conn == nil {
		return nil
	}
	err := rc.conn.Close()
	rc.conn = nil
	rc.session = nil
	return err
}

// WithRequestConn attaches rc to ctx so that Session finds it.
func WithRequestConn(ctx context.Context, rc *RequestConn) context.Context {
	return context.WithValue(ctx, requestConnKey{}, rc)
}

// RequestConnFrom returns the accessor attached to ctx, if any.
func RequestConnFrom(ctx context.Context) (*RequestConn, bool) {
	rc, ok := ctx.Value(requestConnKey{}).(*RequestConn)
	return rc, ok
}

// Session returns the request-scoped session when ctx carries one, and a
// plain pooled session otherwise (CLI commands, tests).
func Session(ctx context.Context, db *gorm.DB) *gorm.DB {
	rc, ok := RequestConnFrom(ctx)
	if !ok {
		return db.WithContext(ctx)
	}
	session, err := rc.Get(ctx)
	if err != nil {
		tx := db.WithContext(ctx)
		_ = tx.AddError(err)
		return tx
	}
	return session
}

// Middleware gives every request its own RequestConn and closes it once the
// handler chain has finished.
func Middleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		rc := NewRequestConn(db)
		c.Request = c.Request.WithContext(WithRequestConn(c.Request.Context(), rc))
		defer func() {
			if err := rc.Close(); err != nil {
				slog.Warn("Failed to release request connection", "path", c.Request.URL.Path, "error", err)
			}
		}()
		c.Next()
	}
}
