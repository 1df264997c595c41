package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens a GORM connection backed by pgx and applies the schema.
// The schema is plain idempotent DDL rather than AutoMigrate so that decimal
// precision, FK behaviour and indexes stay exactly as written here.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// schema creates every table on an empty database and is a no-op afterwards.
// movimientos_inventario has no ON DELETE CASCADE: product deletion removes
// the ledger rows explicitly inside the same transaction.
var schema = []struct{ descr, sql string }{
	{"pgcrypto", `CREATE EXTENSION IF NOT EXISTS pgcrypto`},
	{"usuarios", `
CREATE TABLE IF NOT EXISTS usuarios (
  id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  nombre        TEXT        NOT NULL,
  correo        TEXT        NOT NULL,
  password_hash TEXT        NOT NULL,
  rol           VARCHAR(20) NOT NULL DEFAULT 'empleado'
                CHECK (rol IN ('empleado', 'administrador')),
  created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`},
	{"uni_usuarios_correo", `CREATE UNIQUE INDEX IF NOT EXISTS uni_usuarios_correo ON usuarios (correo)`},
	{"categorias", `
CREATE TABLE IF NOT EXISTS categorias (
  id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  nombre      TEXT NOT NULL,
  descripcion TEXT NOT NULL DEFAULT '',
  created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`},
	{"proveedores", `
CREATE TABLE IF NOT EXISTS proveedores (
  id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  nombre     TEXT NOT NULL,
  contacto   TEXT NOT NULL DEFAULT '',
  telefono   TEXT NOT NULL DEFAULT '',
  correo     TEXT NOT NULL DEFAULT '',
  direccion  TEXT NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`},
	{"vendedores_ambulantes", `
CREATE TABLE IF NOT EXISTS vendedores_ambulantes (
  id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  nombre     TEXT NOT NULL,
  telefono   TEXT NOT NULL DEFAULT '',
  direccion  TEXT NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`},
	{"productos", `
CREATE TABLE IF NOT EXISTS productos (
  id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  nombre       TEXT           NOT NULL,
  descripcion  TEXT           NOT NULL DEFAULT '',
  precio       DECIMAL(12,2)  NOT NULL,
  stock        INT            NOT NULL DEFAULT 0,
  id_categoria UUID           NOT NULL REFERENCES categorias (id),
  id_proveedor UUID           REFERENCES proveedores (id),
  created_at   TIMESTAMPTZ    NOT NULL DEFAULT NOW(),
  updated_at   TIMESTAMPTZ    NOT NULL DEFAULT NOW()
)`},
	{"idx_productos_nombre", `CREATE INDEX IF NOT EXISTS idx_productos_nombre ON productos (nombre)`},
	{"movimientos_inventario", `
CREATE TABLE IF NOT EXISTS movimientos_inventario (
  id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  id_producto      UUID          NOT NULL REFERENCES productos (id),
  tipo             VARCHAR(10)   NOT NULL CHECK (tipo IN ('entrada', 'salida')),
  cantidad         INT           NOT NULL CHECK (cantidad > 0),
  precio_unitario  DECIMAL(12,2) NOT NULL,
  total            DECIMAL(14,2) NOT NULL,
  fecha_movimiento TIMESTAMPTZ   NOT NULL DEFAULT NOW(),
  descripcion      TEXT          NOT NULL DEFAULT ''
)`},
	{"idx_movimientos_producto", `CREATE INDEX IF NOT EXISTS idx_movimientos_producto ON movimientos_inventario (id_producto)`},
	{"idx_movimientos_fecha", `CREATE INDEX IF NOT EXISTS idx_movimientos_fecha ON movimientos_inventario (fecha_movimiento)`},
	{"domicilios", `
CREATE TABLE IF NOT EXISTS domicilios (
  id                    UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  conductor_responsable TEXT        NOT NULL,
  matricula_vehiculo    TEXT        NOT NULL,
  observaciones         TEXT        NOT NULL DEFAULT '',
  producto              TEXT        NOT NULL,
  fecha_registro        TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`},
}

// RunMigrations applies the schema; used at startup and by integration tests.
func RunMigrations(db *gorm.DB) error {
	for _, s := range schema {
		if err := db.Exec(s.sql).Error; err != nil {
			return fmt.Errorf("schema %q: %w", s.descr, err)
		}
	}
	return nil
}
