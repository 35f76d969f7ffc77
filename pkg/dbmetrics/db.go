// Package dbmetrics wraps *sql.DB so every statement is counted and timed.
package dbmetrics

import (
	"context"
	"database/sql"
	"time"
)

// DBExecutor общий интерфейс для *sql.DB и *DB
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Observer получает результат каждого запроса
type Observer interface {
	ObserveDBQuery(kind string, err error, elapsed time.Duration)
}

// DB обертка над *sql.DB с учетом метрик
type DB struct {
	db       *sql.DB
	observer Observer
}

// Wrap оборачивает соединение; nil observer отключает учет
func Wrap(db *sql.DB, observer Observer) *DB {
	return &DB{db: db, observer: observer}
}

// Unwrap возвращает исходное соединение
func (d *DB) Unwrap() *sql.DB {
	return d.db
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	started := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe("exec", err, started)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	started := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe("query", err, started)
	return rows, err
}

// QueryRowContext учитывает только время: ошибка станет известна при Scan
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	started := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe("query_row", row.Err(), started)
	return row
}

func (d *DB) observe(kind string, err error, started time.Time) {
	if d.observer == nil {
		return
	}
	d.observer.ObserveDBQuery(kind, err, time.Since(started))
}
