// Package dbmetrics оборачивает *sql.DB и собирает метрики длительности запросов
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

// Observer принимает измерения запросов
type Observer interface {
	ObserveQuery(operation string, duration time.Duration, err error)
}

// PoolObserver принимает снимки статистики пула соединений
type PoolObserver interface {
	ObservePoolStats(stats sql.DBStats)
}

// Collector принимает и запросы, и статистику пула
type Collector interface {
	Observer
	PoolObserver
}

// DefaultPoolStatsInterval период сбора статистики пула в WrapWithDefault
const DefaultPoolStatsInterval = 15 * time.Second

// DB обертка над *sql.DB с метриками
type DB struct {
	db       *sql.DB
	observer Observer
}

// Wrap оборачивает соединение с базой данных
func Wrap(db *sql.DB, observer Observer) *DB {
	return &DB{db: db, observer: observer}
}

// WrapWithDefault оборачивает соединение и запускает сбор статистики пула
// с интервалом DefaultPoolStatsInterval до закрытия stopCh
func WrapWithDefault(db *sql.DB, collector Collector, stopCh <-chan struct{}) *DB {
	go CollectPoolStats(db, collector, DefaultPoolStatsInterval, stopCh)
	return Wrap(db, collector)
}

// CollectPoolStats периодически передает db.Stats() наблюдателю.
// Первый снимок снимается сразу, возврат - после закрытия stopCh.
func CollectPoolStats(db *sql.DB, observer PoolObserver, interval time.Duration, stopCh <-chan struct{}) {
	observer.ObservePoolStats(db.Stats())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			observer.ObservePoolStats(db.Stats())
		}
	}
}

// ExecContext выполняет запрос без результата
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observer.ObserveQuery("exec", time.Since(start), err)
	return res, err
}

// QueryContext выполняет запрос, возвращающий строки
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observer.ObserveQuery("query", time.Since(start), err)
	return rows, err
}

// QueryRowContext выполняет запрос, возвращающий одну строку.
// Ошибка становится известна только при Scan, поэтому учитывается как успешный запрос.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observer.ObserveQuery("query_row", time.Since(start), nil)
	return row
}

// Unwrap возвращает исходное соединение
func (d *DB) Unwrap() *sql.DB {
	return d.db
}
