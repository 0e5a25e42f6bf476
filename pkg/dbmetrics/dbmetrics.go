package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// DefaultStatsInterval период опроса состояния пула соединений
const DefaultStatsInterval = 15 * time.Second

// DBExecutor минимальный интерфейс чтения из БД.
// Реализуется *sql.DB и *DB, поэтому репозитории не зависят от того, включены ли метрики.
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Recorder получатель метрик БД
type Recorder interface {
	ObserveDBQuery(operation string, duration time.Duration, err error)
	SetDBStats(stats sql.DBStats)
}

// DB обертка над *sql.DB, замеряющая длительность запросов
type DB struct {
	db       *sql.DB
	recorder Recorder
}

// Wrap оборачивает соединение и запускает опрос состояния пула с заданным интервалом.
// Опрос останавливается при закрытии stop.
func Wrap(db *sql.DB, recorder Recorder, interval time.Duration, stop <-chan struct{}) *DB {
	wrapped := &DB{db: db, recorder: recorder}
	go wrapped.collectStats(interval, stop)
	return wrapped
}

// WrapWithDefault Wrap с интервалом по умолчанию
func WrapWithDefault(db *sql.DB, recorder Recorder, stop <-chan struct{}) *DB {
	return Wrap(db, recorder, DefaultStatsInterval, stop)
}

// QueryContext выполняет запрос и фиксирует его длительность
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.recorder.ObserveDBQuery(Operation(query), time.Since(start), err)
	return rows, err
}

// QueryRowContext выполняет запрос одной строки.
// Ошибка *sql.Row становится известна только при Scan, поэтому фиксируется только длительность.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.recorder.ObserveDBQuery(Operation(query), time.Since(start), nil)
	return row
}

func (d *DB) collectStats(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.recorder.SetDBStats(d.db.Stats())
	for {
		select {
		case <-ticker.C:
			d.recorder.SetDBStats(d.db.Stats())
		case <-stop:
			return
		}
	}
}

// Operation строит метку операции вида "select:bookings" из текста запроса
func Operation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}

	verb := strings.ToLower(fields[0])
	for i, f := range fields {
		if strings.EqualFold(f, "FROM") && i+1 < len(fields) {
			return verb + ":" + strings.Trim(fields[i+1], `"(),;`)
		}
	}
	return verb
}
