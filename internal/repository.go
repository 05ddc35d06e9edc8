package internal

import (
	"context"
	"database/sql"
	"embed"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/prodsched/portal/internal/model"
)

const orderFields = "wo, quote, po_number, status, customer_name, model_description, scheduled_date, completion_date, price"

//go:embed migrations/*.sql
var embedMigrations embed.FS

// IRepository is the portal's data provider boundary. The backing store is
// maintained elsewhere; the portal only reads.
type IRepository interface {
	GetOrders(context.Context) ([]model.OrderRecord, error)
	GetDataVersion(context.Context) string
}

type Repository struct {
	conn   *pgxpool.Pool
	logger *zap.SugaredLogger
}

func NewRepository(ctx context.Context, connString string, logger *zap.SugaredLogger) (*Repository, error) {
	if err := runMigrations(connString); err != nil {
		return nil, err
	}

	conn, err := pgxpool.Connect(ctx, connString)
	if err != nil {
		return nil, err
	}

	return &Repository{conn: conn, logger: logger}, nil
}

func runMigrations(connString string) error {
	goose.SetBaseFS(embedMigrations)

	db, err := sql.Open("pgx", connString)
	if err != nil {
		return err
	}
	defer db.Close()

	if err = goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, "migrations")
}

func (r Repository) GetOrders(ctx context.Context) ([]model.OrderRecord, error) {
	rows, err := r.conn.Query(ctx, "SELECT "+orderFields+" FROM orders ORDER BY scheduled_date, wo")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []model.OrderRecord
	for rows.Next() {
		var (
			o                     model.OrderRecord
			quote, po, cust, desc *string
			status                *string
			scheduled, completed  *time.Time
			price                 decimal.NullDecimal
		)
		err = rows.Scan(&o.WO, &quote, &po, &status, &cust, &desc, &scheduled, &completed, &price)
		if err != nil {
			return nil, err
		}

		o.Quote = deref(quote)
		o.PONumber = deref(po)
		o.Status = deref(status)
		o.CustomerName = deref(cust)
		o.ModelDescription = deref(desc)
		o.ScheduledDate = toDate(scheduled)
		o.CompletionDate = toDate(completed)
		o.Price = price

		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// GetDataVersion reads the store's cache-buster value. Any failure degrades
// to "0" so a broken meta row never blocks the portal.
func (r Repository) GetDataVersion(ctx context.Context) string {
	var v string
	err := r.conn.QueryRow(ctx, "SELECT value FROM app_meta WHERE key = 'data_version'").Scan(&v)
	if err != nil {
		r.logger.Warnf("data_version lookup failed: %s", err)
		return "0"
	}
	return v
}

func (r Repository) Close() {
	r.conn.Close()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toDate(t *time.Time) model.Date {
	if t == nil {
		return model.Date{}
	}
	return model.NewDate(t.Year(), t.Month(), t.Day())
}
