package internal

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/prodsched/portal/internal/model"
)

type IService interface {
	Login(context.Context, string, string) (string, []string, error)
	CustomersFromToken(string) ([]string, error)
	GetJWTToken([]string) (string, error)
	DataVersion(context.Context) string
	MyOrders(context.Context, []string, Filters) ([]model.OrderRecord, error)
	OrderStats(context.Context, []string) (model.Stats, error)
	GetCalendarEvents(context.Context, []string) ([]Event, error)
	MonthlyPrintView(context.Context, []string, int, int) (string, error)
	ExcelExport(context.Context, []string) ([]byte, error)
}

type Service struct {
	Repository IRepository
	secrets    *Secrets
	jwtSecret  string
	logger     *zap.SugaredLogger
}

func NewService(Repository IRepository, secrets *Secrets, jwtSecret string, logger *zap.SugaredLogger) *Service {
	return &Service{Repository: Repository, secrets: secrets, jwtSecret: jwtSecret, logger: logger}
}

// Login checks the credentials against the access file and mints a session
// token carrying the user's viewable customer names.
func (s Service) Login(_ context.Context, login, password string) (string, []string, error) {
	customers, ok := s.secrets.VerifyLogin(login, password)
	if !ok {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.GetJWTToken(customers)
	if err != nil {
		return "", nil, err
	}
	return token, customers, nil
}

// CustomersFromToken resolves a login-free URL token.
func (s Service) CustomersFromToken(token string) ([]string, error) {
	customers, ok := s.secrets.ResolveToken(token)
	if !ok {
		return nil, ErrInvalidToken
	}
	return customers, nil
}

func (s Service) GetJWTToken(customers []string) (string, error) {
	claims := jwt.MapClaims{
		"customers": customers,
		"exp":       time.Now().Add(time.Hour * 72).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	t, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}

	return t, nil
}

// DataVersion exposes the store's cache-buster so clients can re-key their
// calendar widgets when the order book is republished.
func (s Service) DataVersion(ctx context.Context) string {
	return s.Repository.GetDataVersion(ctx)
}

// MyOrders returns the viewer's own records after the table filters run.
func (s Service) MyOrders(ctx context.Context, customers []string, f Filters) ([]model.OrderRecord, error) {
	records, err := s.Repository.GetOrders(ctx)
	if err != nil {
		return nil, err
	}

	mine := ApplyFilters(FilterMine(records, customers), f)
	if len(mine) == 0 {
		return nil, ErrNoRecords
	}
	return mine, nil
}

func (s Service) OrderStats(ctx context.Context, customers []string) (model.Stats, error) {
	records, err := s.Repository.GetOrders(ctx)
	if err != nil {
		return model.Stats{}, err
	}

	var stats model.Stats
	stats.TotalValue = decimal.Zero
	for _, r := range FilterMine(records, customers) {
		stats.Orders++
		if r.Price.Valid {
			stats.TotalValue = stats.TotalValue.Add(r.Price.Decimal)
		}
		if !strings.EqualFold(strings.TrimSpace(r.Status), "completed") {
			stats.Pending++
		}
	}
	return stats, nil
}

// GetCalendarEvents builds the live calendar feed over the whole order book
// so taken dates show up as SOLD markers.
func (s Service) GetCalendarEvents(ctx context.Context, customers []string) ([]Event, error) {
	records, err := s.Repository.GetOrders(ctx)
	if err != nil {
		return nil, err
	}
	return CalendarEvents(records, customers), nil
}

// MonthlyPrintView renders the printable calendar. The year bound mirrors
// the picker the portal UI offers; the renderer itself takes any year.
func (s Service) MonthlyPrintView(ctx context.Context, customers []string, month, year int) (string, error) {
	if month < 1 || month > 12 {
		return "", ErrMonthOutOfRange
	}
	if year < 2020 || year > 2030 {
		return "", ErrYearOutOfRange
	}

	records, err := s.Repository.GetOrders(ctx)
	if err != nil {
		return "", err
	}

	return RenderMonthlyPrintView(records, month, year, customers), nil
}

func (s Service) ExcelExport(ctx context.Context, customers []string) ([]byte, error) {
	records, err := s.Repository.GetOrders(ctx)
	if err != nil {
		return nil, err
	}
	return BuildExcel(FilterMine(records, customers))
}
