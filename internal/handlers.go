package internal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/prodsched/portal/internal/model"
)

type Handlers struct {
	Service   IService
	jwtSecret string
	logger    *zap.SugaredLogger
}

func NewHandlers(Service IService, jwtSecret string, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{Service: Service, jwtSecret: jwtSecret, logger: logger}
}

type loginInput struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (h *Handlers) Login(c *fiber.Ctx) error {
	var i loginInput

	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on login request: %s", err.Error())
		return c.SendStatus(fiber.StatusBadRequest)
	}

	t, customers, err := h.Service.Login(c.Context(), i.Login, i.Password)
	if err != nil {
		h.logger.Errorf("Error on login request: %s", err.Error())
		if errors.Is(err, ErrInvalidCredentials) {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		OperationErrorsTotal.WithLabelValues("login").Inc()
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	setAuthCookie(c, t)
	LoginsTotal.Inc()
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"customers": customers})
}

func (h *Handlers) GetOrders(c *fiber.Ctx) error {
	customers, err := h.customersFromRequest(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	orders, err := h.Service.MyOrders(c.Context(), customers, filtersFromQuery(c))
	if err != nil {
		if errors.Is(err, ErrNoRecords) {
			return c.SendStatus(fiber.StatusNoContent)
		}
		OperationErrorsTotal.WithLabelValues("orders").Inc()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Error on orders request", "data": err})
	}

	return c.Status(fiber.StatusOK).JSON(orders)
}

func (h *Handlers) GetDataVersion(c *fiber.Ctx) error {
	if _, err := h.customersFromRequest(c); err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data_version": h.Service.DataVersion(c.Context())})
}

func (h *Handlers) GetStats(c *fiber.Ctx) error {
	customers, err := h.customersFromRequest(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	stats, err := h.Service.OrderStats(c.Context(), customers)
	if err != nil {
		OperationErrorsTotal.WithLabelValues("stats").Inc()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Error on stats request", "data": err})
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}

func (h *Handlers) GetCalendarEvents(c *fiber.Ctx) error {
	customers, err := h.customersFromRequest(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	events, err := h.Service.GetCalendarEvents(c.Context(), customers)
	if err != nil {
		OperationErrorsTotal.WithLabelValues("events").Inc()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Error on calendar request", "data": err})
	}

	return c.Status(fiber.StatusOK).JSON(events)
}

func (h *Handlers) GetPrintView(c *fiber.Ctx) error {
	customers, err := h.customersFromRequest(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	doc, err := h.Service.MonthlyPrintView(c.Context(), customers, month, year)
	if err != nil {
		if errors.Is(err, ErrMonthOutOfRange) || errors.Is(err, ErrYearOutOfRange) {
			return c.SendStatus(fiber.StatusUnprocessableEntity)
		}
		OperationErrorsTotal.WithLabelValues("print").Inc()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Error on print request", "data": err})
	}

	PrintRendersTotal.Inc()

	monthName := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("January")
	filename := fmt.Sprintf("schedule_%s_%s_%d.html", safeName(customers), monthName, year)
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Status(fiber.StatusOK).SendString(doc)
}

func (h *Handlers) ExportExcel(c *fiber.Ctx) error {
	customers, err := h.customersFromRequest(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	b, err := h.Service.ExcelExport(c.Context(), customers)
	if err != nil {
		OperationErrorsTotal.WithLabelValues("excel").Inc()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Error on export request", "data": err})
	}

	ExcelExportsTotal.Inc()

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="my_orders_`+safeName(customers)+`.xlsx"`)
	return c.Status(fiber.StatusOK).Send(b)
}

// customersFromRequest accepts either auth path: a ?token= URL token, or the
// JWT cookie set by Login.
func (h *Handlers) customersFromRequest(c *fiber.Ctx) ([]string, error) {
	if token := c.Query("token"); token != "" {
		return h.Service.CustomersFromToken(token)
	}
	return h.customersFromJWT(c.Cookies("token"))
}

func (h *Handlers) customersFromJWT(tokenString string) ([]string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	raw, ok := claims["customers"].([]interface{})
	if !ok || len(raw) == 0 {
		return nil, ErrInvalidToken
	}
	customers := make([]string, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, ErrInvalidToken
		}
		customers = append(customers, s)
	}
	return customers, nil
}

func filtersFromQuery(c *fiber.Ctx) Filters {
	f := Filters{
		Quote:       c.Query("quote"),
		QuoteMatch:  matchMode(c.Query("quote_match")),
		PO:          c.Query("po"),
		POMatch:     matchMode(c.Query("po_match")),
		Status:      c.Query("status"),
		StatusMatch: matchMode(c.Query("status_match")),
		Customer:    c.Query("customer"),
		Model:       c.Query("model"),
		ModelMatch:  matchMode(c.Query("model_match")),
		DateFilter:  DateFilterNone,
	}

	if d := c.Query("date"); d != "" {
		f.DateFilter = DateFilterExact
		f.ExactDate = model.ParseDate(d)
		return f
	}
	month, merr := strconv.Atoi(c.Query("month"))
	year, yerr := strconv.Atoi(c.Query("year"))
	if merr == nil && yerr == nil {
		f.DateFilter = DateFilterMonth
		f.Month = month
		f.Year = year
	}
	return f
}

func matchMode(s string) MatchMode {
	if MatchMode(s) == MatchExact {
		return MatchExact
	}
	return MatchContains
}

// safeName flattens the customers label into a filename fragment the same
// way the portal UI always has: spaces to underscores, commas and slashes
// dropped.
func safeName(customers []string) string {
	s := strings.Join(customers, ", ")
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ",", "")
	return strings.ReplaceAll(s, "/", "")
}

func setAuthCookie(c *fiber.Ctx, token string) {
	cookie := &fiber.Cookie{
		Name:    "token",
		Value:   token,
		Path:    "/",
		Expires: time.Now().Add(72 * time.Hour),
	}

	c.Cookie(cookie)
}
