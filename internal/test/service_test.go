package test

import (
	"context"
	"errors"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/prodsched/portal/internal"
	mock_internal "github.com/prodsched/portal/internal/mock"
	"github.com/prodsched/portal/internal/model"
)

const secretsFixture = `
customers:
  user1:
    password: hunter2
    customer_names: ["Acme Corp", "Beta Industries"]
tokens:
  abc123xyz: Acme Corp
`

var _ = Describe("Service", func() {
	var (
		srv internal.IService
		rep *mock_internal.MockIRepository
	)
	BeforeEach(func() {
		ctrl := gomock.NewController(GinkgoT())
		defer ctrl.Finish()

		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		secrets, err := internal.ParseSecrets([]byte(secretsFixture))
		Expect(err).ShouldNot(HaveOccurred())

		rep = mock_internal.NewMockIRepository(ctrl)

		srv = internal.NewService(rep, secrets, "secret", logger.Sugar())
	})

	orderBook := func() []model.OrderRecord {
		return []model.OrderRecord{
			{
				WO:            "WO-1",
				CustomerName:  "Acme Corp",
				Status:        "Open",
				ScheduledDate: model.NewDate(2026, time.March, 5),
				Price:         decimal.NewNullDecimal(decimal.NewFromInt(100)),
			},
			{
				WO:            "WO-2",
				CustomerName:  "Beta Industries",
				Status:        "Completed",
				ScheduledDate: model.NewDate(2026, time.March, 9),
				Price:         decimal.NewNullDecimal(decimal.NewFromInt(250)),
			},
			{
				WO:            "WO-3",
				CustomerName:  "Rival Inc",
				Status:        "Open",
				ScheduledDate: model.NewDate(2026, time.March, 9),
			},
		}
	}

	Context("Service tests", func() {
		It("Login without error", func() {
			ctx := context.Background()

			token, customers, err := srv.Login(ctx, "user1", "hunter2")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(token).ShouldNot(BeEmpty())
			Expect(customers).Should(Equal([]string{"Acme Corp", "Beta Industries"}))
		})
		It("Login with wrong password", func() {
			ctx := context.Background()

			_, _, err := srv.Login(ctx, "user1", "wrong")
			Expect(err).Should(HaveOccurred())
			Expect(err).Should(Equal(internal.ErrInvalidCredentials))
		})
		It("Login with unknown user", func() {
			ctx := context.Background()

			_, _, err := srv.Login(ctx, "ghost", "hunter2")
			Expect(err).Should(Equal(internal.ErrInvalidCredentials))
		})
		It("CustomersFromToken without error", func() {
			customers, err := srv.CustomersFromToken("abc123xyz")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(customers).Should(Equal([]string{"Acme Corp"}))
		})
		It("CustomersFromToken with unknown token", func() {
			_, err := srv.CustomersFromToken("nope")
			Expect(err).Should(Equal(internal.ErrInvalidToken))
		})
		It("DataVersion passes the store value through", func() {
			ctx := context.Background()

			rep.EXPECT().GetDataVersion(ctx).Return("17")

			Expect(srv.DataVersion(ctx)).Should(Equal("17"))
		})
		It("MyOrders returns only owned records", func() {
			ctx := context.Background()

			rep.EXPECT().GetOrders(ctx).Return(orderBook(), nil)

			orders, err := srv.MyOrders(ctx, []string{"acme corp", "Beta Industries"}, internal.Filters{})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(orders).Should(HaveLen(2))
			Expect(orders[0].WO).Should(Equal("WO-1"))
			Expect(orders[1].WO).Should(Equal("WO-2"))
		})
		It("MyOrders applies table filters", func() {
			ctx := context.Background()

			rep.EXPECT().GetOrders(ctx).Return(orderBook(), nil)

			orders, err := srv.MyOrders(ctx, []string{"Acme Corp", "Beta Industries"}, internal.Filters{
				Status:      "completed",
				StatusMatch: internal.MatchExact,
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(orders).Should(HaveLen(1))
			Expect(orders[0].WO).Should(Equal("WO-2"))
		})
		It("MyOrders with no owned records", func() {
			ctx := context.Background()

			rep.EXPECT().GetOrders(ctx).Return(orderBook(), nil)

			_, err := srv.MyOrders(ctx, []string{"Nobody"}, internal.Filters{})
			Expect(err).Should(HaveOccurred())
			Expect(err).Should(Equal(internal.ErrNoRecords))
		})
		It("MyOrders with repository error", func() {
			ctx := context.Background()
			e := errors.New("some error")

			rep.EXPECT().GetOrders(ctx).Return(nil, e)

			_, err := srv.MyOrders(ctx, []string{"Acme Corp"}, internal.Filters{})
			Expect(err).Should(Equal(e))
		})
		It("OrderStats counts owned orders, value and pending", func() {
			ctx := context.Background()

			rep.EXPECT().GetOrders(ctx).Return(orderBook(), nil)

			stats, err := srv.OrderStats(ctx, []string{"Acme Corp", "Beta Industries"})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(stats.Orders).Should(Equal(2))
			Expect(stats.Pending).Should(Equal(1))
			Expect(stats.TotalValue.Equal(decimal.NewFromInt(350))).Should(BeTrue())
		})
		It("GetCalendarEvents marks other customers' orders as sold", func() {
			ctx := context.Background()

			rep.EXPECT().GetOrders(ctx).Return(orderBook(), nil)

			events, err := srv.GetCalendarEvents(ctx, []string{"Acme Corp"})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(events).Should(HaveLen(3))
			Expect(events[0].ID).Should(Equal("WO-1"))
			Expect(events[1].ID).Should(Equal("sold_WO-2"))
			Expect(events[2].ID).Should(Equal("sold_WO-3"))
		})
		It("MonthlyPrintView without error", func() {
			ctx := context.Background()

			rep.EXPECT().GetOrders(ctx).Return(orderBook(), nil)

			doc, err := srv.MonthlyPrintView(ctx, []string{"Acme Corp"}, 3, 2026)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(doc).Should(ContainSubstring("March 2026"))
			Expect(doc).Should(ContainSubstring("WO: WO-1"))
			Expect(doc).Should(ContainSubstring("SOLD"))
		})
		It("MonthlyPrintView with month out of range", func() {
			ctx := context.Background()

			_, err := srv.MonthlyPrintView(ctx, []string{"Acme Corp"}, 13, 2026)
			Expect(err).Should(Equal(internal.ErrMonthOutOfRange))
		})
		It("MonthlyPrintView with year out of range", func() {
			ctx := context.Background()

			_, err := srv.MonthlyPrintView(ctx, []string{"Acme Corp"}, 3, 2031)
			Expect(err).Should(Equal(internal.ErrYearOutOfRange))
		})
		It("ExcelExport without error", func() {
			ctx := context.Background()

			rep.EXPECT().GetOrders(ctx).Return(orderBook(), nil)

			b, err := srv.ExcelExport(ctx, []string{"Acme Corp"})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(b).ShouldNot(BeEmpty())
		})
	})
})
