package service

import (
	"sort"
	"time"

	"go-restaurant-ws/internal/model"
	"go-restaurant-ws/internal/repository"
)

// DailySales is one bar of the daily sales chart.
type DailySales struct {
	Date  string  `json:"date"` // DD/MM
	Value float64 `json:"value"`
}

type TopProduct struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type SalesReport struct {
	TotalSales           float64      `json:"total_sales"`
	TotalSalesDisplay    string       `json:"total_sales_display"`
	OrderCount           int          `json:"order_count"`
	AverageTicket        float64      `json:"average_ticket"`
	AverageTicketDisplay string       `json:"average_ticket_display"`
	OccupancyRate        float64      `json:"occupancy_rate"`
	Daily                []DailySales `json:"daily"`
	TopProducts          []TopProduct `json:"top_products"`
}

type ReportService interface {
	GetSalesReport(startDate, endDate time.Time) (*SalesReport, error)
}

type reportService struct {
	orderRepo repository.OrderRepository
	tableRepo repository.TableRepository
}

func NewReportService(oRepo repository.OrderRepository, tRepo repository.TableRepository) ReportService {
	return &reportService{orderRepo: oRepo, tableRepo: tRepo}
}

// GetSalesReport aggregates live orders and tables. Cancelled orders are
// excluded from every sales figure.
func (s *reportService) GetSalesReport(startDate, endDate time.Time) (*SalesReport, error) {
	orders, err := s.orderRepo.FindAll()
	if err != nil {
		return nil, err
	}

	// compare on whole days; order timestamps only carry date precision here
	start := dayStart(startDate)
	end := dayStart(endDate)

	report := &SalesReport{
		Daily:       []DailySales{},
		TopProducts: []TopProduct{},
	}

	dailyTotals := make(map[string]float64)
	productTotals := make(map[string]*TopProduct)

	for i := range orders {
		order := &orders[i]
		if order.Status == model.OrderCancelled {
			continue
		}
		day, err := time.Parse("2006-01-02", dayOf(order.CreatedAt))
		if err != nil || day.Before(start) || day.After(end) {
			continue
		}

		report.TotalSales += order.Total
		report.OrderCount++
		dailyTotals[day.Format("2006-01-02")] += order.Total

		for _, item := range order.Items {
			tp, ok := productTotals[item.Name]
			if !ok {
				tp = &TopProduct{Name: item.Name}
				productTotals[item.Name] = tp
			}
			tp.Quantity += item.Quantity
			tp.Revenue += item.Price * float64(item.Quantity)
		}
	}

	if report.OrderCount > 0 {
		report.AverageTicket = report.TotalSales / float64(report.OrderCount)
	}
	report.TotalSalesDisplay = model.FormatBRL(report.TotalSales)
	report.AverageTicketDisplay = model.FormatBRL(report.AverageTicket)

	days := make([]string, 0, len(dailyTotals))
	for day := range dailyTotals {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		parsed, _ := time.Parse("2006-01-02", day)
		report.Daily = append(report.Daily, DailySales{
			Date:  parsed.Format("02/01"),
			Value: dailyTotals[day],
		})
	}

	for _, tp := range productTotals {
		report.TopProducts = append(report.TopProducts, *tp)
	}
	sort.Slice(report.TopProducts, func(i, j int) bool {
		if report.TopProducts[i].Quantity != report.TopProducts[j].Quantity {
			return report.TopProducts[i].Quantity > report.TopProducts[j].Quantity
		}
		return report.TopProducts[i].Name < report.TopProducts[j].Name
	})

	tables, err := s.tableRepo.FindAll()
	if err != nil {
		return nil, err
	}
	if len(tables) > 0 {
		occupied := 0
		for i := range tables {
			if tables[i].Status == model.TableOccupied {
				occupied++
			}
		}
		report.OccupancyRate = float64(occupied) / float64(len(tables))
	}

	return report, nil
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// dayOf strips the time part off an order's display timestamp.
func dayOf(createdAt string) string {
	if len(createdAt) >= 10 {
		return createdAt[:10]
	}
	return createdAt
}
