// services/stats_service.go
package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/lvnzip001/butterworth-bnb/models"

	"gorm.io/gorm"
)

// StatsService reads the permanent booking archive and produces the numbers
// behind the dashboard: headline KPIs, per-month room usage, the paginated
// archive table and the monthly summary.
type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

type KPIReport struct {
	TotalBookings   int     `json:"total_bookings"`
	TotalRevenue    float64 `json:"total_revenue"`
	TotalNights     int     `json:"total_nights"`
	AverageStay     float64 `json:"average_stay"`
	AverageBooking  float64 `json:"average_booking_value"`
	ReturningGuests int     `json:"returning_guests"`
}

// RoomUsage is one room type's share of a month.
type RoomUsage struct {
	RoomTypeID   uint    `json:"room_type_id"`
	RoomTypeName string  `json:"room_type_name"`
	Bookings     int     `json:"bookings"`
	Nights       int     `json:"nights"`
	Revenue      float64 `json:"revenue"`
	RevenueShare float64 `json:"revenue_share"`
	Occupancy    float64 `json:"occupancy"`
}

type MonthUsage struct {
	Month string      `json:"month"` // YYYY-MM
	Rooms []RoomUsage `json:"rooms"`
}

type MonthSummary struct {
	Month    string  `json:"month"`
	Bookings int     `json:"bookings"`
	Nights   int     `json:"nights"`
	Revenue  float64 `json:"revenue"`
}

// KPIs aggregates the whole archive.
func (s *StatsService) KPIs() (*KPIReport, error) {
	rows, err := s.fetchArchive()
	if err != nil {
		return nil, err
	}
	report := ComputeKPIs(rows)
	return &report, nil
}

// Usage breaks the archive down per month and room type. Room type names and
// quantities come from bnb_room_type; archived rows pointing at a deleted
// room type still count, under a placeholder name.
func (s *StatsService) Usage() ([]MonthUsage, error) {
	rows, err := s.fetchArchive()
	if err != nil {
		return nil, err
	}
	var roomTypes []models.RoomType
	if err := s.DB.Find(&roomTypes).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve room types: %w", err)
	}
	return ComputeUsage(rows, roomTypes), nil
}

// ArchiveList pages through archived bookings, newest stay first.
func (s *StatsService) ArchiveList(offset, limit int) ([]models.ArchiveBooking, int64, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	var total int64
	if err := s.DB.Model(&models.ArchiveBooking{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count archive: %w", err)
	}
	var rows []models.ArchiveBooking
	if err := s.DB.
		Order("checkin_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve archive: %w", err)
	}
	return rows, total, nil
}

// MonthlySummary rolls the archive up to one row per month.
func (s *StatsService) MonthlySummary() ([]MonthSummary, error) {
	rows, err := s.fetchArchive()
	if err != nil {
		return nil, err
	}
	return ComputeMonthlySummary(rows), nil
}

func (s *StatsService) fetchArchive() ([]models.ArchiveBooking, error) {
	var rows []models.ArchiveBooking
	if err := s.DB.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve archive: %w", err)
	}
	return rows, nil
}

// ComputeKPIs is the pure aggregation behind KPIs.
func ComputeKPIs(rows []models.ArchiveBooking) KPIReport {
	var report KPIReport
	guests := make(map[string]int)
	for _, r := range rows {
		report.TotalBookings++
		report.TotalRevenue += r.TotalCost
		report.TotalNights += r.Nights()
		guests[r.GuestEmail]++
	}
	if report.TotalBookings > 0 {
		report.AverageStay = float64(report.TotalNights) / float64(report.TotalBookings)
		report.AverageBooking = report.TotalRevenue / float64(report.TotalBookings)
	}
	for _, n := range guests {
		if n > 1 {
			report.ReturningGuests++
		}
	}
	return report
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

func daysInMonth(key string) int {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return 30
	}
	return t.AddDate(0, 1, -1).Day()
}

// ComputeUsage groups archived bookings by check-in month and room type.
// RevenueShare is the room type's fraction of that month's revenue; Occupancy
// is nights sold divided by nights on offer (quantity x days in month).
func ComputeUsage(rows []models.ArchiveBooking, roomTypes []models.RoomType) []MonthUsage {
	names := make(map[uint]string, len(roomTypes))
	quantities := make(map[uint]int, len(roomTypes))
	for _, rt := range roomTypes {
		names[rt.ID] = rt.AccommodationType
		quantities[rt.ID] = rt.Quantity
	}

	type bucket struct {
		bookings int
		nights   int
		revenue  float64
	}
	months := make(map[string]map[uint]*bucket)
	for _, r := range rows {
		key := monthKey(r.CheckinDate)
		if months[key] == nil {
			months[key] = make(map[uint]*bucket)
		}
		b := months[key][r.RoomTypeID]
		if b == nil {
			b = &bucket{}
			months[key][r.RoomTypeID] = b
		}
		b.bookings++
		b.nights += r.Nights()
		b.revenue += r.TotalCost
	}

	keys := make([]string, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]MonthUsage, 0, len(keys))
	for _, key := range keys {
		var monthRevenue float64
		for _, b := range months[key] {
			monthRevenue += b.revenue
		}

		ids := make([]uint, 0, len(months[key]))
		for id := range months[key] {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		mu := MonthUsage{Month: key}
		for _, id := range ids {
			b := months[key][id]
			usage := RoomUsage{
				RoomTypeID:   id,
				RoomTypeName: names[id],
				Bookings:     b.bookings,
				Nights:       b.nights,
				Revenue:      b.revenue,
			}
			if usage.RoomTypeName == "" {
				usage.RoomTypeName = fmt.Sprintf("room type %d", id)
			}
			if monthRevenue > 0 {
				usage.RevenueShare = b.revenue / monthRevenue
			}
			if q := quantities[id]; q > 0 {
				usage.Occupancy = float64(b.nights) / float64(q*daysInMonth(key))
			}
			mu.Rooms = append(mu.Rooms, usage)
		}
		out = append(out, mu)
	}
	return out
}

// ComputeMonthlySummary rolls the archive up per check-in month, oldest first.
func ComputeMonthlySummary(rows []models.ArchiveBooking) []MonthSummary {
	months := make(map[string]*MonthSummary)
	for _, r := range rows {
		key := monthKey(r.CheckinDate)
		m := months[key]
		if m == nil {
			m = &MonthSummary{Month: key}
			months[key] = m
		}
		m.Bookings++
		m.Nights += r.Nights()
		m.Revenue += r.TotalCost
	}
	keys := make([]string, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]MonthSummary, 0, len(keys))
	for _, k := range keys {
		out = append(out, *months[k])
	}
	return out
}
