// services/customer_service.go
package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lvnzip001/butterworth-bnb/models"
	"github.com/lvnzip001/butterworth-bnb/utils"

	"gorm.io/gorm"
)

// CustomerService derives the guest directory from paid bookings, live and
// archived, and sends outbound email/SMS to guests.
type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

// Customer is a deduplicated guest with their stay totals.
type Customer struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Bookings   int     `json:"bookings"`
	TotalSpent float64 `json:"total_spent"`
	LastCode   string  `json:"last_booking_id"`
}

// List unions paid live bookings with the archive and deduplicates guests by
// email plus name, so two people sharing an address stay distinct. Sorted by
// total spend, biggest first.
func (s *CustomerService) List() ([]Customer, error) {
	var live []models.Booking
	if err := s.DB.Where("status = ?", models.StatusComplete).Find(&live).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	var archived []models.ArchiveBooking
	if err := s.DB.Find(&archived).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve archive: %w", err)
	}

	records := make([]models.BookingRecord, 0, len(live)+len(archived))
	for _, b := range live {
		records = append(records, b.BookingRecord)
	}
	for _, a := range archived {
		records = append(records, a.BookingRecord)
	}
	return DedupeCustomers(records), nil
}

func customerKey(r models.BookingRecord) string {
	return strings.ToLower(strings.TrimSpace(r.GuestEmail)) + "|" +
		strings.ToLower(strings.TrimSpace(r.GuestName))
}

// DedupeCustomers folds booking records into one Customer per email|name key.
func DedupeCustomers(records []models.BookingRecord) []Customer {
	byKey := make(map[string]*Customer)
	order := make([]string, 0)
	for _, r := range records {
		key := customerKey(r)
		c := byKey[key]
		if c == nil {
			c = &Customer{
				Name:  strings.TrimSpace(r.GuestName),
				Email: strings.TrimSpace(r.GuestEmail),
				Phone: strings.TrimSpace(r.GuestPhone),
			}
			byKey[key] = c
			order = append(order, key)
		}
		c.Bookings++
		c.TotalSpent += r.TotalCost
		c.LastCode = r.BookingCode
		if c.Phone == "" {
			c.Phone = strings.TrimSpace(r.GuestPhone)
		}
	}
	out := make([]Customer, 0, len(order))
	for _, key := range order {
		out = append(out, *byKey[key])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalSpent > out[j].TotalSpent })
	return out
}

// EmailCustomer sends a message to a guest address.
func (s *CustomerService) EmailCustomer(to, subject, message string) error {
	if strings.TrimSpace(to) == "" || strings.TrimSpace(subject) == "" || strings.TrimSpace(message) == "" {
		return fmt.Errorf("%w: recipient, subject and message are required", ErrValidation)
	}
	return utils.SendCustomerEmail(to, subject, message)
}

// SMSCustomer sends a short text message to a guest number.
func (s *CustomerService) SMSCustomer(to, message string) error {
	if strings.TrimSpace(to) == "" || strings.TrimSpace(message) == "" {
		return fmt.Errorf("%w: recipient and message are required", ErrValidation)
	}
	return utils.SendCustomerSMS(to, message)
}
