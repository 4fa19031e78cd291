package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvnzip001/butterworth-bnb/models"
)

func bookingColumns() []string {
	return []string{
		"id", "booking_id", "bnb_id", "room_type_id",
		"guest_name", "guest_email", "guest_phone",
		"checkin_date", "checkout_date", "adults", "children",
		"total_cost", "status", "created_at",
	}
}

func bookingRow(id uint, status string, checkin, checkout time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(bookingColumns()).AddRow(
		id, "BKX7R2MA9Q", testBnbID, testRoomTypeID,
		"Nomvula Dlamini", "nomvula@example.com", "+27 82 000 1111",
		checkin, checkout, 2, 0,
		1200.0, status, time.Now().UTC(),
	)
}

func TestUpdateStatusPendingToCompleteConsumesInventory(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewBookingService(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `bookings` (.+)FOR UPDATE").
		WillReturnRows(bookingRow(5, models.StatusPending, date(2026, 3, 10), date(2026, 3, 12)))
	mock.ExpectExec("UPDATE `bookings` SET `status`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	for i := 0; i < 2; i++ {
		mock.ExpectQuery("SELECT (.+) FROM `availability`").
			WillReturnRows(availabilityRow(uint(i+1), date(2026, 3, 10+i), 3))
		mock.ExpectExec("UPDATE `availability` SET `available_quantity`").
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	require.NoError(t, svc.UpdateStatus(5, models.StatusComplete))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusCompleteToPendingReleasesInventory(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewBookingService(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `bookings` (.+)FOR UPDATE").
		WillReturnRows(bookingRow(5, models.StatusComplete, date(2026, 3, 10), date(2026, 3, 11)))
	mock.ExpectExec("UPDATE `bookings` SET `status`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM `availability`").
		WillReturnRows(availabilityRow(1, date(2026, 3, 10), 0))
	mock.ExpectExec("UPDATE `availability` SET `available_quantity`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.UpdateStatus(5, models.StatusPending))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusNoopWhenUnchanged(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewBookingService(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `bookings` (.+)FOR UPDATE").
		WillReturnRows(bookingRow(5, models.StatusPending, date(2026, 3, 10), date(2026, 3, 12)))
	mock.ExpectCommit()

	require.NoError(t, svc.UpdateStatus(5, models.StatusPending))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	gdb, _ := newMockDB(t)
	svc := NewBookingService(gdb)

	err := svc.UpdateStatus(5, "cancelled")
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatusRollsBackWhenInventoryExhausted(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewBookingService(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `bookings` (.+)FOR UPDATE").
		WillReturnRows(bookingRow(5, models.StatusPending, date(2026, 3, 10), date(2026, 3, 11)))
	mock.ExpectExec("UPDATE `bookings` SET `status`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM `availability`").
		WillReturnRows(availabilityRow(1, date(2026, 3, 10), 0))
	mock.ExpectRollback()

	err := svc.UpdateStatus(5, models.StatusComplete)
	require.ErrorIs(t, err, ErrNegativeAvailability)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePendingBookingArchivesWithoutAdjustment(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewBookingService(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `bookings` (.+)FOR UPDATE").
		WillReturnRows(bookingRow(9, models.StatusPending, date(2026, 4, 1), date(2026, 4, 3)))
	mock.ExpectExec("INSERT INTO `archive_cancelled_no_payment`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("DELETE FROM `bookings`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.Delete(9, "guest no-show", ""))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCompleteBookingReleasesInventoryAndArchivesRefund(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewBookingService(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `bookings` (.+)FOR UPDATE").
		WillReturnRows(bookingRow(9, models.StatusComplete, date(2026, 4, 1), date(2026, 4, 3)))
	for i := 0; i < 2; i++ {
		mock.ExpectQuery("SELECT (.+) FROM `availability`").
			WillReturnRows(availabilityRow(uint(i+1), date(2026, 4, 1+i), 1))
		mock.ExpectExec("UPDATE `availability` SET `available_quantity`").
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectExec("INSERT INTO `archive_refunds`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("DELETE FROM `bookings`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.Delete(9, "family emergency", models.RefundRefunded))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCompleteBookingRejectsUnknownRefundStatus(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewBookingService(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `bookings` (.+)FOR UPDATE").
		WillReturnRows(bookingRow(9, models.StatusComplete, date(2026, 4, 1), date(2026, 4, 3)))
	mock.ExpectRollback()

	err := svc.Delete(9, "typo", "maybe_later")
	require.ErrorIs(t, err, ErrInvalidRefundStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMissingBooking(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewBookingService(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `bookings` (.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows(bookingColumns()))
	mock.ExpectRollback()

	err := svc.Delete(404, "", "")
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCreateBookingValidation(t *testing.T) {
	gdb, _ := newMockDB(t)
	svc := NewBookingService(gdb)

	base := CreateBookingInput{
		BnbID:        testBnbID,
		RoomTypeID:   testRoomTypeID,
		GuestName:    "Nomvula Dlamini",
		GuestEmail:   "nomvula@example.com",
		GuestPhone:   "+27 82 000 1111",
		CheckinDate:  date(2026, 4, 1),
		CheckoutDate: date(2026, 4, 3),
		Adults:       2,
		TotalCost:    1200,
	}

	missingName := base
	missingName.GuestName = " "
	_, err := svc.CreateBooking(missingName)
	assert.ErrorIs(t, err, ErrValidation)

	badDates := base
	badDates.CheckoutDate = badDates.CheckinDate
	_, err = svc.CreateBooking(badDates)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	freeStay := base
	freeStay.TotalCost = 0
	_, err = svc.CreateBooking(freeStay)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateBookingInsertsPending(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewBookingService(gdb)

	mock.ExpectQuery("SELECT (.+) FROM `bnb_room_type`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "bnb_id", "quantity"}).
			AddRow(testRoomTypeID, testBnbID, 4))
	mock.ExpectQuery("SELECT (.+) FROM `bookings`").
		WillReturnRows(sqlmock.NewRows(bookingColumns()))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `bookings`").
		WillReturnResult(sqlmock.NewResult(12, 1))
	mock.ExpectCommit()

	booking, err := svc.CreateBooking(CreateBookingInput{
		BnbID:        testBnbID,
		RoomTypeID:   testRoomTypeID,
		GuestName:    "Nomvula Dlamini",
		GuestEmail:   "nomvula@example.com",
		GuestPhone:   "+27 82 000 1111",
		CheckinDate:  date(2026, 4, 1),
		CheckoutDate: date(2026, 4, 3),
		Adults:       2,
		TotalCost:    1200,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, booking.Status)
	assert.True(t, len(booking.BookingCode) == 10 && booking.BookingCode[0] == 'B')
	assert.Equal(t, 2, booking.Nights())
	assert.NoError(t, mock.ExpectationsWereMet())
}
