package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testBnbID      = "0b9b3a4e-9f20-4c8e-8357-5d6a2f1c0d11"
	testRoomTypeID = uint(2)
)

func testStay(checkin, checkout time.Time) Stay {
	return Stay{
		BnbID:        testBnbID,
		RoomTypeID:   testRoomTypeID,
		CheckinDate:  checkin,
		CheckoutDate: checkout,
	}
}

func availabilityRow(id uint, d time.Time, qty int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "bnb_id", "room_type_id", "date", "available_quantity"}).
		AddRow(id, testBnbID, testRoomTypeID, d, qty)
}

func noAvailabilityRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "bnb_id", "room_type_id", "date", "available_quantity"})
}

func TestStayDatesExcludesCheckoutDay(t *testing.T) {
	dates := StayDates(date(2026, 3, 10), date(2026, 3, 13))
	require.Len(t, dates, 3)
	assert.Equal(t, date(2026, 3, 10), dates[0])
	assert.Equal(t, date(2026, 3, 11), dates[1])
	assert.Equal(t, date(2026, 3, 12), dates[2])
}

func TestStayDatesEmptyForSameDay(t *testing.T) {
	assert.Empty(t, StayDates(date(2026, 3, 10), date(2026, 3, 10)))
	assert.Empty(t, StayDates(date(2026, 3, 11), date(2026, 3, 10)))
}

// Three-night stay against counters sitting at 2: every night row is read
// and decremented exactly once, no more and no fewer.
func TestAdjustDecrementsEachNight(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewAvailabilityService(gdb)

	mock.ExpectBegin()
	for i := 0; i < 3; i++ {
		d := date(2026, 3, 10+i)
		mock.ExpectQuery("SELECT (.+) FROM `availability`").
			WillReturnRows(availabilityRow(uint(i+1), d, 2))
		mock.ExpectExec("UPDATE `availability` SET `available_quantity`").
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	err := svc.Adjust(testStay(date(2026, 3, 10), date(2026, 3, 13)), -1)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Decrement then increment round-trips tracked rows, but a night that had no
// row gets one on the way back: the decrement skipped it, the increment seeds
// it. The asymmetry is intended.
func TestAdjustDecrementIncrementAsymmetryOnMissingRow(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewAvailabilityService(gdb)

	stay := testStay(date(2026, 3, 10), date(2026, 3, 12))

	// -1: first night 2 -> 1, second night untracked, skipped.
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `availability`").
		WillReturnRows(availabilityRow(1, date(2026, 3, 10), 2))
	mock.ExpectExec("UPDATE `availability` SET `available_quantity`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM `availability`").
		WillReturnRows(noAvailabilityRows())
	mock.ExpectCommit()
	require.NoError(t, svc.Adjust(stay, -1))

	// +1: first night 1 -> 2, second night seeded at min(1, quantity).
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `availability`").
		WillReturnRows(availabilityRow(1, date(2026, 3, 10), 1))
	mock.ExpectExec("UPDATE `availability` SET `available_quantity`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM `availability`").
		WillReturnRows(noAvailabilityRows())
	mock.ExpectQuery("SELECT (.+) FROM `bnb_room_type`").
		WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(4))
	mock.ExpectExec("INSERT INTO `availability`").
		WithArgs(testBnbID, testRoomTypeID, date(2026, 3, 11), 1).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()
	require.NoError(t, svc.Adjust(stay, +1))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustAbortsWhenCounterWouldGoNegative(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewAvailabilityService(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `availability`").
		WillReturnRows(availabilityRow(1, date(2026, 3, 10), 1))
	mock.ExpectExec("UPDATE `availability` SET `available_quantity`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// Second night is already at zero, the whole operation rolls back.
	mock.ExpectQuery("SELECT (.+) FROM `availability`").
		WillReturnRows(availabilityRow(2, date(2026, 3, 11), 0))
	mock.ExpectRollback()

	err := svc.Adjust(testStay(date(2026, 3, 10), date(2026, 3, 12)), -1)
	require.ErrorIs(t, err, ErrNegativeAvailability)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustSeedsMissingRowClampedToQuantity(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewAvailabilityService(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `availability`").
		WillReturnRows(noAvailabilityRows())
	mock.ExpectQuery("SELECT (.+) FROM `bnb_room_type`").
		WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(2))
	mock.ExpectExec("INSERT INTO `availability`").
		WithArgs(testBnbID, testRoomTypeID, date(2026, 3, 10), 2).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := svc.Adjust(testStay(date(2026, 3, 10), date(2026, 3, 11)), 3)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustMissingRowDecrementIsNoop(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewAvailabilityService(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `availability`").
		WillReturnRows(noAvailabilityRows())
	mock.ExpectCommit()

	err := svc.Adjust(testStay(date(2026, 3, 10), date(2026, 3, 11)), -1)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustRejectsMissingStayRefs(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewAvailabilityService(gdb)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := svc.Adjust(Stay{CheckinDate: date(2026, 3, 10), CheckoutDate: date(2026, 3, 11)}, -1)
	require.ErrorIs(t, err, ErrMissingStayRefs)
}

func TestAdjustRejectsEmptyDateRange(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewAvailabilityService(gdb)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := svc.Adjust(testStay(date(2026, 3, 10), date(2026, 3, 10)), +1)
	require.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestListRangeValidatesWindow(t *testing.T) {
	gdb, _ := newMockDB(t)
	svc := NewAvailabilityService(gdb)

	_, err := svc.ListRange(testBnbID, date(2026, 3, 10), date(2026, 3, 10))
	require.ErrorIs(t, err, ErrInvalidDateRange)
}
