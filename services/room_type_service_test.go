package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roomTypeColumns() []string {
	return []string{"id", "bnb_id", "accomodation_type", "description", "price_per_night", "quantity"}
}

func TestListAllOrdersByPrice(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewRoomTypeService(gdb)

	mock.ExpectQuery("SELECT (.+) FROM `bnb_room_type` ORDER BY price_per_night ASC").
		WillReturnRows(sqlmock.NewRows(roomTypeColumns()).
			AddRow(1, testBnbID, "Standard Room", "", 600.0, 4).
			AddRow(2, testBnbID, "Sharing Room", "", 700.0, 3))

	list, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Standard Room", list[0].AccommodationType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePricingWritesPriceAndQuantity(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewRoomTypeService(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `bnb_room_type`").
		WillReturnRows(sqlmock.NewRows(roomTypeColumns()).
			AddRow(1, testBnbID, "Standard Room", "", 600.0, 4))
	mock.ExpectExec("UPDATE `bnb_room_type` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rt, err := svc.UpdatePricing(1, 650, 5)
	require.NoError(t, err)
	assert.Equal(t, 650.0, rt.PricePerNight)
	assert.Equal(t, 5, rt.Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePricingValidation(t *testing.T) {
	gdb, _ := newMockDB(t)
	svc := NewRoomTypeService(gdb)

	_, err := svc.UpdatePricing(1, 0, 5)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdatePricing(1, 650, -1)
	assert.ErrorIs(t, err, ErrValidation)
}
