package repository

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetDeviceBySerial_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDeviceRepository(db, zap.NewNop())

	rows := sqlmock.NewRows([]string{
		"device_id", "patient_id", "serial_number", "device_name", "status",
	}).AddRow("dev-1", "patient-1", "healio-band-01", "Heal.io Band", "active")

	mock.ExpectQuery(`SELECT`).
		WithArgs("healio-band-01").
		WillReturnRows(rows)

	device, err := repo.GetDeviceBySerial("healio-band-01")

	require.NoError(t, err)
	assert.Equal(t, "dev-1", device.DeviceID)
	assert.Equal(t, "patient-1", device.PatientID)
	assert.Equal(t, "active", device.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDeviceBySerial_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDeviceRepository(db, zap.NewNop())

	mock.ExpectQuery(`SELECT`).
		WithArgs("unknown").
		WillReturnError(sql.ErrNoRows)

	device, err := repo.GetDeviceBySerial("unknown")

	assert.Error(t, err)
	assert.Nil(t, device)
	assert.Contains(t, err.Error(), "device not found")
}
