package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"healio-monitor/internal/models"
)

func setupMockAlertsDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *AlertsRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewAlertsRepository(db, zap.NewNop())
	return db, mock, repo
}

func TestCreateAlertEvent_Success(t *testing.T) {
	db, mock, repo := setupMockAlertsDB(t)
	defer db.Close()

	eventID := uuid.New().String()
	triggeredAt := time.Now()
	createdAt := time.Now()

	event := &models.AlertEvent{
		EventID:     eventID,
		DeviceID:    "dev-1",
		PatientID:   "patient-1",
		AlertType:   models.AlertAbnormalHeartRate,
		Severity:    models.SeverityMedium,
		Message:     "heart rate 110 outside normal range",
		BPM:         110,
		TriggeredAt: triggeredAt,
		CreatedAt:   createdAt,
	}

	mock.ExpectExec(`INSERT INTO alert_events`).
		WithArgs(eventID, "dev-1", "patient-1", models.AlertAbnormalHeartRate,
			models.SeverityMedium, "heart rate 110 outside normal range", 110, triggeredAt, createdAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateAlertEvent(event)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAlertEvent_NotFound(t *testing.T) {
	db, mock, repo := setupMockAlertsDB(t)
	defer db.Close()

	eventID := uuid.New().String()

	mock.ExpectQuery(`SELECT`).
		WithArgs(eventID).
		WillReturnError(sql.ErrNoRows)

	event, err := repo.GetAlertEvent(eventID)

	assert.Error(t, err)
	assert.Nil(t, event)
	assert.Contains(t, err.Error(), "not found")
}
