package repository

import (
	"context"
	"testing"
	"time"

	"github.com/deppfellow/shrine-api/internal/model"
	"github.com/deppfellow/shrine-api/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var prayerCols = []string{"id", "name", "email", "phone", "prayer_intention", "status", "created_at", "updated_at"}

func ptr(s string) *string { return &s }

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestPrayerRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewPrayerRepository(mock)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO prayer_requests`).
		WithArgs("Maria", ptr("maria@example.com"), (*string)(nil), "healing", "unread").
		WillReturnRows(pgxmock.NewRows(prayerCols).
			AddRow(int64(1), "Maria", ptr("maria@example.com"), (*string)(nil), "healing", "unread", now, now))

	prayer, err := repo.Create(context.Background(), &model.CreatePrayerPayload{
		Name:   "Maria",
		Email:  ptr("maria@example.com"),
		Prayer: "healing",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), prayer.ID)
	assert.Equal(t, "healing", prayer.Prayer)
	assert.Equal(t, "unread", prayer.Status)
	assert.Nil(t, prayer.Phone)
}

func TestStatusTable_ListAllEmpty(t *testing.T) {
	mock := newMock(t)
	repo := NewPrayerRepository(mock)

	mock.ExpectQuery(`SELECT .+ FROM prayer_requests ORDER BY created_at DESC, id DESC`).
		WillReturnRows(pgxmock.NewRows(prayerCols))

	prayers, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, prayers)
	assert.Empty(t, prayers)
}

func TestStatusTable_ListByStatus(t *testing.T) {
	mock := newMock(t)
	repo := NewPrayerRepository(mock)
	newer := time.Now()
	older := newer.Add(-time.Hour)

	mock.ExpectQuery(`SELECT .+ FROM prayer_requests WHERE status = \$1 ORDER BY created_at DESC, id DESC`).
		WithArgs("unread").
		WillReturnRows(pgxmock.NewRows(prayerCols).
			AddRow(int64(2), "B", (*string)(nil), (*string)(nil), "second", "unread", newer, newer).
			AddRow(int64(1), "A", (*string)(nil), (*string)(nil), "first", "unread", older, older))

	prayers, err := repo.ListByStatus(context.Background(), "unread")

	require.NoError(t, err)
	require.Len(t, prayers, 2)
	assert.Equal(t, int64(2), prayers[0].ID)
	assert.Equal(t, int64(1), prayers[1].ID)
}

func TestStatusTable_UpdateStatus(t *testing.T) {
	mock := newMock(t)
	repo := NewPrayerRepository(mock)
	created := time.Now().Add(-time.Minute)
	updated := time.Now()

	mock.ExpectQuery(`UPDATE prayer_requests\s+SET status = \$1`).
		WithArgs("read", int64(7)).
		WillReturnRows(pgxmock.NewRows(prayerCols).
			AddRow(int64(7), "A", (*string)(nil), (*string)(nil), "peace", "read", created, updated))

	prayer, err := repo.UpdateStatus(context.Background(), 7, "read")

	require.NoError(t, err)
	assert.Equal(t, "read", prayer.Status)
	assert.True(t, prayer.UpdatedAt.After(prayer.CreatedAt))
}

func TestStatusTable_UpdateStatusNotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewPrayerRepository(mock)

	mock.ExpectQuery(`UPDATE prayer_requests`).
		WithArgs("read", int64(99)).
		WillReturnError(pgx.ErrNoRows)

	prayer, err := repo.UpdateStatus(context.Background(), 99, "read")

	assert.Nil(t, prayer)
	assert.True(t, sqlerr.IsNotFound(err))
	assert.Contains(t, err.Error(), "table:prayer_requests")
}

func TestStatusTable_Delete(t *testing.T) {
	mock := newMock(t)
	repo := NewTestimonyRepository(mock)
	now := time.Now()

	mock.ExpectQuery(`DELETE FROM testimonies WHERE id = \$1 RETURNING`).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "testimony", "status", "created_at", "updated_at"}).
			AddRow(int64(3), "Jo", (*string)(nil), "grace", "approved", now, now))

	testimony, err := repo.Delete(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, int64(3), testimony.ID)
	assert.Equal(t, "grace", testimony.Testimony)
}

func TestStatusTable_DeleteNotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewTestimonyRepository(mock)

	mock.ExpectQuery(`DELETE FROM testimonies`).
		WithArgs(int64(3)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Delete(context.Background(), 3)
	assert.True(t, sqlerr.IsNotFound(err))
}

func TestStatusTable_StatsZeroFilled(t *testing.T) {
	mock := newMock(t)
	repo := NewDonationRepository(mock)

	mock.ExpectQuery(`SELECT status, COUNT\(\*\) FROM donations GROUP BY status`).
		WillReturnRows(pgxmock.NewRows([]string{"status", "count"}).
			AddRow("pending", int64(4)).
			AddRow("completed", int64(2)))

	stats, err := repo.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, model.Stats{"total": 6, "pending": 4, "completed": 2, "failed": 0}, stats)
}

func TestLivestreamRepository_ListUpcoming(t *testing.T) {
	mock := newMock(t)
	repo := NewLivestreamRepository(mock)
	now := time.Now()
	soon := now.Add(time.Hour)

	mock.ExpectQuery(`FROM livestreams\s+WHERE status = \$1 AND scheduled_at >= \$2`).
		WithArgs("upcoming", now).
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "description", "stream_url", "scheduled_at", "status", "created_at", "updated_at"}).
			AddRow(int64(1), "Sunday Mass", (*string)(nil), "https://example.com/live", soon, "upcoming", now, now))

	streams, err := repo.ListUpcoming(context.Background(), now)

	require.NoError(t, err)
	require.Len(t, streams, 1)
	assert.Equal(t, "Sunday Mass", streams[0].Title)
}

func TestContactRepository_GetMissing(t *testing.T) {
	mock := newMock(t)
	repo := NewContactRepository(mock)

	mock.ExpectQuery(`FROM contact_info WHERE id = 1`).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Get(context.Background())
	assert.True(t, sqlerr.IsNotFound(err))
}

func TestAdminRepository_Count(t *testing.T) {
	mock := newMock(t)
	repo := NewAdminRepository(mock)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM admins`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))

	count, err := repo.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAdminRepository_TouchLogin(t *testing.T) {
	mock := newMock(t)
	repo := NewAdminRepository(mock)

	mock.ExpectExec(`UPDATE admins SET last_login_at = NOW\(\)`).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.TouchLogin(context.Background(), 1))
}
