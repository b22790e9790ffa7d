package migrations

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoMigrateOrders_CreatesBothTables(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS orders").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS orderdetails").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, AutoMigrateOrders(0, db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAutoMigrateCatalog_RetriesThenSucceeds(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS services").WillReturnError(errors.New("starting up"))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS services").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS service_list").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, AutoMigrateCatalog(1, db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAutoMigrateOrders_GivesUp(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS orders").WillReturnError(errors.New("access denied"))

	assert.EqualError(t, AutoMigrateOrders(0, db), "access denied")
	assert.NoError(t, mock.ExpectationsWereMet())
}
