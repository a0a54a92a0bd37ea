package topic

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT slug, description FROM topics ORDER BY slug ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"slug", "description"}).
			AddRow("cats", "Not dogs").
			AddRow("mitch", "The man, the Mitch, the legend"))

	topics, err := NewStore(db).Select(context.Background())
	require.NoError(t, err)
	require.Len(t, topics, 2)

	assert.Equal(t, "cats", topics[0].Slug)
	assert.Equal(t, "Not dogs", topics[0].Description)
	require.NoError(t, mock.ExpectationsWereMet())
}
