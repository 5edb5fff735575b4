package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupMockRepo builds a TaskRepository over a sqlmock connection so the
// generated SQL can be asserted directly. Every query against tasks must
// carry the owner_subject_id predicate.
func setupMockRepo(t *testing.T) (TaskRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewTaskRepository(db), mock
}

func TestGormTaskRepository_ListByOwner_ScopedSQL(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE owner_subject_id = \$1 ORDER BY created_at ASC`).
		WithArgs("uid-a").
		WillReturnRows(sqlmock.NewRows([]string{"id", "text", "owner_subject_id"}).
			AddRow(1, "Read chapter 3", "uid-a"))

	tasks, err := repo.ListByOwner("uid-a")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "Read chapter 3", tasks[0].Text)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTaskRepository_FindByIDForOwner_ScopedSQL(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE owner_subject_id = \$1 AND "tasks"\."id" = \$2`).
		WithArgs("uid-a", 7, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "text", "owner_subject_id"}).
			AddRow(7, "Problem set 2", "uid-a"))

	task, err := repo.FindByIDForOwner(7, "uid-a")
	require.NoError(t, err)
	require.Equal(t, uint64(7), task.ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTaskRepository_DeleteForOwner_ScopedSQL(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectExec(`DELETE FROM "tasks" WHERE owner_subject_id = \$1 AND id = \$2`).
		WithArgs("uid-a", 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteForOwner(7, "uid-a"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTaskRepository_DeleteForOwner_NoMatch(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectExec(`DELETE FROM "tasks" WHERE owner_subject_id = \$1 AND id = \$2`).
		WithArgs("uid-b", 7).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteForOwner(7, "uid-b")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTaskRepository_ListByOwnerAndCourses_ScopedSQL(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE owner_subject_id = \$1 AND course IN \(\$2,\$3\) ORDER BY due_date ASC`).
		WithArgs("uid-a", "CS100", "CS200").
		WillReturnRows(sqlmock.NewRows([]string{"id", "text", "course", "owner_subject_id"}).
			AddRow(1, "Essay draft", "CS100", "uid-a"))

	tasks, err := repo.ListByOwnerAndCourses("uid-a", []string{"CS100", "CS200"})
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTaskRepository_ListByOwnerAndCourses_EmptyList(t *testing.T) {
	repo, mock := setupMockRepo(t)

	// No query is issued for an empty course list.
	tasks, err := repo.ListByOwnerAndCourses("uid-a", nil)
	require.NoError(t, err)
	require.Empty(t, tasks)

	require.NoError(t, mock.ExpectationsWereMet())
}
