package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmarques2003/gradekeeper/internal/dbx"
	"github.com/dmarques2003/gradekeeper/internal/repositories/credentials"
	"github.com/dmarques2003/gradekeeper/internal/repositories/grades"
	"github.com/dmarques2003/gradekeeper/internal/repositories/sequences"
	"github.com/dmarques2003/gradekeeper/internal/repositories/students"
	"github.com/dmarques2003/gradekeeper/internal/repositories/teachers"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Credentials(db dbx.DBTX) credentials.Repository
	Students(db dbx.DBTX) students.Repository
	Teachers(db dbx.DBTX) teachers.Repository
	Grades(db dbx.DBTX) grades.Repository
	Sequences(db dbx.DBTX) sequences.Repository
}
