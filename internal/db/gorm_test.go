package db_test

import (
	"context"
	"database/sql"

	"storefront/internal/db"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/postgres"
	"gorm.io/gorm/logger"
)

type Test struct {
	ID       string `gorm:"primaryKey"`
	Username string
}

var _ = Describe("GormDB", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		testDB *db.GormDB
		ctx    context.Context
	)

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		testDB, err = db.New(dialector, logger.Silent)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("Create", func() {
		When("a slice of records is given", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO "tests" \("id","username"\) VALUES \(\$1,\$2\),\(\$3,\$4\)`).
					WithArgs("1", "Alice", "2", "Bob").
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectCommit()
			})

			It("should insert them in one statement", func() {
				err := testDB.Create(ctx, &[]Test{
					{ID: "1", Username: "Alice"},
					{ID: "2", Username: "Bob"},
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("a single record is given", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO "tests"`).
					WithArgs("1", "Alice").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should insert it", func() {
				Expect(testDB.Create(ctx, &Test{ID: "1", Username: "Alice"})).To(Succeed())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		It("should skip empty slices", func() {
			Expect(testDB.Create(ctx, &[]Test{})).To(Succeed())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})

		It("should reject non pointers", func() {
			err := testDB.Create(ctx, Test{ID: "1"})
			Expect(err).To(MatchError(ContainSubstring("must be a pointer")))
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO "tests"`).WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			})

			It("should wrap the error", func() {
				err := testDB.Create(ctx, &Test{ID: "1", Username: "Alice"})
				Expect(err).To(MatchError(ContainSubstring("insert to table")))
				Expect(err).NotTo(MatchError(db.ErrDuplicate))
			})
		})

		When("the primary key already exists", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO "tests"`).
					WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
				mock.ExpectRollback()
			})

			It("should return ErrDuplicate", func() {
				err := testDB.Create(ctx, &Test{ID: "1", Username: "Alice"})
				Expect(err).To(MatchError(db.ErrDuplicate))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow("1", "Alice"))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "username", "Alice", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal("1"))
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Ghost", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "username", "Ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetAllBy", func() {
		When("multiple records are found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username IN \(\$1,\$2\).*`).
					WithArgs("Alice", "Bob").
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow("1", "Alice").
						AddRow("2", "Bob"))
			})

			It("should return all matching records", func() {
				var results []Test
				err := testDB.GetAllBy(ctx, "username", []string{"Alice", "Bob"}, &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].Username).To(Equal("Alice"))
				Expect(results[1].Username).To(Equal("Bob"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("an error occurs during query", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username.*`).
					WithArgs("Invalid").
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Test
				err := testDB.GetAllBy(ctx, "username", "Invalid", &results)
				Expect(err).To(MatchError(ContainSubstring("getting records by")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("FindBy", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT \* FROM "tests" WHERE "username" = \$1 ORDER BY id desc`).
				WithArgs("Alice").
				WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
					AddRow("2", "Alice").
					AddRow("1", "Alice"))
		})

		It("should filter and order", func() {
			var results []Test
			err := testDB.FindBy(ctx, map[string]any{"username": "Alice"}, "id desc", &results)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(2))
			Expect(results[0].ID).To(Equal("2"))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("UpdateBy", func() {
		var (
			affected int64
			err      error
		)

		BeforeEach(func() {
			affected = 1
		})

		JustBeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectExec(`UPDATE "tests" SET "username"=\$1 WHERE id = \$2`).
				WithArgs("Carol", "1").
				WillReturnResult(sqlmock.NewResult(0, affected))
			mock.ExpectCommit()

			err = testDB.UpdateBy(ctx, &Test{}, "id", "1", map[string]any{"username": "Carol"})
		})

		It("should update the record", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})

		When("no row matches", func() {
			BeforeEach(func() {
				affected = 0
			})

			It("should return ErrNotFound", func() {
				Expect(err).To(Equal(db.ErrNotFound))
			})
		})
	})

	Describe("DeleteBy", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectExec(`DELETE FROM "tests" WHERE id = \$1`).
				WithArgs("1").
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()
		})

		It("should delete matching rows", func() {
			n, err := testDB.DeleteBy(ctx, &Test{}, "id", "=", "1")
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(1)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})
})
