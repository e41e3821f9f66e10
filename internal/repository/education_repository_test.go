package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestEducationRepository_List_OrderedByGraduationDate(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now().UTC()
	mock.
		ExpectQuery(`FROM education\s+ORDER BY graduation_date DESC, id DESC`).
		WithArgs(100, 0).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "institution", "degree", "field_of_study", "gpa", "graduation_date", "location", "created_at"}).
				AddRow(int64(2), "Concordia University", "MS", "IT Management", "3.8/4.0", "2024", "St Paul, MN", now).
				AddRow(int64(1), "Osmania University", "BE", "Computer Science", "3.6/4.0", "2021", "Hyderabad, India", now),
		)

	repo := NewPostgresEducationRepository(db)
	items, err := repo.ListEducation(context.Background(), 0, 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].GraduationDate != "2024" {
		t.Fatalf("expected newest graduation first, got %+v", items[0])
	}
	if items[0].GPA != "3.8/4.0" {
		t.Fatalf("gpa must survive as text: %+v", items[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestEducationRepository_Create(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now().UTC()
	mock.
		ExpectQuery(`INSERT INTO education \(institution, degree, field_of_study, gpa, graduation_date, location\)`).
		WithArgs("Concordia University", "MS", "IT Management", "4.0/4.0", "2024", "St Paul, MN").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), now))

	repo := NewPostgresEducationRepository(db)
	created, err := repo.CreateEducation(context.Background(), NewEducation{
		Institution:    "Concordia University",
		Degree:         "MS",
		FieldOfStudy:   "IT Management",
		GPA:            "4.0/4.0",
		GraduationDate: "2024",
		Location:       "St Paul, MN",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.ID != 1 || created.GPA != "4.0/4.0" {
		t.Fatalf("unexpected row: %+v", created)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}
