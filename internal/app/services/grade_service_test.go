package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/openlms/lms/internal/pkg/apperrors"
	"github.com/openlms/lms/pkg/api"
)

func score(f float64) *float64 { return &f }
func str(s string) *string     { return &s }

func TestValidateScoreBounds(t *testing.T) {
	assert.NoError(t, validateScore(0), "an explicit zero is a valid score")
	assert.NoError(t, validateScore(10))
	assert.NoError(t, validateScore(7.25))

	assert.Error(t, validateScore(-0.01))
	assert.Error(t, validateScore(10.01))
}

// The validation cases below fail before any storage access, so the
// service is built without a repository.
func newValidationOnlyGradeService() GradeService {
	return NewGradeService(nil, zerolog.Nop())
}

func TestCreateGradeRequiresScore(t *testing.T) {
	svc := newValidationOnlyGradeService()

	_, err := svc.CreateGrade(context.Background(), &api.CreateGradeRequest{
		GradeID:     "G001",
		StudentID:   "S001",
		AssessID:    "A001",
		GradeLetter: "B",
	})

	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestCreateGradeRejectsOutOfRangeScore(t *testing.T) {
	svc := newValidationOnlyGradeService()

	for _, bad := range []float64{-0.01, 10.01, 11} {
		_, err := svc.CreateGrade(context.Background(), &api.CreateGradeRequest{
			GradeID:     "G001",
			StudentID:   "S001",
			AssessID:    "A001",
			Score:       score(bad),
			GradeLetter: "B",
		})
		assert.True(t, errors.Is(err, apperrors.ErrValidationFailed), "score %v", bad)
	}
}

func TestCreateGradeRejectsUnknownLetter(t *testing.T) {
	svc := newValidationOnlyGradeService()

	_, err := svc.CreateGrade(context.Background(), &api.CreateGradeRequest{
		GradeID:     "G001",
		StudentID:   "S001",
		AssessID:    "A001",
		Score:       score(8),
		GradeLetter: "Z",
	})

	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestCreateGradeRejectsMalformedDate(t *testing.T) {
	svc := newValidationOnlyGradeService()

	_, err := svc.CreateGrade(context.Background(), &api.CreateGradeRequest{
		GradeID:      "G001",
		StudentID:    "S001",
		AssessID:     "A001",
		Score:        score(8),
		GradeLetter:  "B",
		DateRecorded: str("31/12/2025"),
	})

	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestUpdateGradeRejectsOutOfRangeScore(t *testing.T) {
	svc := newValidationOnlyGradeService()

	_, err := svc.UpdateGrade(context.Background(), "G001", &api.UpdateGradeRequest{
		Score: score(10.01),
	})

	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}
