package academics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func grade(f float64) *float64 { return &f }

func TestGPAWeightsByCredit(t *testing.T) {
	results := []CourseResult{
		{Credit: 4, GradeFinal: grade(9)},
		{Credit: 2, GradeFinal: grade(6)},
	}

	// (9*4 + 6*2) / 6 = 8
	assert.Equal(t, 8.0, GPA(results))
}

func TestGPASkipsUngradedRows(t *testing.T) {
	results := []CourseResult{
		{Credit: 3, GradeFinal: grade(7.5)},
		{Credit: 3, GradeFinal: nil},
		{Credit: 0, GradeFinal: grade(10)},
	}

	assert.Equal(t, 7.5, GPA(results))
}

func TestGPAEmptyInput(t *testing.T) {
	assert.Equal(t, 0.0, GPA(nil))
	assert.Equal(t, 0.0, GPA([]CourseResult{{Credit: 3}}))
}

func TestGPARoundsToTwoDecimals(t *testing.T) {
	results := []CourseResult{
		{Credit: 1, GradeFinal: grade(7)},
		{Credit: 1, GradeFinal: grade(8)},
		{Credit: 1, GradeFinal: grade(8)},
	}

	assert.Equal(t, 7.67, GPA(results))
}

func TestRankingCutoffs(t *testing.T) {
	cases := []struct {
		gpa  float64
		want string
	}{
		{10, "Excellent"},
		{9, "Excellent"},
		{8.99, "Very Good"},
		{8, "Very Good"},
		{7.5, "Good"},
		{7, "Good"},
		{6.99, "Average"},
		{5, "Average"},
		{4.99, "Weak"},
		{0, "Weak"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Ranking(tc.gpa), "gpa %v", tc.gpa)
	}
}

func TestCompletedCredits(t *testing.T) {
	results := []CourseResult{
		{Status: StatusCompleted, Credit: 4},
		{Status: StatusCompleted, Credit: 3},
		{Status: StatusEnrolled, Credit: 5},
		{Status: StatusDropped, Credit: 2},
	}

	assert.Equal(t, 7, CompletedCredits(results))
}

func TestWarningsLowGPA(t *testing.T) {
	results := []CourseResult{
		{StudentID: "S001", Credit: 3, GradeFinal: grade(4), Status: StatusCompleted},
		{StudentID: "S002", Credit: 3, GradeFinal: grade(8), Status: StatusCompleted},
	}

	warnings := Warnings(results)
	if assert.Len(t, warnings, 1) {
		assert.Equal(t, "S001", warnings[0].StudentID)
		assert.Equal(t, 4.0, warnings[0].GPA)
		assert.Equal(t, "GPA below threshold", warnings[0].Reason)
	}
}

func TestWarningsDroppedCourses(t *testing.T) {
	// No graded rows, so the GPA rule cannot fire; two drops still do.
	results := []CourseResult{
		{StudentID: "S003", Status: StatusDropped, Credit: 3},
		{StudentID: "S003", Status: StatusDropped, Credit: 3},
		{StudentID: "S003", Status: StatusEnrolled, Credit: 4},
	}

	warnings := Warnings(results)
	if assert.Len(t, warnings, 1) {
		assert.Equal(t, 2, warnings[0].DroppedCount)
		assert.Equal(t, "too many dropped courses", warnings[0].Reason)
	}
}

func TestWarningsNoGradesNoDrops(t *testing.T) {
	results := []CourseResult{
		{StudentID: "S004", Status: StatusEnrolled, Credit: 3},
	}

	assert.Empty(t, Warnings(results))
}

func TestWarningsPreserveInputOrder(t *testing.T) {
	results := []CourseResult{
		{StudentID: "S010", Credit: 3, GradeFinal: grade(2)},
		{StudentID: "S011", Credit: 3, GradeFinal: grade(3)},
		{StudentID: "S010", Credit: 3, GradeFinal: grade(4)},
	}

	warnings := Warnings(results)
	if assert.Len(t, warnings, 2) {
		assert.Equal(t, "S010", warnings[0].StudentID)
		assert.Equal(t, "S011", warnings[1].StudentID)
	}
}

func TestInstructorStats(t *testing.T) {
	rows := []CourseRow{
		{CourseID: "C01", CourseName: "Databases", Status: StatusCompleted, GradeFinal: grade(8)},
		{CourseID: "C01", CourseName: "Databases", Status: StatusEnrolled},
		{CourseID: "C01", CourseName: "Databases", Status: StatusCompleted, GradeFinal: grade(6)},
		{CourseID: "C02", CourseName: "Networks", Status: StatusDropped},
	}

	stats := InstructorStats(rows)
	if assert.Len(t, stats, 2) {
		assert.Equal(t, "C01", stats[0].CourseID)
		assert.Equal(t, 3, stats[0].Enrolled)
		assert.Equal(t, 2, stats[0].Completed)
		assert.Equal(t, 7.0, stats[0].AverageGrade)

		assert.Equal(t, "C02", stats[1].CourseID)
		assert.Equal(t, 1, stats[1].Enrolled)
		assert.Equal(t, 0, stats[1].Completed)
		assert.Equal(t, 0.0, stats[1].AverageGrade)
	}
}
