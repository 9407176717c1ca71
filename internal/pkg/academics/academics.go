// Package academics implements the derived academic metrics (GPA,
// ranking, credit totals, warning lists) as plain functions over
// enrollment rows, so the logic is versionable and unit-testable
// instead of living in opaque stored routines.
package academics

import "math"

// Enrollment statuses as stored.
const (
	StatusEnrolled  = "Enrolled"
	StatusCompleted = "Completed"
	StatusDropped   = "Dropped"
)

// CourseResult is one enrollment row joined with its course's credit
// count, the unit every aggregation here consumes.
type CourseResult struct {
	StudentID  string
	Semester   string
	Status     string
	Credit     int
	GradeFinal *float64
}

// GPA returns the credit-weighted mean of final grades on a 0-10 scale,
// rounded to two decimals. Rows without a final grade and rows with a
// non-positive credit count are skipped. Zero when nothing is gradable.
func GPA(results []CourseResult) float64 {
	var weighted float64
	var credits int

	for _, r := range results {
		if r.GradeFinal == nil || r.Credit <= 0 {
			continue
		}
		weighted += *r.GradeFinal * float64(r.Credit)
		credits += r.Credit
	}

	if credits == 0 {
		return 0
	}
	return round2(weighted / float64(credits))
}

// Ranking classifies a 0-10 GPA into the academic ranking labels the
// reporting screens display.
func Ranking(gpa float64) string {
	switch {
	case gpa >= 9:
		return "Excellent"
	case gpa >= 8:
		return "Very Good"
	case gpa >= 7:
		return "Good"
	case gpa >= 5:
		return "Average"
	default:
		return "Weak"
	}
}

// CompletedCredits sums the credits of completed enrollments.
func CompletedCredits(results []CourseResult) int {
	var total int
	for _, r := range results {
		if r.Status == StatusCompleted {
			total += r.Credit
		}
	}
	return total
}

// Warning flags a student whose semester results fall below the
// academic threshold.
type Warning struct {
	StudentID    string
	GPA          float64
	DroppedCount int
	Reason       string
}

// Thresholds for the warning list.
const (
	warningGPA     = 5.0
	warningDropped = 2
)

// Warnings scans one semester's results and returns the at-risk
// students: GPA below 5 or at least two dropped courses. Input may mix
// students; rows are grouped by StudentID. Order follows first
// appearance in the input.
func Warnings(results []CourseResult) []Warning {
	byStudent := make(map[string][]CourseResult)
	var order []string
	for _, r := range results {
		if _, seen := byStudent[r.StudentID]; !seen {
			order = append(order, r.StudentID)
		}
		byStudent[r.StudentID] = append(byStudent[r.StudentID], r)
	}

	var warnings []Warning
	for _, id := range order {
		rows := byStudent[id]
		gpa := GPA(rows)

		dropped := 0
		gradable := 0
		for _, r := range rows {
			if r.Status == StatusDropped {
				dropped++
			}
			if r.GradeFinal != nil {
				gradable++
			}
		}

		switch {
		case gradable > 0 && gpa < warningGPA:
			warnings = append(warnings, Warning{
				StudentID:    id,
				GPA:          gpa,
				DroppedCount: dropped,
				Reason:       "GPA below threshold",
			})
		case dropped >= warningDropped:
			warnings = append(warnings, Warning{
				StudentID:    id,
				GPA:          gpa,
				DroppedCount: dropped,
				Reason:       "too many dropped courses",
			})
		}
	}
	return warnings
}

// CourseStat is one course's enrollment summary for instructor reports.
type CourseStat struct {
	CourseID     string
	CourseName   string
	Enrolled     int
	Completed    int
	AverageGrade float64
}

// CourseRow is an enrollment row attributed to a course, the input for
// instructor statistics.
type CourseRow struct {
	CourseID   string
	CourseName string
	Status     string
	GradeFinal *float64
}

// InstructorStats aggregates enrollment rows per course: headcount,
// completions and average final grade. Order follows first appearance.
func InstructorStats(rows []CourseRow) []CourseStat {
	byCourse := make(map[string]*CourseStat)
	sums := make(map[string]float64)
	counts := make(map[string]int)
	var order []string

	for _, r := range rows {
		stat, ok := byCourse[r.CourseID]
		if !ok {
			stat = &CourseStat{CourseID: r.CourseID, CourseName: r.CourseName}
			byCourse[r.CourseID] = stat
			order = append(order, r.CourseID)
		}
		stat.Enrolled++
		if r.Status == StatusCompleted {
			stat.Completed++
		}
		if r.GradeFinal != nil {
			sums[r.CourseID] += *r.GradeFinal
			counts[r.CourseID]++
		}
	}

	stats := make([]CourseStat, 0, len(order))
	for _, id := range order {
		stat := byCourse[id]
		if counts[id] > 0 {
			stat.AverageGrade = round2(sums[id] / float64(counts[id]))
		}
		stats = append(stats, *stat)
	}
	return stats
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
