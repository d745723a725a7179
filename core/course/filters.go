package course

import "strings"

// QueryFilter applies an AND operation on its non-empty fields.
// Search does a case-insensitive match on one of Course.Name, Course.Code
// or Course.Department.
type QueryFilter struct {
	Search     string
	Department string
}

func (f QueryFilter) Match(c Course) bool {
	if f.Search != "" {
		s := strings.ToLower(f.Search)
		if !(strings.Contains(strings.ToLower(c.Name), s) ||
			strings.Contains(strings.ToLower(c.Code), s) ||
			strings.Contains(strings.ToLower(c.Department), s)) {
			return false
		}
	}
	if f.Department != "" && !strings.EqualFold(c.Department, f.Department) {
		return false
	}
	return true
}

// Filter returns the courses matching every non-empty criterion, preserving
// source order. The input is never mutated.
func Filter(courses []Course, f QueryFilter) []Course {
	out := make([]Course, 0, len(courses))
	for _, c := range courses {
		if f.Match(c) {
			out = append(out, c)
		}
	}
	return out
}

// SubjectsBySemester groups a course's subjects by semester. Order within a
// group follows the source order; the returned key list holds only the
// semesters actually present, in first-seen order.
func SubjectsBySemester(c Course) (map[int][]Subject, []int) {
	groups := make(map[int][]Subject)
	keys := make([]int, 0, c.TotalSemesters)
	for _, sub := range c.Subjects {
		if _, ok := groups[sub.Semester]; !ok {
			keys = append(keys, sub.Semester)
		}
		groups[sub.Semester] = append(groups[sub.Semester], sub)
	}
	return groups, keys
}

// TeacherCount reports the number of teachers assigned to the course with the
// given id, or 0 when the course is not in the collection.
func TeacherCount(courses []Course, id string) int {
	for _, c := range courses {
		if c.ID == id {
			return len(c.AssignedTeachers)
		}
	}
	return 0
}
