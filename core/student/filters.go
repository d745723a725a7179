package student

import "strings"

// QueryFilter applies an AND operation on its non-empty fields.
// Search does a case-insensitive match on one of Student.Name, Student.Email
// or Student.Department.
type QueryFilter struct {
	Search     string
	Department string
	CourseID   string
	Semester   int // 0 matches all
	Year       int // 0 matches all
}

func (f QueryFilter) Match(st Student) bool {
	if f.Search != "" {
		s := strings.ToLower(f.Search)
		if !(strings.Contains(strings.ToLower(st.Name), s) ||
			strings.Contains(strings.ToLower(st.Email), s) ||
			strings.Contains(strings.ToLower(st.Department), s)) {
			return false
		}
	}
	if f.Department != "" && !strings.EqualFold(st.Department, f.Department) {
		return false
	}
	if f.CourseID != "" && st.CourseID != f.CourseID {
		return false
	}
	if f.Semester != 0 && st.Semester != f.Semester {
		return false
	}
	if f.Year != 0 && st.Year != f.Year {
		return false
	}
	return true
}

func Filter(students []Student, f QueryFilter) []Student {
	out := make([]Student, 0, len(students))
	for _, st := range students {
		if f.Match(st) {
			out = append(out, st)
		}
	}
	return out
}

// ByCourse groups students by course name, preserving source order within each
// group. Only courses present in the input appear as keys (first-seen order).
func ByCourse(students []Student) (map[string][]Student, []string) {
	groups := make(map[string][]Student)
	var keys []string
	for _, st := range students {
		if _, ok := groups[st.CourseName]; !ok {
			keys = append(keys, st.CourseName)
		}
		groups[st.CourseName] = append(groups[st.CourseName], st)
	}
	return groups, keys
}
