package teacher

import "strings"

// QueryFilter applies an AND operation on its non-empty fields.
// Search does a case-insensitive match on one of Teacher.Name, Teacher.Email
// or Teacher.Department.
type QueryFilter struct {
	Search     string
	Department string
}

func (f QueryFilter) Match(t Teacher) bool {
	if f.Search != "" {
		s := strings.ToLower(f.Search)
		if !(strings.Contains(strings.ToLower(t.Name), s) ||
			strings.Contains(strings.ToLower(t.Email), s) ||
			strings.Contains(strings.ToLower(t.Department), s)) {
			return false
		}
	}
	if f.Department != "" && !strings.EqualFold(t.Department, f.Department) {
		return false
	}
	return true
}

func Filter(teachers []Teacher, f QueryFilter) []Teacher {
	out := make([]Teacher, 0, len(teachers))
	for _, t := range teachers {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// ByDepartment groups teachers by department, preserving source order within
// each group; keys come out in first-seen order.
func ByDepartment(teachers []Teacher) (map[string][]Teacher, []string) {
	groups := make(map[string][]Teacher)
	var keys []string
	for _, t := range teachers {
		if _, ok := groups[t.Department]; !ok {
			keys = append(keys, t.Department)
		}
		groups[t.Department] = append(groups[t.Department], t)
	}
	return groups, keys
}
