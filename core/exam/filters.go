package exam

import "strings"

// Status narrows a form list to verified or pending forms.
type Status string

const (
	StatusAny      Status = ""
	StatusVerified Status = "verified"
	StatusPending  Status = "pending"
)

// QueryFilter applies an AND operation on its non-empty fields.
// Search does a case-insensitive match on Form.StudentName or Form.Department.
type QueryFilter struct {
	Search   string
	Semester int // 0 matches all
	Status   Status
}

func (f QueryFilter) Match(fm Form) bool {
	if f.Search != "" {
		s := strings.ToLower(f.Search)
		if !(strings.Contains(strings.ToLower(fm.StudentName), s) ||
			strings.Contains(strings.ToLower(fm.Department), s)) {
			return false
		}
	}
	if f.Semester != 0 && fm.Semester != f.Semester {
		return false
	}
	switch f.Status {
	case StatusVerified:
		if !fm.Verified {
			return false
		}
	case StatusPending:
		if fm.Verified {
			return false
		}
	}
	return true
}

func Filter(forms []Form, f QueryFilter) []Form {
	out := make([]Form, 0, len(forms))
	for _, fm := range forms {
		if f.Match(fm) {
			out = append(out, fm)
		}
	}
	return out
}

// VerifiedCount reports how many of the given forms are verified.
func VerifiedCount(forms []Form) int {
	var n int
	for _, fm := range forms {
		if fm.Verified {
			n++
		}
	}
	return n
}
