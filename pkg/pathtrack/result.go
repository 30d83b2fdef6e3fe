package pathtrack

// Status is the outcome code of a search.
type Status int

const (
	// StatusNotFound means no path matched.
	StatusNotFound Status = 0
	// StatusFound means one or more paths matched.
	StatusFound Status = 1
)

func (s Status) String() string {
	if s == StatusFound {
		return "found"
	}
	return "not found"
}

// Result is the outcome of one search. Paths is nil exactly when Code is
// StatusNotFound. Message is only set by FindBySegment when more than one
// path survives narrowing.
type Result struct {
	Code    Status   `json:"code" yaml:"code"`
	Paths   []string `json:"paths" yaml:"paths"`
	Message string   `json:"message,omitempty" yaml:"message,omitempty"`
}

// Found reports whether at least one path matched.
func (r *Result) Found() bool {
	return r != nil && r.Code == StatusFound
}

// Unique reports whether exactly one path matched.
func (r *Result) Unique() bool {
	return r.Found() && len(r.Paths) == 1
}

// Ambiguous reports whether several paths matched.
func (r *Result) Ambiguous() bool {
	return r.Found() && len(r.Paths) > 1
}

// resultFrom derives the status from the accumulated paths. The returned
// slice never aliases paths.
func resultFrom(paths []string) *Result {
	if len(paths) == 0 {
		return &Result{Code: StatusNotFound}
	}
	out := make([]string, len(paths))
	copy(out, paths)
	return &Result{Code: StatusFound, Paths: out}
}
