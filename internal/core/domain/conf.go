package domain

// Conf is the ordered list of strand requests describing a Dockerfile,
// plus an optional literal base image given as a `base:` mapping item.
type Conf struct {
	Requests []StrandRequest
	Base     string
}

// ParseConf parses raw conf tokens into a Conf, failing on the first malformed token.
func ParseConf(tokens []string) (Conf, error) {
	requests := make([]StrandRequest, 0, len(tokens))
	for _, token := range tokens {
		req, err := ParseStrandRequest(token)
		if err != nil {
			return Conf{}, err
		}
		requests = append(requests, req)
	}
	return Conf{Requests: requests}, nil
}

// StrandSet is the working set of strand requests keyed by name.
// It keeps the position of a name's first occurrence while later
// duplicates overwrite its version.
type StrandSet struct {
	order    []string
	requests map[string]StrandRequest
}

// NewStrandSet collects requests into a set, last duplicate wins.
func NewStrandSet(requests []StrandRequest) *StrandSet {
	s := &StrandSet{requests: make(map[string]StrandRequest, len(requests))}
	for _, req := range requests {
		if _, seen := s.requests[req.Name]; !seen {
			s.order = append(s.order, req.Name)
		}
		s.requests[req.Name] = req
	}
	return s
}

// Get returns the request for a strand name.
func (s *StrandSet) Get(name string) (StrandRequest, bool) {
	req, ok := s.requests[name]
	return req, ok
}

// Has reports whether the set contains every given strand name.
func (s *StrandSet) Has(names ...string) bool {
	for _, name := range names {
		if _, ok := s.requests[name]; !ok {
			return false
		}
	}
	return true
}

// Remove drops strand names from the set. Unknown names are ignored.
func (s *StrandSet) Remove(names ...string) {
	for _, name := range names {
		if _, ok := s.requests[name]; !ok {
			continue
		}
		delete(s.requests, name)
		for i, n := range s.order {
			if n == name {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

// Len returns the number of strands in the set.
func (s *StrandSet) Len() int {
	return len(s.order)
}

// Requests returns the remaining requests in first-occurrence order.
func (s *StrandSet) Requests() []StrandRequest {
	out := make([]StrandRequest, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.requests[name])
	}
	return out
}
