package product

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the catalog filtered by category; CategoryAll or "" returns everything.
func (s *Service) List(category string) []Product {
	all := s.repo.List()
	if category == "" || category == CategoryAll {
		return all
	}
	out := make([]Product, 0, len(all))
	for _, p := range all {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (s *Service) GetByID(id string) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Search(f Filters) []Product {
	all := s.repo.List()
	out := make([]Product, 0, len(all))
	for _, p := range all {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns up to limit products starting at offset, in catalog order.
func (s *Service) Featured(limit, offset int) []Product {
	all := s.repo.List()
	if offset >= len(all) || limit <= 0 {
		return []Product{}
	}
	end := len(all)
	if limit < end-offset {
		end = offset + limit
	}
	return all[offset:end]
}

// Categories returns the distinct categories in first-seen order, led by CategoryAll.
func (s *Service) Categories() []string {
	out := []string{CategoryAll}
	seen := map[string]bool{}
	for _, p := range s.repo.List() {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}
