package catalog

type ServiceInterface interface {
	Categories() []*Category
	ProductsByCategory(category string) []*Product
	ProductsBySubcategory(category, subcategory string) []*Product
	ProductByID(id string) (*Product, error)
}

type Service struct {
	Repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repo: repo}
}

func (s *Service) Categories() []*Category {
	return s.Repo.Categories()
}

func (s *Service) ProductsByCategory(category string) []*Product {
	return s.Repo.GetByCategory(category)
}

func (s *Service) ProductsBySubcategory(category, subcategory string) []*Product {
	return s.Repo.GetBySubcategory(category, subcategory)
}

func (s *Service) ProductByID(id string) (*Product, error) {
	return s.Repo.GetByID(id)
}
