package core

import (
	"strings"

	"demo-api/internal/models"
)

// ListProducts returns every product, or only those whose category matches
// the filter (case-insensitive exact match) when one is given.
func (s *Service) ListProducts(category string) []models.Product {
	s.st.Lock()
	defer s.st.Unlock()

	all := s.st.Products.All()
	if strings.TrimSpace(category) == "" {
		return all
	}
	filtered := []models.Product{}
	for _, p := range all {
		if strings.EqualFold(p.Category, category) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func (s *Service) GetProduct(id int) (models.Product, error) {
	s.st.Lock()
	defer s.st.Unlock()

	p, ok := s.st.Products.ByID(id)
	if !ok {
		return models.Product{}, NotFoundf("Product %d not found.", id)
	}
	return p, nil
}

func (s *Service) CreateProduct(req models.CreateProductRequest) (models.Product, error) {
	s.st.Lock()
	defer s.st.Unlock()

	if strings.TrimSpace(req.Name) == "" {
		return models.Product{}, Invalidf("Product name is required.")
	}
	if req.Price <= 0 {
		return models.Product{}, Invalidf("Price must be greater than zero.")
	}

	category := "General"
	if req.Category != nil {
		category = *req.Category
	}
	product := models.Product{
		ID:       s.st.Products.AllocateID(),
		Name:     req.Name,
		Price:    req.Price,
		Stock:    req.Stock,
		Category: category,
	}
	s.st.Products.Insert(product)
	return product, nil
}

func (s *Service) UpdateProduct(id int, req models.UpdateProductRequest) (models.Product, error) {
	s.st.Lock()
	defer s.st.Unlock()

	i := s.st.Products.Index(id)
	if i == -1 {
		return models.Product{}, NotFoundf("Product %d not found.", id)
	}

	p, _ := s.st.Products.ByID(id)
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	s.st.Products.ReplaceAt(i, p)
	return p, nil
}

func (s *Service) DeleteProduct(id int) error {
	s.st.Lock()
	defer s.st.Unlock()

	if !s.st.Products.Remove(id) {
		return NotFoundf("Product %d not found.", id)
	}
	return nil
}

// SearchProducts does a case-insensitive substring match on product names.
func (s *Service) SearchProducts(q string) ([]models.Product, error) {
	s.st.Lock()
	defer s.st.Unlock()

	if strings.TrimSpace(q) == "" {
		return nil, Invalidf("Search query is required.")
	}
	needle := strings.ToLower(q)
	results := []models.Product{}
	for _, p := range s.st.Products.All() {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			results = append(results, p)
		}
	}
	return results, nil
}

// SetStock overwrites a product's stock count, bypassing general update
// validation. Used by the narrow PATCH /stock endpoint.
func (s *Service) SetStock(id, stock int) (models.Product, error) {
	s.st.Lock()
	defer s.st.Unlock()

	i := s.st.Products.Index(id)
	if i == -1 {
		return models.Product{}, NotFoundf("Product %d not found.", id)
	}
	p, _ := s.st.Products.ByID(id)
	p.Stock = stock
	s.st.Products.ReplaceAt(i, p)
	return p, nil
}
