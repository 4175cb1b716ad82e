package catalog

import "github.com/shopspring/decimal"

type ProductDTO struct {
	Category string          `json:"category"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
}

type CategoryDTO struct {
	Name     string       `json:"name"`
	Products []ProductDTO `json:"products"`
}

type CatalogResponse struct {
	Categories []CategoryDTO `json:"categories"`
}

type CategoryResponse struct {
	Category string       `json:"category"`
	Products []ProductDTO `json:"products"`
}

type ReloadResponse struct {
	ProductCount  int `json:"productCount"`
	CategoryCount int `json:"categoryCount"`
}
