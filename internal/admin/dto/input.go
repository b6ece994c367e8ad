package dto

import "github.com/shopspring/decimal"

type CreateProductInput struct {
	Name        string
	Price       decimal.Decimal
	Category    string
	Rating      int
	Badge       string
	Description string
	ImagePath   string
	Icon        string
}

type UpdateProductInput struct {
	Name        string
	Price       decimal.Decimal
	Category    string
	Rating      int
	Badge       string
	Description string
	ImagePath   string
	Icon        string
}
