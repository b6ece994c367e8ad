package model

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrItemNotInCart   = errors.New("item not in cart")
	ErrCartEmpty       = errors.New("cart is empty")
)
