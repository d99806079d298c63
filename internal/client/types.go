// ABOUTME: JSON shapes exchanged with the storefront backend
// ABOUTME: Request bodies carry validator tags checked before sending

package client

import "github.com/shopdemo/storefront/internal/session"

// Product is a catalog entry
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	CategoryID  *int64  `json:"categoryId,omitempty"`
	SellerID    *int64  `json:"sellerId,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

// OrderItem is one line of an order
type OrderItem struct {
	ID        int64    `json:"id"`
	ProductID int64    `json:"productId"`
	Quantity  int      `json:"quantity"`
	Price     float64  `json:"price"`
	Product   *Product `json:"product,omitempty"`
}

// Order is a completed checkout
type Order struct {
	ID          int64       `json:"id"`
	UserID      int64       `json:"userId"`
	TotalAmount float64     `json:"totalAmount"`
	Discount    float64     `json:"discount,omitempty"`
	FinalAmount float64     `json:"finalAmount,omitempty"`
	CouponCode  string      `json:"couponCode,omitempty"`
	Status      string      `json:"status"`
	CreatedAt   string      `json:"createdAt"`
	Items       []OrderItem `json:"items,omitempty"`
}

// Amount returns what the buyer paid: the final amount when a discount applied
func (o *Order) Amount() float64 {
	if o.FinalAmount > 0 || o.Discount > 0 {
		return o.FinalAmount
	}
	return o.TotalAmount
}

// CartItem is one product line in the buyer's cart
type CartItem struct {
	ID        int64    `json:"id"`
	UserID    int64    `json:"userId"`
	ProductID int64    `json:"productId"`
	Quantity  int      `json:"quantity"`
	Product   *Product `json:"product,omitempty"`
}

// Subtotal returns quantity times unit price when the product is embedded
func (ci *CartItem) Subtotal() float64 {
	if ci.Product == nil {
		return 0
	}
	return ci.Product.Price * float64(ci.Quantity)
}

// ProductInput is the body for creating or updating a product
type ProductInput struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description" validate:"max=2000"`
	Price       float64 `json:"price" validate:"gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	CategoryID  *int64  `json:"categoryId,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

// CartRequest adds a product to the cart
type CartRequest struct {
	ProductID int64 `json:"productId" validate:"gt=0"`
	Quantity  int   `json:"quantity" validate:"gte=1"`
}

// CheckoutRequest turns the cart into an order
type CheckoutRequest struct {
	CouponCode string `json:"couponCode,omitempty" validate:"max=64"`
}

// LoginRequest carries credentials for authentication
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest creates a new account
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Role     string `json:"role" validate:"required,oneof=BUYER SELLER"`
}

// AuthResponse is returned by login and register
type AuthResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"userId,omitempty"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
}

// Identity returns the user described by the response fields. It is
// incomplete when the backend only sent a token.
func (r *AuthResponse) Identity() session.User {
	return session.User{
		UserID:   r.UserID,
		Username: r.Username,
		Role:     session.ParseRole(r.Role),
	}
}

// ImageUpload is returned by the image upload endpoint
type ImageUpload struct {
	URL string `json:"url"`
}
