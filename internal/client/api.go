// ABOUTME: Endpoint methods for auth, products, cart, orders and images
// ABOUTME: Paths are relative to the configured base URL (default .../api)

package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"
)

// productFetchLimit bounds concurrent product lookups when filling order lines
const productFetchLimit = 4

// Login calls POST /auth/login
func (c *Client) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", &LoginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("invalid response from backend: missing token")
	}
	return &resp, nil
}

// Register calls POST /auth/register
func (c *Client) Register(ctx context.Context, input *RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", input, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListProducts calls GET /products
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct calls GET /products/{id}
func (c *Client) GetProduct(ctx context.Context, id int64) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, "/products/"+strconv.FormatInt(id, 10), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// MyProducts calls GET /products/seller/my-products
func (c *Client) MyProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/products/seller/my-products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct calls POST /products
func (c *Client) CreateProduct(ctx context.Context, input *ProductInput) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodPost, "/products", input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct calls PUT /products/{id}
func (c *Client) UpdateProduct(ctx context.Context, id int64, input *ProductInput) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodPut, "/products/"+strconv.FormatInt(id, 10), input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct calls DELETE /products/{id}
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/products/"+strconv.FormatInt(id, 10), nil, nil)
}

// GetCart calls GET /cart
func (c *Client) GetCart(ctx context.Context) ([]CartItem, error) {
	var items []CartItem
	if err := c.do(ctx, http.MethodGet, "/cart", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddToCart calls POST /cart
func (c *Client) AddToCart(ctx context.Context, productID int64, quantity int) (*CartItem, error) {
	var item CartItem
	err := c.do(ctx, http.MethodPost, "/cart", &CartRequest{ProductID: productID, Quantity: quantity}, &item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateCartItem calls PUT /cart/{id}?quantity=n
func (c *Client) UpdateCartItem(ctx context.Context, itemID int64, quantity int) (*CartItem, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("invalid request: quantity must be at least 1")
	}
	path := "/cart/" + strconv.FormatInt(itemID, 10) + "?" + url.Values{"quantity": {strconv.Itoa(quantity)}}.Encode()

	var item CartItem
	if err := c.do(ctx, http.MethodPut, path, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveCartItem calls DELETE /cart/{id}
func (c *Client) RemoveCartItem(ctx context.Context, itemID int64) error {
	return c.do(ctx, http.MethodDelete, "/cart/"+strconv.FormatInt(itemID, 10), nil, nil)
}

// Checkout calls POST /orders/checkout
func (c *Client) Checkout(ctx context.Context, couponCode string) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodPost, "/orders/checkout", &CheckoutRequest{CouponCode: couponCode}, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders calls GET /orders
func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder calls GET /orders/{id}
func (c *Client) GetOrder(ctx context.Context, id int64) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+strconv.FormatInt(id, 10), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// FillOrderProducts fetches the products that order lines reference but the
// backend did not embed. Each product is fetched once. Products that no
// longer exist are left unset.
func (c *Client) FillOrderProducts(ctx context.Context, orders []Order) error {
	missing := make(map[int64]*Product)
	for _, o := range orders {
		for _, item := range o.Items {
			if item.Product == nil {
				missing[item.ProductID] = nil
			}
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(productFetchLimit)
	for id := range missing {
		g.Go(func() error {
			p, err := c.GetProduct(ctx, id)
			if errors.Is(err, ErrNotFound) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("product %d: %w", id, err)
			}
			mu.Lock()
			missing[id] = p
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range orders {
		for j := range orders[i].Items {
			item := &orders[i].Items[j]
			if item.Product == nil {
				item.Product = missing[item.ProductID]
			}
		}
	}
	return nil
}

// UploadImage calls POST /images with the file as multipart field "file"
func (c *Client) UploadImage(ctx context.Context, path string) (*ImageUpload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to create form: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to create form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/images", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var upload ImageUpload
	if err := c.send(ctx, req, &upload); err != nil {
		return nil, err
	}
	return &upload, nil
}
