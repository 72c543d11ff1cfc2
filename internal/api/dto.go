package api

import (
	"bytes"
	"encoding/json"
	"time"

	"phonekart/internal/product"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the user document returned by login and register.
type AuthResponse struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role,omitempty"`
	Token  string `json:"token,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
	Phone  string `json:"phone"`
}

type Profile struct {
	ID      string   `json:"_id,omitempty"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Role    string   `json:"role,omitempty"`
	Avatar  string   `json:"avatar,omitempty"`
	Address *Address `json:"address,omitempty"`
}

type PasswordChange struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type PasswordReset struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

type Review struct {
	ProductID string  `json:"productId"`
	Rating    float64 `json:"rating"`
	Comment   string  `json:"comment"`
}

type OrderItem struct {
	Product  string  `json:"product"`
	Name     string  `json:"name"`
	Image    string  `json:"image,omitempty"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type ShippingInfo struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Phone   string `json:"phone"`
}

type CreateOrderRequest struct {
	CartItems    []OrderItem  `json:"cartItems"`
	ShippingInfo ShippingInfo `json:"shippingInfo"`
	Amount       float64      `json:"amount"`
}

// UserRef is the order owner; the backend sends either an id or a
// populated user document.
type UserRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

func (u *UserRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &u.ID)
	}
	type plain UserRef
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*u = UserRef(p)
	return nil
}

type Order struct {
	ID           string       `json:"_id"`
	User         UserRef      `json:"user"`
	CartItems    []OrderItem  `json:"cartItems"`
	Amount       float64      `json:"amount"`
	Status       string       `json:"status"`
	ShippingInfo ShippingInfo `json:"shippingInfo"`
	CreatedAt    time.Time    `json:"createdAt"`
}

type orderEnvelope struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Order   *Order `json:"order"`
}

type ordersEnvelope struct {
	Orders []Order `json:"orders"`
}

type productsEnvelope struct {
	Products []product.Product `json:"products"`
}

type productEnvelope struct {
	Product *product.Product `json:"product"`
}

type statusUpdate struct {
	Status string `json:"status"`
}
