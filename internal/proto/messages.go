package proto

import "time"

type Empty struct{}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
}

type SignupResponse struct {
	Id int64 `json:"id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type TokenResponse struct {
	AccessToken      string    `json:"accessToken"`
	RefreshToken     string    `json:"refreshToken"`
	AccessExpiresAt  time.Time `json:"accessExpiresAt"`
	RefreshExpiresAt time.Time `json:"refreshExpiresAt"`
}

type UpdateProfileRequest struct {
	Password    string `json:"password"`
	NewPassword string `json:"newPassword,omitempty"`
	Email       string `json:"email,omitempty"`
	Name        string `json:"name,omitempty"`
	Nickname    string `json:"nickname,omitempty"`
}

type UserResponse struct {
	Id        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Nickname  string    `json:"nickname"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Address struct {
	Name      string `json:"name"`
	Recipient string `json:"recipient"`
	Phone     string `json:"phone"`
	Zipcode   string `json:"zipcode"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	IsDefault bool   `json:"isDefault"`
}

type AddressesResponse struct {
	Addresses []Address `json:"addresses"`
}

type Category struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

type CategoriesResponse struct {
	Categories []Category `json:"categories"`
}
