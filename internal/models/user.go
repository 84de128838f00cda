package models

import "time"

// User represents a stored account record. ID is assigned by the store and
// immutable; Password holds a bcrypt hash and is never serialized.
type User struct {
	ID         string    `json:"id"`
	Fullname   string    `json:"fullname"`
	Email      string    `json:"email"`
	Username   string    `json:"username"`
	Password   string    `json:"-"`
	ProfileImg string    `json:"profile_img,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// SignupRequest is the JSON body for POST /signup.
type SignupRequest struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SigninRequest is the JSON body for POST /signin.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the success payload shared by signup and signin.
// ProfileImg serializes as null when the account has no image set.
type AuthResponse struct {
	AccessToken string  `json:"access_token"`
	ProfileImg  *string `json:"profile_img"`
	Username    string  `json:"username"`
	Fullname    string  `json:"fullname"`
}
