package http

import (
	"nurse-manager/internal/auth"
	"nurse-manager/internal/model"
	"nurse-manager/pkg/response"
)

// --- Request DTOs ---

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{Username: r.Username, Password: r.Password}
}

type refreshReq struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type registerReq struct {
	Username string `json:"username"  binding:"required,min=3,max=64"`
	Password string `json:"password"  binding:"required"`
	FullName string `json:"full_name" binding:"required,max=200"`
	Role     string `json:"role"      binding:"omitempty,oneof=nurse manager admin"`
	Unit     string `json:"unit"`
	Shift    string `json:"shift"`
}

func (r registerReq) toInput() auth.RegisterInput {
	return auth.RegisterInput{
		Username: r.Username,
		Password: r.Password,
		FullName: r.FullName,
		Role:     model.Role(r.Role),
		Unit:     r.Unit,
		Shift:    r.Shift,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID        int64             `json:"id"`
	Username  string            `json:"username"`
	FullName  string            `json:"full_name"`
	Role      string            `json:"role"`
	Unit      string            `json:"unit,omitempty"`
	Shift     string            `json:"shift,omitempty"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Role:      string(u.Role),
		Unit:      u.Unit,
		Shift:     u.Shift,
		CreatedAt: response.DateTime(u.CreatedAt),
	}
}

type tokenResp struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	TokenType    string   `json:"token_type"`
	ExpiresIn    int64    `json:"expires_in"`
	User         userResp `json:"user"`
}

func (h *handler) newTokenResp(o auth.AuthOutput) tokenResp {
	return tokenResp{
		AccessToken:  o.Tokens.AccessToken,
		RefreshToken: o.Tokens.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    o.Tokens.ExpiresIn,
		User:         newUserResp(o.User),
	}
}
