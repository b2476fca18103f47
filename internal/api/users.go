package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/reihansyahfitra/hes-vault-client/internal/domain"
)

// UserQuery narrows the admin account listing.
type UserQuery struct {
	Search   string
	Page     int
	PageSize int
}

func (q UserQuery) encode() string {
	values := url.Values{}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		values.Set("page_size", strconv.Itoa(q.PageSize))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// UserList is a page of accounts with pagination metadata.
type UserList struct {
	Users      []domain.User     `json:"users"`
	Pagination domain.Pagination `json:"pagination"`
}

// ListUsers fetches accounts. Admin only.
func (c *Client) ListUsers(ctx context.Context, token string, q UserQuery) (*UserList, error) {
	var out UserList
	if err := c.do(ctx, token, http.MethodGet, "/users"+q.encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUser fetches one account with its rental history. Admin only.
func (c *Client) GetUser(ctx context.Context, token, id string) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, token, http.MethodGet, "/users/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
