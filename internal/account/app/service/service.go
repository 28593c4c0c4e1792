package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/lumistore/backoffice/internal/pkg/auth"
	"github.com/lumistore/backoffice/internal/upstream"
)

type (
	Staff struct {
		ID       string    `json:"id"`
		Code     string    `json:"code"`
		FullName string    `json:"fullName"`
		Email    string    `json:"email"`
		Phone    string    `json:"phone"`
		Role     auth.Role `json:"role"`
		Active   bool      `json:"active"`
	}

	StaffInput struct {
		Code     string    `json:"code"`
		FullName string    `json:"fullName"`
		Email    string    `json:"email"`
		Phone    string    `json:"phone"`
		Role     auth.Role `json:"role"`
		Password string    `json:"password,omitempty"`
		Active   bool      `json:"active"`
	}

	StaffPage struct {
		Items   []Staff `json:"items"`
		Total   int     `json:"total"`
		Page    int     `json:"page"`
		PerPage int     `json:"perPage"`
	}

	Customer struct {
		ID       string `json:"id"`
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
	}

	CustomerPage struct {
		Items   []Customer `json:"items"`
		Total   int        `json:"total"`
		Page    int        `json:"page"`
		PerPage int        `json:"perPage"`
	}

	Account struct {
		upstream *upstream.Client
	}
)

func NewAccount(upstreamClient *upstream.Client) *Account {
	return &Account{upstream: upstreamClient}
}

func (s *Account) ListStaff(ctx context.Context, page, perPage int) (StaffPage, error) {
	result, err := upstream.GetJSON[StaffPage](ctx, s.upstream, "/staffs", pageQuery(page, perPage))
	if err != nil {
		return StaffPage{}, fmt.Errorf("list staff: %w", err)
	}
	return result, nil
}

func (s *Account) Staff(ctx context.Context, id string) (Staff, error) {
	result, err := upstream.GetJSON[Staff](ctx, s.upstream, "/staffs/"+url.PathEscape(id), nil)
	if err != nil {
		return Staff{}, fmt.Errorf("get staff %s: %w", id, err)
	}
	return result, nil
}

func (s *Account) CreateStaff(ctx context.Context, in StaffInput) (Staff, error) {
	if _, err := auth.ParseRole(string(in.Role)); err != nil {
		return Staff{}, fmt.Errorf("create staff: %w", err)
	}

	result, err := upstream.PostJSON[Staff](ctx, s.upstream, "/staffs", in)
	if err != nil {
		return Staff{}, fmt.Errorf("create staff: %w", err)
	}
	return result, nil
}

func (s *Account) UpdateStaff(ctx context.Context, id string, in StaffInput) (Staff, error) {
	if _, err := auth.ParseRole(string(in.Role)); err != nil {
		return Staff{}, fmt.Errorf("update staff %s: %w", id, err)
	}

	result, err := upstream.PutJSON[Staff](ctx, s.upstream, "/staffs/"+url.PathEscape(id), in)
	if err != nil {
		return Staff{}, fmt.Errorf("update staff %s: %w", id, err)
	}
	return result, nil
}

func (s *Account) DeleteStaff(ctx context.Context, id string) error {
	if err := upstream.Delete(ctx, s.upstream, "/staffs/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("delete staff %s: %w", id, err)
	}
	return nil
}

func (s *Account) ListCustomers(ctx context.Context, page, perPage int) (CustomerPage, error) {
	result, err := upstream.GetJSON[CustomerPage](ctx, s.upstream, "/customers", pageQuery(page, perPage))
	if err != nil {
		return CustomerPage{}, fmt.Errorf("list customers: %w", err)
	}
	return result, nil
}

func pageQuery(page, perPage int) url.Values {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("perPage", strconv.Itoa(perPage))
	return query
}
