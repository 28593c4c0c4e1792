package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/lumistore/backoffice/internal/upstream"
)

type (
	Fee struct {
		ID          string  `json:"id"`
		Region      string  `json:"region"`
		MinWeightKg float64 `json:"minWeightKg"`
		MaxWeightKg float64 `json:"maxWeightKg"`
		Amount      int64   `json:"amount"`
		Currency    string  `json:"currency"`
		Active      bool    `json:"active"`
	}

	FeeInput struct {
		Region      string  `json:"region"`
		MinWeightKg float64 `json:"minWeightKg"`
		MaxWeightKg float64 `json:"maxWeightKg"`
		Amount      int64   `json:"amount"`
		Currency    string  `json:"currency"`
		Active      bool    `json:"active"`
	}

	Shipping struct {
		upstream *upstream.Client
	}
)

var ErrInvalidWeightRange = fmt.Errorf("min weight must be below max weight")

func NewShipping(upstreamClient *upstream.Client) *Shipping {
	return &Shipping{upstream: upstreamClient}
}

func (s *Shipping) Fees(ctx context.Context) ([]Fee, error) {
	result, err := upstream.GetJSON[[]Fee](ctx, s.upstream, "/shipping-fees", nil)
	if err != nil {
		return nil, fmt.Errorf("list shipping fees: %w", err)
	}
	return result, nil
}

func (s *Shipping) Fee(ctx context.Context, id string) (Fee, error) {
	result, err := upstream.GetJSON[Fee](ctx, s.upstream, "/shipping-fees/"+url.PathEscape(id), nil)
	if err != nil {
		return Fee{}, fmt.Errorf("get shipping fee %s: %w", id, err)
	}
	return result, nil
}

func (s *Shipping) CreateFee(ctx context.Context, in FeeInput) (Fee, error) {
	if err := validateFeeInput(in); err != nil {
		return Fee{}, fmt.Errorf("create shipping fee: %w", err)
	}

	result, err := upstream.PostJSON[Fee](ctx, s.upstream, "/shipping-fees", in)
	if err != nil {
		return Fee{}, fmt.Errorf("create shipping fee: %w", err)
	}
	return result, nil
}

func (s *Shipping) UpdateFee(ctx context.Context, id string, in FeeInput) (Fee, error) {
	if err := validateFeeInput(in); err != nil {
		return Fee{}, fmt.Errorf("update shipping fee %s: %w", id, err)
	}

	result, err := upstream.PutJSON[Fee](ctx, s.upstream, "/shipping-fees/"+url.PathEscape(id), in)
	if err != nil {
		return Fee{}, fmt.Errorf("update shipping fee %s: %w", id, err)
	}
	return result, nil
}

func (s *Shipping) DeleteFee(ctx context.Context, id string) error {
	if err := upstream.Delete(ctx, s.upstream, "/shipping-fees/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("delete shipping fee %s: %w", id, err)
	}
	return nil
}

func validateFeeInput(in FeeInput) error {
	if in.MaxWeightKg > 0 && in.MinWeightKg >= in.MaxWeightKg {
		return ErrInvalidWeightRange
	}
	return nil
}
