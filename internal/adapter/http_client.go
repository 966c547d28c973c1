// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Passhold Authors

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/sync/errgroup"

	"github.com/passhold/vault-engine/internal/config"
	"github.com/passhold/vault-engine/models"
)

// shareDetailParallelism bounds the fan-out of per-share detail
// fetches during GetShares.
const shareDetailParallelism = 5

type vaultAPIAdapter struct {
	client *resty.Client

	mu     sync.RWMutex
	token  string
	userID string
}

// NewVaultAPIAdapter constructs the HTTP [RemoteDatasource] for the
// vault API.
func NewVaultAPIAdapter(cfg config.EnvironmentAdapter) RemoteDatasource {
	if cfg.HTTPAddress == "" {
		cfg.HTTPAddress = "http://localhost:8080"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.HTTPAddress, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &vaultAPIAdapter{client: cli}
}

// SetToken implements [RemoteDatasource].
func (v *vaultAPIAdapter) SetToken(token string) error {
	token = strings.TrimSpace(token)

	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		return fmt.Errorf("parse session token: %w", err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.token = token
	v.userID = userID
	return nil
}

// UserID implements [RemoteDatasource].
func (v *vaultAPIAdapter) UserID() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.userID
}

func (v *vaultAPIAdapter) bearerToken() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.token
}

// GetShares implements [RemoteDatasource]. The share list endpoint
// returns stubs only, so the full detail of every share is fetched in
// a second phase with bounded parallelism. The join is all-or-nothing:
// one failed detail fetch fails the whole call.
func (v *vaultAPIAdapter) GetShares(ctx context.Context) ([]models.Share, error) {
	resp, err := v.authedRequest(ctx).Get("/api/vault/shares")
	if err != nil {
		return nil, fmt.Errorf("get shares request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var stubs models.GetSharesResponse
	if err = json.Unmarshal(resp.Body(), &stubs); err != nil {
		return nil, fmt.Errorf("decode shares response: %w", err)
	}
	if len(stubs.Shares) == 0 {
		return nil, nil
	}

	shares := make([]models.Share, len(stubs.Shares))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(shareDetailParallelism)
	for i, stub := range stubs.Shares {
		g.Go(func() error {
			share, detailErr := v.getShare(gctx, stub.ShareID)
			if detailErr != nil {
				return detailErr
			}
			shares[i] = share
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return shares, nil
}

func (v *vaultAPIAdapter) getShare(ctx context.Context, shareID string) (models.Share, error) {
	resp, err := v.authedRequest(ctx).Get("/api/vault/shares/" + shareID)
	if err != nil {
		return models.Share{}, fmt.Errorf("get share %s request: %w", shareID, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Share{}, fmt.Errorf("get share %s: %w", shareID, err)
	}

	var body models.GetShareResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.Share{}, fmt.Errorf("decode share %s response: %w", shareID, err)
	}

	return body.Share, nil
}

// GetShareKeys implements [RemoteDatasource].
func (v *vaultAPIAdapter) GetShareKeys(ctx context.Context, shareID string, page, pageSize int) ([]models.ShareKey, error) {
	resp, err := v.authedRequest(ctx).
		SetQueryParam("Page", strconv.Itoa(page)).
		SetQueryParam("PageSize", strconv.Itoa(pageSize)).
		Get("/api/vault/shares/" + shareID + "/keys")
	if err != nil {
		return nil, fmt.Errorf("get share keys request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var body models.GetShareKeysResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("decode share keys response: %w", err)
	}

	return body.Keys, nil
}

// CreateVault implements [RemoteDatasource].
func (v *vaultAPIAdapter) CreateVault(ctx context.Context, req models.CreateVaultRequest) (models.Share, error) {
	resp, err := v.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/vault/vaults")
	if err != nil {
		return models.Share{}, fmt.Errorf("create vault request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Share{}, err
	}

	var body models.CreateVaultResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.Share{}, fmt.Errorf("decode create vault response: %w", err)
	}

	return body.Share, nil
}

// UpdateVault implements [RemoteDatasource].
func (v *vaultAPIAdapter) UpdateVault(ctx context.Context, shareID string, req models.UpdateVaultRequest) (models.Share, error) {
	resp, err := v.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/api/vault/vaults/" + shareID)
	if err != nil {
		return models.Share{}, fmt.Errorf("update vault request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Share{}, err
	}

	var body models.CreateVaultResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.Share{}, fmt.Errorf("decode update vault response: %w", err)
	}

	return body.Share, nil
}

// DeleteVault implements [RemoteDatasource].
func (v *vaultAPIAdapter) DeleteVault(ctx context.Context, shareID string) error {
	resp, err := v.authedRequest(ctx).Delete("/api/vault/vaults/" + shareID)
	if err != nil {
		return fmt.Errorf("delete vault request: %w", err)
	}

	return mapHTTPError(resp)
}

// CreateItem implements [RemoteDatasource].
func (v *vaultAPIAdapter) CreateItem(ctx context.Context, shareID string, req models.CreateItemRequest) (models.ItemData, error) {
	resp, err := v.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/vault/shares/" + shareID + "/items")
	if err != nil {
		return models.ItemData{}, fmt.Errorf("create item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ItemData{}, err
	}

	var body models.CreateItemResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.ItemData{}, fmt.Errorf("decode create item response: %w", err)
	}

	return body.Item, nil
}

func (v *vaultAPIAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := v.client.R().SetContext(ctx)
	if token := v.bearerToken(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func parseUserIDFromJWT(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", errors.New("token has no subject")
	}

	return sub, nil
}
