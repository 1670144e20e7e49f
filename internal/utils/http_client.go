// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client used to talk
// to the puzzle API (smoke checks, end-to-end tests).
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080")
//	resp, err := client.R().SetQueryParam("date", "2025-11-01").Get("/api/puzzle.getByDate")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client rooted at baseURL that sends and accepts
// JSON. Each call returns an independent client instance.
func NewHTTPClient(baseURL string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}

// WithSession attaches the session cookie to every request of the client.
func (c *HTTPClient) WithSession(cookieName, token string) *HTTPClient {
	c.SetCookie(&http.Cookie{Name: cookieName, Value: token})
	return c
}
