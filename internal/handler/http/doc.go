// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the RPC-style JSON transport of the application.
//
// Every operation is exposed as "/api/<namespace>.<procedure>". Public
// procedures accept anonymous callers; protected ones require the identity
// resolved from the session cookie or the "Authorization: Bearer" header.
// Request tracing, access logging and identity resolution are handled by
// middleware before the request reaches the service layer.
package http
