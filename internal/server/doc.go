// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of the application.
//
// It owns startup, signal handling and graceful shutdown of the listener.
package server
