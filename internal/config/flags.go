// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// BindFlags registers all configuration flags on fs and returns a function
// that assembles a *StructuredConfig from the parsed values. The returned
// function must be called after fs (or a flag set wrapping it) is parsed.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-auto-migrate apply migrations on first store access
//	-c/-config json file path with configs
//	-owner-open-id open id of the owner account
//	-session-sign-key session token signing key
//	-session-duration session duration (e.g., "720h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level log level (debug, info, warn, error)
func BindFlags(fs *flag.FlagSet) func() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var autoMigrate bool
	var jsonConfigPath string
	var ownerOpenID string
	var sessionSignKey string
	var sessionDuration time.Duration
	var requestTimeout time.Duration
	var logLevel string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.BoolVar(&autoMigrate, "auto-migrate", false, "Apply migrations on first store access")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&ownerOpenID, "owner-open-id", "", "Open id of the owner account")
	fs.StringVar(&sessionSignKey, "session-sign-key", "", "Session token signing key")
	fs.DurationVar(&sessionDuration, "session-duration", 0, "Session duration (e.g., 720h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	return func() *StructuredConfig {
		return &StructuredConfig{
			App: App{
				OwnerOpenID:     ownerOpenID,
				SessionSignKey:  sessionSignKey,
				SessionDuration: sessionDuration,
				LogLevel:        logLevel,
			},
			Storage: Storage{
				DB: DB{
					DSN:         databaseDSN,
					AutoMigrate: autoMigrate,
				},
			},
			Server: Server{
				HTTPAddress:    serverAddress.String(),
				RequestTimeout: requestTimeout,
			},
			JSONFilePath: jsonConfigPath,
		}
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
