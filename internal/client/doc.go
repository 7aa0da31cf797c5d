// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the cpoint command-line client.
//
// The client runs one subcommand per invocation (register, login, me,
// profile, logout, health) against the API through an
// [adapter.ServerAdapter]. The bearer token obtained on register or login is
// kept in a [TokenStore] between invocations and discarded on logout or
// when the server rejects it.
package client
