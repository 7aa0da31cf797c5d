// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Response is the JSON envelope used by every API endpoint.
//
// Success is always present; the remaining fields are filled depending on
// the endpoint and omitted when empty.
type Response struct {
	Success   bool       `json:"success"`
	Message   string     `json:"message,omitempty"`
	Token     string     `json:"token,omitempty"`
	User      *UserView  `json:"user,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Version   string     `json:"version,omitempty"`
}
