// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Message is a contact-form submission stored in the "messages" table.
//
// All fields except ID are optional because the table is filled from
// unauthenticated public input. A nil pointer is stored as NULL.
type Message struct {
	ID        int64   `json:"id"`
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Message   *string `json:"message,omitempty"`
	IPAddress *string `json:"ip_address,omitempty"`
}

// StringPtr returns a pointer to s, or nil when s is empty.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringValue dereferences p, returning "" for nil.
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
