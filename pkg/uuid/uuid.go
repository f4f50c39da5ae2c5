// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid generates the two identifier flavours used by Cookbook.

  - NewRandom: version 4, assigned by the client to every new recipe draft.
  - NewTimeOrdered: version 7, used for request correlation IDs so that log
    lines sort by creation time.
*/
package uuid

import "github.com/google/uuid"

// NewRandom generates a new random UUIDv4 string.
func NewRandom() string {
	return uuid.NewString()
}

// NewTimeOrdered generates a new UUIDv7 string.
//
// It falls back to a random UUID if the clock-based generator fails.
func NewTimeOrdered() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Valid reports whether value parses as a UUID of any version.
func Valid(value string) bool {
	return uuid.Validate(value) == nil
}
