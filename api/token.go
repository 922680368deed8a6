// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package api

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"
)

// NewPushNotificationToken generates a 64 hex character subscriber
// token: four concatenated 16-char windows of SHA-512(random 128-bit
// value : unix nanosecond timestamp), each window reseeded with its
// index so the four windows aren't simply the same 16 bytes repeated.
// This is spec.md's minimum entropy contract; nothing here prevents a
// stronger scheme later.
func NewPushNotificationToken() (string, error) {
	var entropy [16]byte
	if _, err := rand.Read(entropy[:]); err != nil {
		return "", err
	}
	now := time.Now().UnixNano()

	var token [64]byte
	for i := 0; i < 4; i++ {
		h := sha512.New()
		h.Write(entropy[:])
		var tBuf [8]byte
		binary.BigEndian.PutUint64(tBuf[:], uint64(now))
		h.Write(tBuf[:])
		fmt.Fprintf(h, ":%d", i)
		sum := h.Sum(nil)
		window := hex.EncodeToString(sum)[:16]
		copy(token[i*16:(i+1)*16], window)
	}
	return string(token[:]), nil
}
