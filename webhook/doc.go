// Copyright (c) 2025 The tripvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package webhook forwards trip-questionnaire submissions to a
// Discord-compatible chat webhook as an embed message. The client is fire
// and forget: one POST, no retries, failures reported to the caller.
package webhook
