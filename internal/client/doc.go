// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It drives the terminal UI, which talks to the credential keeper server
// through an adapter.AuthAdapter, and turns a user-initiated quit into a
// clean exit.
package client
