// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive form application runtime.
//
// It wires the configuration, the form controller and the terminal UI into
// a single process lifecycle that ends on quit or on an interrupt signal.
package client
