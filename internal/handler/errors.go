// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Harsh Choudhary

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration has no HTTP address. It is fatal at startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
