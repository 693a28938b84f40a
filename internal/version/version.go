// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package version

// Version is overridden at build time with -ldflags "-X .../internal/version.Version=..."
var Version = "dev"
