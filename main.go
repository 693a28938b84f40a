// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/SrVladyslav/falquor-backend/cmd"

func main() {
	cmd.Execute()
}
