// Copyright © 2025 Slipway Authors

package main

import "github.com/slipway-sh/slipway/cmd/slipway/cmd"

func main() {
	cmd.Execute()
}
