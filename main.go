// SPDX-License-Identifier: MPL-2.0

package main

import "venvctl/cmd/venvctl"

func main() {
	cmd.Execute()
}
