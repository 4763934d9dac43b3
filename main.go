// SPDX-License-Identifier: MPL-2.0

package main

import cmd "modmap-cli/cmd/modmap"

func main() {
	cmd.Execute()
}
