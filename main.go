// SPDX-License-Identifier: MPL-2.0

package main

import cmd "swayout/cmd/swayout"

func main() {
	cmd.Execute()
}
