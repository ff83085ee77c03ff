// SPDX-License-Identifier: MPL-2.0

// psabigen generates the type tables of the RISC-V psABI.
package main

import "github.com/invowk/psabigen/cmd/psabigen"

func main() {
	cmd.Execute()
}
