// SPDX-License-Identifier: MIT

// Command strassen multiplies matrices from YAML files and benchmarks the
// multiplication algorithms of github.com/katalvlaran/clrs/multiply.
//
//	strassen multiply --algo strassen input.yaml
//	strassen bench --config strassen.yaml
//	strassen config
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
