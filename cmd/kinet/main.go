// SPDX-License-Identifier: MIT

// Command kinet is the experiment driver: generate random kinetic graphs,
// enumerate their valid subgraphs, and run the subgradient optimizer.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
