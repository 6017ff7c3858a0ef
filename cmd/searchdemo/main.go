// Command searchdemo is the example-driver CLI: it seeds a Server from
// a YAML fixture and runs one add/find/match/remove/dedup operation
// against it, printing the result. It is glue over the library named
// out of core scope in spec §1, not part of the engine itself.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
