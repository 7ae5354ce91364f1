// cgp is a command line preprocessor for G-code programs: it strips
// comments and whitespace, scales feed rates and expands arcs into line
// segments.
package main

import "log"

func main() {
	log.SetFlags(0)
	if err := RootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
