// Command vervedemo exercises the verve engine: a windowed demo, a
// terminal monitor, an HTTP feed and a headless run.
package main

import "os"

func main() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}
