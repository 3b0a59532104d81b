// Command shadowbmp splits an 8-bpp grayscale BMP secret into n
// steganographically hidden shadows, or recovers the secret from any
// k of them.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
