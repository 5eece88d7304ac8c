// Command astrorect reads a closed rectilinear polygon, one "x,y" vertex per
// line, and prints the largest rectangle spanned by two vertices (part 1) and
// the largest such rectangle lying inside the polygon (part 2).
//
// Usage:
//
//	astrorect [input-file]
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
