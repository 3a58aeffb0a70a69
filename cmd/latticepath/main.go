// Command latticepath solves, generates and serves 3D lattice shortest-path
// problems.
//
//	latticepath solve    --input input.txt --output output.txt
//	latticepath generate --bounds 10,10,10 --seed 7 --output input.txt
//	latticepath serve    --addr :8080
//
// Every flag can also come from a config file (--config) or from an
// environment variable named LATTICEPATH_<FLAG>, with dashes as underscores.
package main

import (
	"os"

	"k8s.io/klog/v2"
)

func main() {
	defer klog.Flush()

	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		klog.ErrorS(err, "Command failed")
		klog.Flush()
		os.Exit(1)
	}
}
