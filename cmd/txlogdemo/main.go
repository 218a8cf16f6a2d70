package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"k8s.io/klog/v2"

	"github.com/metailurini/txlog/cmd/txlogdemo/app"
)

func main() {
	defer klog.Flush()

	if err := app.NewCommand("txlogdemo").Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v %v\n", color.RedString("Error:"), err)
		os.Exit(1)
	}
}
