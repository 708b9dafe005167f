package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/suparena/managedstore"
	"github.com/suparena/managedstore/managers"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	typeFlag    = flag.String("type", "object", "Config type to load: object, stage or physics")
	defaults    = flag.Bool("defaults", false, "Mark loaded templates as protected defaults")
	verbose     = flag.Bool("verbose", false, "Enable diagnostic logging")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := managedstore.GetVersionInfo()
		fmt.Printf("managedstore attrls version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: attrls [flags] <path>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	var opts []managedstore.Option
	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "attrls: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		opts = append(opts, managedstore.WithLogger(logger))
	}

	var ids []int
	var handles func() []string
	switch *typeFlag {
	case "object":
		mgr := managers.NewObjectAttributesManager(opts...)
		ids = mgr.LoadAllConfigsFromPath(path, *defaults)
		handles = mgr.Handles
	case "stage":
		mgr := managers.NewStageAttributesManager(opts...)
		ids = mgr.LoadAllConfigsFromPath(path, *defaults)
		handles = mgr.Handles
	case "physics":
		mgr := managers.NewPhysicsAttributesManager(opts...)
		ids = mgr.LoadAllConfigsFromPath(path, *defaults)
		handles = mgr.Handles
	default:
		fmt.Fprintf(os.Stderr, "attrls: unknown config type %q\n", *typeFlag)
		os.Exit(2)
	}

	loaded := 0
	for _, id := range ids {
		if id != managedstore.IDUndefined {
			loaded++
		}
	}
	fmt.Printf("Loaded %d of %d %s config(s) from %s\n", loaded, len(ids), *typeFlag, path)
	for _, h := range handles() {
		fmt.Printf("  %s\n", h)
	}
	if loaded == 0 {
		os.Exit(1)
	}
}
