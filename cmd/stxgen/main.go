/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command stxgen emits store wiring for state-object types. It is meant to
// run under go generate inside the package that declares the types.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/golang/glog"

	"dirpx.dev/stx/gen"
)

const StxgenVersion = "1.0.0"

func main() {
	usage := `Store wiring generator.

For every named struct type, stxgen emits one zero-size selector per
declared field, a <Type>Store accessor bound to the default hub and, when
the type can be duplicated, a <Type>Clone helper. Run it from go generate:

    //go:generate go run dirpx.dev/stx/cmd/stxgen --type=Settings

Usage:
    stxgen --type=<name>... [--dir=<dir>] [--output=<file>] [--inplace]
        [--tags=<tags>] [--dry-run] [--verbosity=<level>]

Options:
    -h --help            Show this screen.
    --version            Show version.
    --type=<name>        State type to wire. Repeatable.
    --dir=<dir>          Package directory to load [default: .].
    --output=<file>      Output file name; requires exactly one --type.
    --inplace            Force the in-place cell variant.
    --tags=<tags>        Comma-separated build tags for the loader.
    --dry-run            Resolve and render, but write nothing.
    --verbosity=<level>  Glog verbosity [default: 0].`

	opts, err := docopt.ParseArgs(usage, os.Args[1:], StxgenVersion)
	if err != nil {
		panic(err)
	}

	verbosity, _ := opts.String("--verbosity")
	if err := initGlog(verbosity); err != nil {
		glog.Exitf("stxgen: %v", err)
	}

	genOpts := gen.Options{}
	if names, ok := opts["--type"].([]string); ok {
		genOpts.Types = names
	}
	if dir, err := opts.String("--dir"); err == nil {
		genOpts.Dir = dir
	}
	if out, err := opts.String("--output"); err == nil {
		genOpts.Output = out
	}
	if tags, err := opts.String("--tags"); err == nil && tags != "" {
		genOpts.Tags = strings.Split(tags, ",")
	}
	genOpts.InPlace, _ = opts.Bool("--inplace")

	glog.V(1).Infof("stxgen: loading %s for types %s", genOpts.Dir, strings.Join(genOpts.Types, ", "))

	results, err := gen.Generate(genOpts)
	if err != nil {
		glog.Exitf("stxgen: %v", err)
	}

	dryRun, _ := opts.Bool("--dry-run")
	for _, r := range results {
		if dryRun {
			fmt.Println(r.File)
			continue
		}
		if err := os.WriteFile(r.File, r.Src, 0o644); err != nil {
			glog.Exitf("stxgen: writing %s: %v", r.File, err)
		}
		glog.V(1).Infof("stxgen: wrote %s (%d bytes)", r.File, len(r.Src))
	}
}

// initGlog routes glog to stderr at the requested verbosity. glog reads
// plain flags, so the empty parse just marks the flag set ready; docopt
// has already consumed the real arguments.
func initGlog(verbosity string) error {
	if !flag.Parsed() {
		flag.CommandLine.Parse([]string{})
	}
	if err := flag.Set("logtostderr", "true"); err != nil {
		return err
	}
	if err := flag.Set("v", verbosity); err != nil {
		return fmt.Errorf("--verbosity must be an integer level: %v", err)
	}
	return nil
}
