package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jsondec/jsondec/jsonv"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "fmt":
		fmtCmd(os.Args[2:])
	case "check":
		checkCmd(os.Args[2:])
	case "yaml":
		yamlCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "jsondec CLI\n\nUsage:\n  jsondec fmt [-indent n] [file]\n  jsondec check [file]\n  jsondec yaml [-indent n] [file]\n\nNotes:\n  - fmt pretty-prints a JSON document.\n  - check parses a JSON document and reports the first error.\n  - yaml converts a YAML document to JSON.\n  - Input is read from stdin when no file is given.")
}

func fmtCmd(args []string) {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	indent := fs.Int("indent", 4, "indentation width; 0 writes compact output")
	_ = fs.Parse(args)
	v, err := jsonv.Parse(readInput(fs.Arg(0)))
	if err != nil {
		die(err)
	}
	fmt.Println(jsonv.WriteString(v, jsonv.WriteOpt{Indent: *indent}))
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	_ = fs.Parse(args)
	if _, err := jsonv.Parse(readInput(fs.Arg(0))); err != nil {
		die(err)
	}
}

func yamlCmd(args []string) {
	fs := flag.NewFlagSet("yaml", flag.ExitOnError)
	indent := fs.Int("indent", 4, "indentation width; 0 writes compact output")
	_ = fs.Parse(args)
	v, err := jsonv.FromYAML(readInput(fs.Arg(0)))
	if err != nil {
		die(err)
	}
	fmt.Println(jsonv.WriteString(v, jsonv.WriteOpt{Indent: *indent}))
}

func readInput(path string) []byte {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			die(err)
		}
		return data
	}
	data, err := os.ReadFile(path)
	if err != nil {
		die(err)
	}
	return data
}

func die(err error) {
	fmt.Fprintln(os.Stderr, "jsondec:", err)
	os.Exit(1)
}
