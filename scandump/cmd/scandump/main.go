package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"

	"github.com/bytecursor/bytecursor"
	"github.com/bytecursor/bytecursor/scandump"
)

var (
	encodingName = flag.String("e", "utf-8", "text encoding: utf-8, utf-16le, utf-16be, latin-1, windows-1252")
	pattern      = flag.String("p", "", "regex pattern to tokenize with instead of lines")
	threshold    = flag.Int("t", 0, "buffer threshold in bytes (0 means the default)")
	stats        = flag.Bool("stats", false, "print token and refill size distributions")
)

var encodings = map[string]*bytecursor.Encoding{
	"utf-8":        bytecursor.UTF8,
	"utf-16le":     bytecursor.UTF16LE,
	"utf-16be":     bytecursor.UTF16BE,
	"latin-1":      bytecursor.Latin1,
	"windows-1252": bytecursor.Windows1252,
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [file]\n\nreads from stdin if no file is given\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	enc, ok := encodings[*encodingName]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown encoding %q\n", *encodingName)
		os.Exit(1)
	}

	cfg := scandump.Config{
		Encoding:  enc,
		Threshold: *threshold,
		Stats:     *stats,
	}
	if *pattern != "" {
		re, err := regexp.Compile(*pattern)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bad pattern: %v\n", err)
			os.Exit(1)
		}
		cfg.Pattern = re
	}

	var err error
	if flag.NArg() > 0 {
		err = scandump.DumpFile(flag.Arg(0), os.Stdout, cfg)
	} else {
		err = scandump.Dump(os.Stdin, os.Stdout, cfg)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
