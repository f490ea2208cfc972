package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/invtab/invtab/internal/session"
	"github.com/invtab/invtab/internal/shell"
)

var (
	loadFlag    = flag.String("load", "", "Load the data files in a folder")
	searchFlag  = flag.String("search", "", "Search rows (format: column=value)")
	summaryFlag = flag.String("summary", "", "Generate a summary report and export it to the given path")
	showFlag    = flag.Int("show", 0, "Display the first N rows")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A tool to consolidate, search, and summarize tabular data files.\n")
		fmt.Fprintf(os.Stderr, "With no options, an interactive shell is started.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -load ./data -show 10\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -load ./data -search category=fruit\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -load ./data -summary report.csv\n", os.Args[0])
	}

	flag.Parse()

	showSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "show" {
			showSet = true
		}
	})

	sh := shell.New(session.New(), os.Stdout)

	// Batch mode: apply the requested operations in order, same as the
	// interactive commands would.
	batch := false
	if *loadFlag != "" {
		sh.Load(*loadFlag)
		batch = true
	}
	if *searchFlag != "" {
		sh.Search(*searchFlag)
		batch = true
	}
	if *summaryFlag != "" {
		sh.Summary(*summaryFlag)
		batch = true
	}
	if showSet {
		sh.Show(strconv.Itoa(*showFlag))
		batch = true
	}
	if batch {
		return
	}

	if err := sh.Run(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
