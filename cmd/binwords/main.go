package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/I-Am-Dench/binwords/words"
	"github.com/fatih/color"
	"github.com/ilyakaznacheev/cleanenv"
)

var VerboseFlag bool

type verboseWriter struct{}

func (v *verboseWriter) Write(b []byte) (int, error) {
	if VerboseFlag {
		return os.Stderr.Write(b)
	} else {
		return len(b), nil
	}
}

const prefix = "binwords: "

var (
	Error   = log.New(os.Stderr, prefix, 0)
	Verbose = log.New(&verboseWriter{}, prefix, 0)
)

const Usage = `Usage:
	binwords [options] <file>`

func usage(flagset *flag.FlagSet) func() {
	return func() {
		out := flagset.Output()
		fmt.Fprintln(out, Usage)
		fmt.Fprintln(out, "\nOptions:")
		flagset.PrintDefaults()
		fmt.Fprintln(out)
	}
}

func run(w io.Writer, name string) error {
	data, err := words.ReadFile(name)
	if err != nil {
		return err
	}

	Verbose.Printf("%s: %d bytes, crc32 %08x", name, len(data), words.Checksum(data))
	Verbose.Printf("%s: %d words", name, (len(data)+words.WordWidth-1)/words.WordWidth)

	out := bufio.NewWriter(w)
	if err := words.Fprint(out, data); err != nil {
		return err
	}
	return out.Flush()
}

func main() {
	flagset := flag.NewFlagSet("binwords", flag.ExitOnError)
	verbose := flagset.Bool("v", false, "Verbose mode.")
	flagset.Usage = cleanenv.FUsage(flagset.Output(), &Config{}, nil, usage(flagset))
	flagset.Parse(os.Args[1:])

	cfg, err := ReadConfig()
	if err != nil {
		Error.Fatal(err)
	}

	VerboseFlag = *verbose || cfg.Verbose
	if !cfg.Color {
		color.NoColor = true
	}
	Error.SetPrefix(color.New(color.FgRed, color.Bold).Sprint(prefix))

	if flagset.NArg() < 1 {
		flagset.Usage()
		os.Exit(2)
	}

	if err := run(os.Stdout, flagset.Arg(0)); err != nil {
		Error.Fatalf("%+v", err)
	}
}
