/* Copyright (c) 2021 David Bulkow */

// Command timedelta prints a pair of timestamps separated by a given
// duration, optionally shifted relative to now.
package main

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/spf13/cobra"

	"github.com/tellezhector/time-delta/internal/getenv"
	"github.com/tellezhector/time-delta/internal/timespan"
)

// ISO 8601 with the local UTC offset, whole seconds
const isoLayout = "2006-01-02 15:04:05-07:00"

var RootCmd = &cobra.Command{
	Use:   "timedelta [flags] delta [shift]",
	Short: "Print two timestamps separated by a duration",
	Long:  usagetext,
	Args:  cobra.RangeArgs(1, 2),
	RunE:  run,

	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	noNewline bool
	verbose   bool
	layout    string
)

func run(cmd *cobra.Command, args []string) error {
	line, err := render(time.Now(), layout, args, verbose)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if noNewline {
		fmt.Fprint(out, line)
	} else {
		fmt.Fprintln(out, line)
	}

	return nil
}

// render computes the before/after pair for the given arguments
// anchored at now and formats the single output line.
func render(now time.Time, layout string, args []string, verbose bool) (string, error) {
	delta, err := timespan.Parse(args[0])
	if err != nil {
		return "", fmt.Errorf("delta: %w", err)
	}

	var shift int64
	if len(args) == 2 {
		shift, err = timespan.Parse(args[1])
		if err != nil {
			return "", fmt.Errorf("shift: %w", err)
		}
	}

	before, after := timespan.Resolve(now, delta, shift)

	line := fmt.Sprintf("%s - %s", before.Format(layout), after.Format(layout))
	if verbose {
		line = fmt.Sprintf("%s  # %s", line, args[0])
	}

	return line, nil
}

var (
	signedArg = regexp.MustCompile(`^[-+][0-9]`)
	helpArg   = regexp.MustCompile(`^-h+$`)
)

// shieldSigned inserts a "--" terminator ahead of the first argument
// starting with a sign and a digit, so flag parsing does not read a
// negative duration such as -1d as a flag group. Flags therefore come
// before the positional arguments.
func shieldSigned(args []string) []string {
	for i, a := range args {
		if a == "--" {
			return args
		}
		if signedArg.MatchString(a) {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			out = append(out, args[i:]...)
			return out
		}
	}
	return args
}

// helpLevel sums repeated help flags: -h is one level, -hh two, and
// so on, across arguments. Zero means help was not requested.
func helpLevel(args []string) int {
	level := 0
	for _, a := range args {
		if a == "--" {
			break
		}
		if a == "--help" {
			level++
			continue
		}
		if helpArg.MatchString(a) {
			level += len(a) - 1
		}
	}
	return level
}

func main() {
	env := getenv.NewEnv("TIMEDELTA")

	layout = env.Get("FORMAT", isoLayout)
	verbose = env.GetBool("VERBOSE", false)

	args := os.Args[1:]

	if level := helpLevel(args); level > 0 {
		printHelp(os.Stderr, level)
		return
	}

	RootCmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, "do not print a trailing newline")
	RootCmd.Flags().BoolVarP(&verbose, "verbose", "v", verbose, "append the original delta to the output")
	RootCmd.Flags().StringVar(&layout, "format", layout, "timestamp output layout")

	RootCmd.SetArgs(shieldSigned(args))

	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
