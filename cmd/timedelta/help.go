/* Copyright (c) 2021 David Bulkow */

package main

import (
	"fmt"
	"io"
)

const usagetext = `Print two (recent) timestamps with the given delta.

Timestamps are printed in ISO format.

Usage:  timedelta [-h] [-n] [-v] delta [shift]
Output: <before> - <after>  [# delta]
`

const argstext = `The first timestamp is always in the past with respect to the second (or
the same).

 delta  can be of the formats:
        1day,       1day3minutes,       1d3m,      3h,      1h, 3h2m50s
        (or equivalently)
        1:00:00:00,   1:00:03:00, 1:00:03:00, 3:00:00, 1:00:00, 3:02:50

 shift  optional. Can be of any of the same kind of formats as delta.
        If undefined, <after> will be 'now'; if defined, the dates will
        be shifted by the time specified. shift can be preceded by a
        minus (-) or plus (+) sign, a minus sign shifts "to the past",
        a plus sign shifts "to the future", plus sign is the same as
        no sign.

    -n  do not print a new line at the end.

    -v  print the original delta after the timestamps in format:
        <before> - <after>  #  delta
        this makes verifying the delta length easier visually.

    -h  prints help, -hh, -hhh and -hhhh will print more details
        increasingly.
`

const examplestext = `Examples:

Assuming the current time is 2024-09-04 02:59:53-07:00

A delta between now and a day ago:

$ timedelta 1d
2024-09-03 02:59:53-07:00 - 2024-09-04 02:59:53-07:00

Shifting 7 seconds into the future:

$ timedelta 1d 7s
2024-09-03 03:00:00-07:00 - 2024-09-04 03:00:00-07:00

Shifting 3 seconds into the past:

$ timedelta 1d -3s
2024-09-03 02:59:50-07:00 - 2024-09-04 02:59:50-07:00

The same but including the delta:

$ timedelta -v 1d -3s
2024-09-03 02:59:50-07:00 - 2024-09-04 02:59:50-07:00  # 1d

A delta between now and a day from now:

$ timedelta -1d
2024-09-04 02:59:53-07:00 - 2024-09-05 02:59:53-07:00
`

const notestext = `Notes:

delta can also be negative, in which case the resulting delta will be a
time addition instead of a subtraction. The pair is then printed in the
future, still ordered oldest first.

Flags must come before a delta or shift that starts with a sign.

environment:
    TIMEDELTA_FORMAT   timestamp output layout (Go reference layout)
    TIMEDELTA_VERBOSE  'true' makes -v the default
`

// printHelp writes the cumulative help tiers for the given level,
// capped at the deepest tier.
func printHelp(w io.Writer, level int) {
	fmt.Fprint(w, usagetext, "\n")
	if level >= 2 {
		fmt.Fprint(w, argstext, "\n")
	}
	if level >= 3 {
		fmt.Fprint(w, examplestext, "\n")
	}
	if level >= 4 {
		fmt.Fprint(w, notestext, "\n")
	}
}
