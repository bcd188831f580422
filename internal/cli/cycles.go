package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/m00nlygreat/manse/internal/report"
)

// CyclesOptions holds flags for the cycles command.
type CyclesOptions struct {
	*RootOptions
	Birth BirthFlags
}

// NewCyclesCommand creates the cycles command.
func NewCyclesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CyclesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "cycles <date>",
		Short: "Compute the decade luck-cycle schedule",
		Long: `Compute the luck-cycle (dae-un) schedule for a birth: direction,
distance to the reference solar term, starting age, and the decade entries.

Example:
  manse cycles 1990-05-15 --time 14:30 --sex female --cycles 8`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCycles(opts, args[0], cmd)
		},
	}

	addBirthFlags(cmd, &opts.Birth)
	return cmd
}

func runCycles(opts *CyclesOptions, date string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	req, err := opts.Birth.request(date)
	if err != nil {
		return reportFailure(formatter, err)
	}

	reading, err := report.Build(req)
	if err != nil {
		return reportFailure(formatter, err)
	}

	if opts.Format == "json" {
		return formatter.Success(reading.Schedule)
	}

	s := reading.Schedule
	var b strings.Builder
	fmt.Fprintf(&b, "direction: %s (%s → %s)\n", s.Direction, s.CurrentTerm, s.ToTerm)
	fmt.Fprintf(&b, "to term:   %s (%.0f°) at %s, %.4f days\n", s.ToTerm, s.ToTermDegree, s.ToTermUTC, s.Days)
	fmt.Fprintf(&b, "start age: %.4f years (%s)", s.StartAgeYears, s.DateStart)
	for _, e := range s.Entries {
		fmt.Fprintf(&b, "\n  %2d  %7.3f..%7.3f  %s  %s", e.N, e.AgeStart, e.AgeEnd, e.DateStart, e.Pillar)
	}
	return formatter.Success(b.String())
}
