package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m00nlygreat/manse/internal/lunar"
	"github.com/m00nlygreat/manse/internal/report"
)

// lunarResult is the JSON payload for the lunar command.
type lunarResult struct {
	Gregorian string `json:"gregorian"`
	Lunar     string `json:"lunar,omitempty"`
	LeapMonth *bool  `json:"leap_month,omitempty"`
	Supported bool   `json:"supported"`
}

// NewLunarCommand creates the lunar command.
func NewLunarCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lunar <date>",
		Short: "Convert a Gregorian date to the lunisolar calendar",
		Long: `Convert a Gregorian civil date to its Korean lunisolar equivalent.

Supported range: 1900-01-31 through 2100-12-31. Dates outside the range
report an explicit absence rather than failing.

Example:
  manse lunar 2024-02-10`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLunar(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runLunar(opts *RootOptions, date string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	y, m, d, err := report.ParseDate(date)
	if err != nil {
		return reportFailure(formatter, err)
	}

	res := lunarResult{Gregorian: fmt.Sprintf("%04d-%02d-%02d", y, m, d)}
	if ld, ok := lunar.Convert(y, m, d); ok {
		res.Supported = true
		res.Lunar = fmt.Sprintf("%04d-%02d-%02d", ld.Year, ld.Month, ld.Day)
		leap := ld.Leap
		res.LeapMonth = &leap
	}

	if opts.Format == "json" {
		return formatter.Success(res)
	}
	if !res.Supported {
		return formatter.Success(fmt.Sprintf("%s: no lunar date (outside 1900-01-31..2100-12-31)", res.Gregorian))
	}
	leap := ""
	if res.LeapMonth != nil && *res.LeapMonth {
		leap = " (윤달)"
	}
	return formatter.Success(fmt.Sprintf("%s → 음력 %s%s", res.Gregorian, res.Lunar, leap))
}
