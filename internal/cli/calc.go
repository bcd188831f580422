package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/m00nlygreat/manse/internal/report"
)

// BirthFlags holds the birth-parameter flags shared by calc and cycles.
type BirthFlags struct {
	Time   string
	TZ     float64
	Lon    float64
	LMT    bool
	Cycles int
	Sex    string
}

func addBirthFlags(cmd *cobra.Command, f *BirthFlags) {
	cmd.Flags().StringVar(&f.Time, "time", "", "birth time HH:MM (default 12:00)")
	cmd.Flags().Float64Var(&f.TZ, "tz", report.DefaultTZHours, "UTC offset in hours")
	cmd.Flags().Float64Var(&f.Lon, "lon", report.DefaultLongitude, "birth longitude in degrees")
	cmd.Flags().BoolVar(&f.LMT, "lmt", false, "use true local time for the hour pillar")
	cmd.Flags().IntVar(&f.Cycles, "cycles", report.DefaultCycles, "number of luck-cycle decades")
	cmd.Flags().StringVar(&f.Sex, "sex", "male", "sex (male|female), affects luck-cycle direction")
}

func (f *BirthFlags) request(date string) (report.Request, error) {
	y, m, d, err := report.ParseDate(date)
	if err != nil {
		return report.Request{}, err
	}
	hh, mm, err := report.ParseTime(f.Time)
	if err != nil {
		return report.Request{}, err
	}
	return report.Request{
		Year: y, Month: m, Day: d,
		Hour: hh, Minute: mm,
		TZHours:      f.TZ,
		Longitude:    f.Lon,
		UseTrueLocal: f.LMT,
		Cycles:       f.Cycles,
		Female:       strings.HasPrefix(strings.ToLower(f.Sex), "f"),
	}, nil
}

// reportFailure emits err through the formatter and wraps it with the
// matching exit code: invalid input is a command error (exit 2), anything
// else is an internal computation failure (exit 1).
func reportFailure(formatter *OutputFormatter, err error) error {
	if report.IsInputError(err) {
		_ = formatter.Error("E_INPUT", err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid birth input", err)
	}
	_ = formatter.Error("E_INTERNAL", err.Error(), nil)
	return WrapExitError(ExitFailure, "computation failed", err)
}

// CalcOptions holds flags for the calc command.
type CalcOptions struct {
	*RootOptions
	Birth BirthFlags
}

// NewCalcCommand creates the calc command.
func NewCalcCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CalcOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "calc <date>",
		Short: "Compute a full Four Pillars reading",
		Long: `Compute the four sexagenary pillars, the lunisolar date, and the
decade luck-cycle schedule for a birth date.

Example:
  manse calc 1990-05-15 --time 14:30
  manse calc 1990-05-15 --time 14:30 --sex female --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(opts, args[0], cmd)
		},
	}

	addBirthFlags(cmd, &opts.Birth)
	return cmd
}

func runCalc(opts *CalcOptions, date string, cmd *cobra.Command) error {
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

	formatter.VerboseLog("computing reading for %04d-%02d-%02d %02d:%02d (tz %+.1f, lon %.2f)",
		req.Year, req.Month, req.Day, req.Hour, req.Minute, req.TZHours, req.Longitude)

	reading, err := report.Build(req)
	if err != nil {
		return reportFailure(formatter, err)
	}

	if opts.Format == "json" {
		return formatter.Success(reading)
	}
	return formatter.Success(renderReading(reading))
}

func renderReading(r report.Reading) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", r.Gregorian, r.Sex)
	fmt.Fprintf(&b, "사주: %s\n", r.Korean)
	fmt.Fprintf(&b, "      %s\n", r.Hanja)
	if r.Lunar != "" {
		leap := ""
		if r.LeapMonth != nil && *r.LeapMonth {
			leap = " (윤달)"
		}
		fmt.Fprintf(&b, "음력: %s%s\n", r.Lunar, leap)
	} else {
		fmt.Fprintf(&b, "음력: (지원 범위 밖)\n")
	}
	fmt.Fprintf(&b, "대운: %s, %s부터, 시작 나이 %.2f세",
		r.Schedule.Direction, r.Schedule.DateStart, r.Schedule.StartAgeYears)
	for _, c := range r.Cycles {
		fmt.Fprintf(&b, "\n  %2d  %6.2f세  %s  %s (%s)", c.N, c.StartAge, c.StartDate, c.Ganzhi, c.GanzhiKor)
	}
	return b.String()
}
