// dsmr_decode decodes P1 telegrams captured from a smart meter.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/NotCoffee418/dsmr_parser/pkg/dsmr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/ianaindex"
)

var (
	rootCmd = &cobra.Command{
		Use:   "dsmr_decode [file...]",
		Short: "Decode DSMR P1 telegrams",
		Long: "dsmr_decode reads P1 telegrams from files, or stdin when no file is given, " +
			"and prints their fields.",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := newParser()
			if err != nil {
				return err
			}
			opts := decodeOptions{
				parser:         parser,
				ignoreChecksum: ignoreChecksum,
				format:         format,
			}

			if len(args) == 0 {
				return run(cmd.OutOrStdout(), os.Stdin, opts)
			}
			for _, name := range args {
				if err := runFile(cmd.OutOrStdout(), name, opts); err != nil {
					return err
				}
			}
			return nil
		},
	}

	ignoreChecksum bool
	repairMangled  bool
	timeZone       string
	charset        string
	format         string
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&ignoreChecksum, "ignore-checksum", false, "accept telegrams with a wrong checksum")
	rootCmd.PersistentFlags().BoolVar(&repairMangled, "repair-mangled", false, "merge the split gas reading of DSMR 2.2 and 3 meters")
	rootCmd.PersistentFlags().StringVar(&timeZone, "timezone", "Europe/Amsterdam", "IANA time zone of the meter clock")
	rootCmd.PersistentFlags().StringVar(&charset, "charset", "", "character set of the telegrams, e.g. ISO-8859-1 (default ASCII)")
	rootCmd.PersistentFlags().StringVar(&format, "format", formatJSON, "output format: json, text or telegram")
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

func newParser() (*dsmr.Parser, error) {
	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		return nil, fmt.Errorf("timezone: %w", err)
	}
	opts := []dsmr.Option{
		dsmr.WithLocation(loc),
		dsmr.WithRepairMangled(repairMangled),
	}
	if charset != "" {
		enc, err := ianaindex.IANA.Encoding(charset)
		if err != nil || enc == nil {
			return nil, fmt.Errorf("unsupported charset %q", charset)
		}
		opts = append(opts, dsmr.WithEncoding(enc))
	}
	return dsmr.NewParser(opts...), nil
}

func runFile(w io.Writer, name string, opts decodeOptions) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := run(w, f, opts); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
