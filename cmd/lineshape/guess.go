package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-lineshape/internal/logging"
	"github.com/cwbudde/algo-lineshape/lineshape/model"
)

var errNoData = errors.New("no data rows")

func newGuessCmd() *cobra.Command {
	var (
		dataFile string
		negative bool
	)

	cmd := &cobra.Command{
		Use:   "guess [model]",
		Short: "derive starting parameters from x,y data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := model.Lookup(args[0])
			if err != nil {
				return err
			}

			fh, err := os.Open(dataFile)
			if err != nil {
				return err
			}
			defer fh.Close()

			x, y, err := readXY(fh)
			if err != nil {
				return fmt.Errorf("%s: %w", dataFile, err)
			}
			logging.Logger.Debug("read data", "file", dataFile, "rows", len(x))

			p, err := m.Guess(x, y, negative)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, h := range m.Hints {
				fmt.Fprintf(tw, "%s\t%.6g\n", h.Name, p[h.Name])
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&dataFile, "data", "", "CSV file with x,y columns")
	cmd.Flags().BoolVar(&negative, "negative", false, "fit a dip instead of a peak")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

// readXY reads two-column CSV. A non-numeric first row is treated as a
// header; lines starting with # are skipped.
func readXY(r io.Reader) (x, y []float64, err error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	for i, rec := range records {
		if len(rec) < 2 {
			return nil, nil, fmt.Errorf("line %d: want 2 columns, got %d", i+1, len(rec))
		}
		xv, errX := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		yv, errY := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if errX != nil || errY != nil {
			if i == 0 {
				continue
			}
			return nil, nil, fmt.Errorf("line %d: %w", i+1, errors.Join(errX, errY))
		}
		x = append(x, xv)
		y = append(y, yv)
	}

	if len(x) == 0 {
		return nil, nil, errNoData
	}
	return x, y, nil
}
