// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/clrs/internal/bench"
	"github.com/katalvlaran/clrs/internal/config"
	"github.com/katalvlaran/clrs/matrix"
)

// operandsFile is the input document of `strassen multiply`:
//
//	a: [[1, 2], [3, 4]]
//	b: [[5, 6], [7, 8]]
type operandsFile struct {
	A [][]float64 `yaml:"a"`
	B [][]float64 `yaml:"b"`
}

// productFile is the YAML output document.
type productFile struct {
	Algorithm string      `yaml:"algorithm"`
	C         [][]float64 `yaml:"c"`
}

func newMultiplyCmd(a *app) *cobra.Command {
	var (
		algo   string
		cutoff int
		asYAML bool
	)

	cmd := &cobra.Command{
		Use:   "multiply FILE",
		Short: "Multiply the matrices a and b read from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !config.IsAlgorithm(algo) {
				return fmt.Errorf("--algo %q: %w", algo, bench.ErrUnknownAlgorithm)
			}
			if !cmd.Flags().Changed("cutoff") {
				cutoff = a.cfg.Bench.Cutoff
			}

			x, y, err := readOperands(args[0])
			if err != nil {
				return err
			}
			fn, err := bench.Kernel[float64](algo, cutoff, a.logger)
			if err != nil {
				return err
			}
			c, err := fn(x, y)
			if err != nil {
				return err
			}
			a.logger.Info("multiplied", "algorithm", algo, "rows", c.Rows(), "cols", c.Cols())

			if asYAML {
				return writeProduct(cmd, algo, c)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), c)
			return err
		},
	}

	cmd.Flags().StringVarP(&algo, "algo", "a", config.AlgoStrassen, "naive, recursive or strassen")
	cmd.Flags().IntVar(&cutoff, "cutoff", 1, "naive fallback size for the recursive kernels (default from config)")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the product as a YAML document")

	return cmd
}

// readOperands decodes the input file into two Dense matrices.
func readOperands(path string) (*matrix.Dense[float64], *matrix.Dense[float64], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var doc operandsFile
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	x, err := matrix.NewDenseFrom(doc.A)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: a: %w", path, err)
	}
	y, err := matrix.NewDenseFrom(doc.B)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: b: %w", path, err)
	}

	return x, y, nil
}

// writeProduct prints c as a productFile document.
func writeProduct(cmd *cobra.Command, algo string, c *matrix.Dense[float64]) error {
	out := productFile{Algorithm: algo, C: c.ToGrid().ToRows()}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}

	return enc.Close()
}
