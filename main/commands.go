package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/fixedarray"
)

// parseList builds an Array from s split on sep. Blank input is the empty
// Array.
func parseList(s, sep string) (*fixedarray.Array[int], error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fixedarray.Empty[int](), nil
	}
	fields := strings.Split(s, sep)
	vals := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("parse element %q: %w", f, err)
		}
		vals = append(vals, v)
	}
	return fixedarray.Of(vals...)
}

type report interface {
	writeText(w io.Writer) error
}

func (a *app) render(w io.Writer, r report) error {
	if a.cfg.Output == outputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	return r.writeText(w)
}

type compareReport struct {
	Left     []int `yaml:"left"`
	Right    []int `yaml:"right"`
	Equal    bool  `yaml:"equal"`
	NotEqual bool  `yaml:"not_equal"`
	Less     bool  `yaml:"less"`
	Compare  int   `yaml:"compare"`
}

func (r compareReport) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "left: %v\nright: %v\n==: %t\n!=: %t\n<: %t\ncompare: %d\n",
		r.Left, r.Right, r.Equal, r.NotEqual, r.Less, r.Compare)
	return err
}

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare LEFT RIGHT",
		Short: "Report equality, length-first ordering and lexicographic order of two arrays.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := parseList(args[0], a.cfg.Separator)
			if err != nil {
				return err
			}
			defer left.Release()
			right, err := parseList(args[1], a.cfg.Separator)
			if err != nil {
				return err
			}
			defer right.Release()

			a.log.Debug().Int("left_len", left.Len()).Int("right_len", right.Len()).Msg("compare")
			return a.render(cmd.OutOrStdout(), compareReport{
				Left:     left.Data(),
				Right:    right.Data(),
				Equal:    fixedarray.Equal(left, right),
				NotEqual: fixedarray.NotEqual(left, right),
				Less:     fixedarray.Less(left, right),
				Compare:  fixedarray.Compare(left, right),
			})
		},
	}
}

type arrayReport struct {
	Length   int   `yaml:"length"`
	Elements []int `yaml:"elements"`
}

func (r arrayReport) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "length: %d\nelements: %v\n", r.Length, r.Elements)
	return err
}

func newFillCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fill LENGTH VALUE",
		Short: "Build an array of LENGTH copies of VALUE.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse length: %w", err)
			}
			if n < 0 {
				return fmt.Errorf("length must not be negative, got %d", n)
			}
			v, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parse value: %w", err)
			}
			arr, err := fixedarray.Filled(n, v)
			if err != nil {
				a.log.Error().Err(err).Int("length", n).Msg("allocate")
				return err
			}
			defer arr.Release()
			return a.render(cmd.OutOrStdout(), arrayReport{Length: arr.Len(), Elements: arr.Data()})
		},
	}
}

func newReverseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reverse LIST",
		Short: "Copy LIST through its reverse iterators.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parseList(args[0], a.cfg.Separator)
			if err != nil {
				return err
			}
			defer src.Release()
			rev, err := fixedarray.FromReverseRange(src.CRBegin(), src.CREnd())
			if err != nil {
				return err
			}
			defer rev.Release()
			return a.render(cmd.OutOrStdout(), arrayReport{Length: rev.Len(), Elements: rev.Data()})
		},
	}
}

type atReport struct {
	Position int `yaml:"position"`
	Value    int `yaml:"value"`
}

func (r atReport) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "at(%d): %d\n", r.Position, r.Value)
	return err
}

func newAtCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "at LIST POSITION",
		Short: "Read LIST[POSITION] with bounds checking.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			arr, err := parseList(args[0], a.cfg.Separator)
			if err != nil {
				return err
			}
			defer arr.Release()
			pos, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parse position: %w", err)
			}
			p, err := arr.At(pos)
			if errors.Is(err, fixedarray.ErrOutOfRange) {
				a.log.Warn().Int("position", pos).Int("length", arr.Len()).Msg("out of range")
				return err
			}
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), atReport{Position: pos, Value: *p})
		},
	}
}
