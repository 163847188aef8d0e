package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyaneshwarpardhi/evochain/internal/config"
	"github.com/gyaneshwarpardhi/evochain/internal/dag"
	"github.com/gyaneshwarpardhi/evochain/internal/render"
	"github.com/gyaneshwarpardhi/evochain/internal/species"
)

const (
	formatJSON = "json"
	formatDOT  = "dot"
	formatSVG  = "svg"
)

func newResolveCmd() *cobra.Command {
	var cfgPath, format string

	cmd := &cobra.Command{
		Use:   "resolve [file|-]",
		Short: "Resolve one species detail JSON document",
		Long:  "Resolve reads a species detail view (from a file, or stdin when the argument is omitted or \"-\") and prints its evolution chain.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := "-"
			if len(args) == 1 {
				src = args[0]
			}
			return runResolve(cmd, src, cfgPath, format)
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "", "optional YAML or TOML config supplying the lexicon")
	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "output format: json, dot, svg")
	return cmd
}

func runResolve(cmd *cobra.Command, src, cfgPath, format string) error {
	switch format {
	case formatJSON, formatDOT, formatSVG:
	default:
		return fmt.Errorf("unknown format %q (want json, dot or svg)", format)
	}

	cfg := config.Default()
	if cfgPath != "" {
		loader, err := config.NewLoader(cfgPath)
		if err != nil {
			return err
		}
		cfg = loader.Config()
	}

	d, err := readDetail(cmd.InOrStdin(), src)
	if err != nil {
		return err
	}
	chain := dag.Resolve(d, cfg.Describer())

	out := cmd.OutOrStdout()
	switch format {
	case formatDOT:
		_, err = io.WriteString(out, render.ToDOT(chain.Layout(), render.Options{Highlight: d.ID, Types: true}))
	case formatSVG:
		var svg []byte
		svg, err = render.RenderSVG(cmd.Context(), render.ToDOT(chain.Layout(), render.Options{Highlight: d.ID}))
		if err == nil {
			_, err = out.Write(svg)
		}
	default:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		err = enc.Encode(chain)
	}
	return err
}

func readDetail(stdin io.Reader, src string) (*species.Detail, error) {
	r := stdin
	if src != "-" {
		f, err := os.Open(src)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var d species.Detail
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode %s: %w", src, err)
	}
	return &d, nil
}
