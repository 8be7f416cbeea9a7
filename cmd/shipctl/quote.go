package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/RoGogDBD/parcelrate/internal/models"
	"github.com/RoGogDBD/parcelrate/internal/pricing"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// tierFile - тариф в YAML. Суммы читаются строками, чтобы не терять точность.
type tierFile struct {
	Name                string `yaml:"name"`
	BaseRate            string `yaml:"base_rate"`
	BaseWeight          string `yaml:"base_weight"`
	OversizeRate        string `yaml:"oversize_rate"`
	OverweightRatePerKg string `yaml:"overweight_rate_per_kg"`
	FragileRate         string `yaml:"fragile_rate"`
	UrgentRate          string `yaml:"urgent_rate"`
}

func (f tierFile) toTier() (models.RateTier, error) {
	t := models.RateTier{Name: f.Name}
	fields := []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"base_rate", f.BaseRate, &t.BaseRate},
		{"base_weight", f.BaseWeight, &t.BaseWeight},
		{"oversize_rate", f.OversizeRate, &t.OversizeRate},
		{"overweight_rate_per_kg", f.OverweightRatePerKg, &t.OverweightRatePerKg},
		{"fragile_rate", f.FragileRate, &t.FragileRate},
		{"urgent_rate", f.UrgentRate, &t.UrgentRate},
	}
	for _, field := range fields {
		if field.raw == "" {
			continue
		}
		v, err := decimal.NewFromString(field.raw)
		if err != nil {
			return models.RateTier{}, fmt.Errorf("%s: %w", field.name, err)
		}
		*field.dst = v
	}
	return t, nil
}

func loadTierFile(path string) (tierFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return tierFile{}, fmt.Errorf("read tier file: %w", err)
	}
	var f tierFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return tierFile{}, fmt.Errorf("parse tier file %q: %w", path, err)
	}
	return f, nil
}

func newQuoteCmd() *cobra.Command {
	var (
		tierPath string
		tier     tierFile
		dims     models.PackageDimensions
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Compute a shipping price offline",
		Long: `Computes the shipping price for one package with the same engine the service uses.
The tier is read from a YAML file (--tier-file) or assembled from flags.`,
		Example: `  shipctl quote --tier-file tier.yaml --width 10 --length 10 --height 10 --weight 7
  shipctl quote --base-rate 10000 --base-weight 5 --overweight-rate 2000 --weight 7 --urgent`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src := tier
			if tierPath != "" {
				f, err := loadTierFile(tierPath)
				if err != nil {
					return err
				}
				src = f
			}
			t, err := src.toTier()
			if err != nil {
				return err
			}

			q, err := pricing.Quote(dims, t)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(q)
			}
			b := q.Breakdown
			fmt.Fprintf(out, "volume:     %s\n", q.Volume.String())
			fmt.Fprintf(out, "base:       %s\n", b.Base.StringFixed(pricing.CurrencyPlaces))
			fmt.Fprintf(out, "oversize:   %s\n", b.Oversize.StringFixed(pricing.CurrencyPlaces))
			fmt.Fprintf(out, "overweight: %s\n", b.Overweight.StringFixed(pricing.CurrencyPlaces))
			fmt.Fprintf(out, "fragile:    %s\n", b.Fragile.StringFixed(pricing.CurrencyPlaces))
			fmt.Fprintf(out, "urgent:     %s\n", b.Urgent.StringFixed(pricing.CurrencyPlaces))
			fmt.Fprintf(out, "total:      %s\n", q.Total.StringFixed(pricing.CurrencyPlaces))
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&tierPath, "tier-file", "", "YAML file with the rate tier")
	fl.StringVar(&tier.BaseRate, "base-rate", "", "Tier base rate")
	fl.StringVar(&tier.BaseWeight, "base-weight", "", "Tier base weight, kg")
	fl.StringVar(&tier.OversizeRate, "oversize-rate", "", "Tier oversize fee")
	fl.StringVar(&tier.OverweightRatePerKg, "overweight-rate", "", "Tier fee per kg over the base weight")
	fl.StringVar(&tier.FragileRate, "fragile-rate", "", "Tier fragile fee")
	fl.StringVar(&tier.UrgentRate, "urgent-rate", "", "Tier urgent fee")
	fl.Float64Var(&dims.Width, "width", 0, "Width, cm")
	fl.Float64Var(&dims.Length, "length", 0, "Length, cm")
	fl.Float64Var(&dims.Height, "height", 0, "Height, cm")
	fl.Float64Var(&dims.Weight, "weight", 0, "Weight, kg")
	fl.BoolVar(&dims.IsFragile, "fragile", false, "Package is fragile")
	fl.BoolVar(&dims.IsUrgent, "urgent", false, "Urgent delivery")
	fl.BoolVar(&asJSON, "json", false, "Print the quote as JSON")
	cmd.MarkFlagsMutuallyExclusive("tier-file", "base-rate")

	return cmd
}
