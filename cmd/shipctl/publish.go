package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/RoGogDBD/parcelrate/internal/kafka"
	"github.com/RoGogDBD/parcelrate/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type packagePublisher interface {
	Publish(ctx context.Context, packages ...models.Package) error
	Close() error
}

var newPublisher = func(brokers []string, topic string) packagePublisher {
	return kafka.NewPublisher(brokers, topic)
}

var cities = []string{"Moscow", "Kazan", "Novosibirsk", "Yekaterinburg", "Samara"}

// generatePackage собирает тестовую посылку со случайными габаритами.
func generatePackage(merchantID, tierID string, rnd *rand.Rand) models.Package {
	id := uuid.New().String()
	return models.Package{
		ID:         id,
		MerchantID: merchantID,
		Receiver: models.Receiver{
			Name:    "Test Testov",
			Phone:   fmt.Sprintf("+7900%07d", rnd.IntN(10_000_000)),
			Address: fmt.Sprintf("Ploshad Mira %d", rnd.IntN(200)+1),
			City:    cities[rnd.IntN(len(cities))],
		},
		Dimensions: models.PackageDimensions{
			Width:     float64(rnd.IntN(40) + 1),
			Length:    float64(rnd.IntN(40) + 1),
			Height:    float64(rnd.IntN(40) + 1),
			Weight:    float64(rnd.IntN(200)+1) / 10,
			IsFragile: rnd.IntN(4) == 0,
			IsUrgent:  rnd.IntN(5) == 0,
		},
		TierID:    tierID,
		CODAmount: decimal.New(int64(rnd.IntN(50_000)), 0),
	}
}

func newPublishCmd() *cobra.Command {
	var (
		brokers  []string
		topic    string
		tierID   string
		merchant string
		count    int
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Send generated packages to the registration topic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 {
				return fmt.Errorf("count must be positive, got %d", count)
			}
			if _, err := uuid.Parse(tierID); err != nil {
				return fmt.Errorf("tier-id: %w", err)
			}

			rnd := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
			pkgs := make([]models.Package, 0, count)
			for i := 0; i < count; i++ {
				pkgs = append(pkgs, generatePackage(merchant, tierID, rnd))
			}

			p := newPublisher(brokers, topic)
			defer func() {
				if err := p.Close(); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "kafka writer close error: %v\n", err)
				}
			}()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			if err := p.Publish(ctx, pkgs...); err != nil {
				return fmt.Errorf("publish packages: %w", err)
			}
			for _, pkg := range pkgs {
				fmt.Fprintf(cmd.OutOrStdout(), "sent package %s\n", pkg.ID)
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringSliceVar(&brokers, "brokers", []string{"localhost:9092"}, "Kafka brokers")
	fl.StringVar(&topic, "topic", "packages", "Registration topic")
	fl.StringVar(&tierID, "tier-id", "", "Rate tier id for generated packages")
	fl.StringVar(&merchant, "merchant", "test-merchant", "Merchant id")
	fl.IntVar(&count, "count", 1, "Number of packages to send")
	fl.DurationVar(&timeout, "timeout", 10*time.Second, "Publish timeout")
	_ = cmd.MarkFlagRequired("tier-id")

	return cmd
}
