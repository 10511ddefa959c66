package optimizer

import (
	"context"
	"encoding/json"
	"log"

	"logistics-service/internal/events"
	"logistics-service/internal/routes"
	"logistics-service/pkg/kafka"
)

// Optimizer consumes shipment.created events and runs route optimization for
// each new shipment, so every shipment gets a result without a manual call.
type Optimizer struct {
	kafka  *kafka.Client
	routes *routes.Service
}

// NewOptimizer creates a new optimizer.
func NewOptimizer(k *kafka.Client, r *routes.Service) *Optimizer {
	return &Optimizer{kafka: k, routes: r}
}

// Start begins consuming shipment.created in a background goroutine.
func (o *Optimizer) Start(ctx context.Context) {
	o.kafka.Subscribe(ctx, kafka.TopicShipmentCreated, "optimizer-group", func(data []byte) error {
		var ev events.ShipmentCreatedEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			return err
		}

		log.Printf("[optimizer] shipment.created → shipment=%s vehicle=%s", ev.ShipmentID, ev.VehicleID)

		res, err := o.routes.Optimize(ctx, ev.ShipmentID)
		if err != nil {
			log.Printf("[optimizer] optimization failed for shipment %s: %v", ev.ShipmentID, err)
			return err
		}

		log.Printf("[optimizer] shipment %s → %.2fkm, %.2fL", ev.ShipmentID, res.DistanceKm, res.FuelLitres)
		return nil
	})
}
