package kdms

import (
	"context"
	"fmt"
	"net/http"

	"go-kdms/types"
)

// ActiveDisasters fetches all disasters with status=active.
func (c *Client) ActiveDisasters(ctx context.Context) ([]types.Disaster, error) {
	var disasters []types.Disaster
	if err := c.getJSON(ctx, "/disasters?status=active", &disasters); err != nil {
		return nil, err
	}
	return disasters, nil
}

// CountyRisks fetches all 47 counties with their current risk scores.
func (c *Client) CountyRisks(ctx context.Context) ([]types.CountyRisk, error) {
	var risks []types.CountyRisk
	if err := c.getJSON(ctx, "/counties/risk", &risks); err != nil {
		return nil, err
	}
	return risks, nil
}

// ResolveDisaster marks a disaster resolved on the backend. Only the status
// code matters; the overlay store has already applied the change locally.
func (c *Client) ResolveDisaster(ctx context.Context, disasterID int) error {
	return c.send(ctx, http.MethodPatch, fmt.Sprintf("/disasters/%d/resolve", disasterID), nil)
}

func (c *Client) Workers(ctx context.Context) ([]types.Worker, error) {
	var workers []types.Worker
	if err := c.getJSON(ctx, "/workers", &workers); err != nil {
		return nil, err
	}
	return workers, nil
}

func (c *Client) Alerts(ctx context.Context) ([]types.Alert, error) {
	var alerts []types.Alert
	if err := c.getJSON(ctx, "/alerts", &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

func (c *Client) Stats(ctx context.Context) (types.Stats, error) {
	var stats types.Stats
	err := c.getJSON(ctx, "/stats", &stats)
	return stats, err
}

// DispatchWorker assigns a field worker to a disaster.
func (c *Client) DispatchWorker(ctx context.Context, workerID, disasterID int) error {
	body := map[string]int{"worker_id": workerID, "disaster_id": disasterID}
	return c.send(ctx, http.MethodPost, "/dispatch", body)
}
