package redis

import (
	"context"
	"fmt"
	"log"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const locationGeoKey = "location:points"

// Client wraps the Redis connection.
type Client struct {
	rdb *goredis.Client
}

// NewClient connects to Redis with retry.
func NewClient(addr string) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{Addr: addr})
	for i := 0; i < 20; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := rdb.Ping(ctx).Err(); err == nil {
			cancel()
			log.Println("Connected to Redis")
			return &Client{rdb: rdb}, nil
		}
		cancel()
		log.Printf("Waiting for Redis... (%d/20)", i+1)
		time.Sleep(2 * time.Second)
	}
	return nil, fmt.Errorf("redis: failed to connect after 20 attempts")
}

// AddLocation registers a location's position in the GEO index.
func (c *Client) AddLocation(ctx context.Context, locationID string, lat, lng float64) error {
	return c.rdb.GeoAdd(ctx, locationGeoKey, &goredis.GeoLocation{
		Name:      locationID,
		Longitude: lng,
		Latitude:  lat,
	}).Err()
}

// NearbyLocations returns location IDs within radiusKm of (lat,lng),
// nearest first.
func (c *Client) NearbyLocations(ctx context.Context, lat, lng, radiusKm float64, count int) ([]string, error) {
	return c.rdb.GeoSearch(ctx, locationGeoKey, &goredis.GeoSearchQuery{
		Longitude:  lng,
		Latitude:   lat,
		Radius:     radiusKm,
		RadiusUnit: "km",
		Count:      count,
		Sort:       "ASC",
	}).Result()
}

// CacheRouteResult stores the latest optimization result for a shipment with TTL.
func (c *Client) CacheRouteResult(ctx context.Context, shipmentID string, data map[string]string) error {
	key := "route:" + shipmentID + ":latest"
	pipe := c.rdb.Pipeline()
	pipe.HSet(ctx, key, data)
	pipe.Expire(ctx, key, 24*time.Hour)
	_, err := pipe.Exec(ctx)
	return err
}

// GetCachedRouteResult retrieves a shipment's cached latest result hash.
// An empty map means a cache miss.
func (c *Client) GetCachedRouteResult(ctx context.Context, shipmentID string) (map[string]string, error) {
	return c.rdb.HGetAll(ctx, "route:"+shipmentID+":latest").Result()
}

// Close tears down the Redis connection.
func (c *Client) Close() error { return c.rdb.Close() }
