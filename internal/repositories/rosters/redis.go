package rosters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/wastelandforge/warband/internal/domain/roster"
	apperrors "github.com/wastelandforge/warband/internal/errors"
)

// Data represents the serialized form of a roster in Redis
type Data struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Faction     string     `json:"faction"`
	PointsLimit int        `json:"pointsLimit"`
	ModelsLimit int        `json:"modelsLimit"`
	LeaderTaken bool       `json:"leaderTaken"`
	Units       []unitData `json:"units"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type unitData struct {
	UID     string     `json:"uid"`
	ID      string     `json:"id"`
	Faction string     `json:"faction,omitempty"`
	Cards   []cardData `json:"cards"`
}

type cardData struct {
	ItemID string `json:"itemId"`
	ModID  string `json:"modId,omitempty"`
	Locked bool   `json:"locked"`
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed roster repository
func NewRedisRepository(client redis.UniversalClient) Repository {
	if client == nil {
		panic("redis client cannot be nil")
	}
	return &redisRepo{client: client}
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("roster:%s", id)
}

func (r *redisRepo) indexKey() string {
	return "rosters"
}

// Create stores a new roster
func (r *redisRepo) Create(ctx context.Context, rst *roster.Roster) error {
	if rst == nil {
		return apperrors.InvalidArgument("roster cannot be nil")
	}
	if rst.ID == "" {
		return apperrors.InvalidArgument("roster ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(rst.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check roster existence: %w", err)
	}
	if exists > 0 {
		return apperrors.AlreadyExistsf("roster with ID '%s' already exists", rst.ID).
			WithMeta("roster_id", rst.ID)
	}

	data := toData(rst)
	data.CreatedAt = time.Now().UTC()
	data.UpdatedAt = data.CreatedAt

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal roster: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(rst.ID), string(jsonData), 0)
	pipe.SAdd(ctx, r.indexKey(), rst.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create roster: %w", err)
	}

	return nil
}

// Get retrieves a roster by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*roster.Roster, error) {
	if id == "" {
		return nil, apperrors.InvalidArgument("roster ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return nil, apperrors.NotFoundf("roster with ID '%s' not found", id).
			WithMeta("roster_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}

	var data Data
	if err := json.Unmarshal([]byte(jsonData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roster: %w", err)
	}

	return fromData(&data), nil
}

// Update updates an existing roster
func (r *redisRepo) Update(ctx context.Context, rst *roster.Roster) error {
	if rst == nil {
		return apperrors.InvalidArgument("roster cannot be nil")
	}
	if rst.ID == "" {
		return apperrors.InvalidArgument("roster ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(rst.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check roster existence: %w", err)
	}
	if exists == 0 {
		return apperrors.NotFoundf("roster with ID '%s' not found", rst.ID).
			WithMeta("roster_id", rst.ID)
	}

	data := toData(rst)
	data.UpdatedAt = time.Now().UTC()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal roster: %w", err)
	}

	if err := r.client.Set(ctx, r.key(rst.ID), string(jsonData), 0).Err(); err != nil {
		return fmt.Errorf("failed to update roster: %w", err)
	}

	return nil
}

// Delete removes a roster
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidArgument("roster ID is required")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, r.indexKey(), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete roster: %w", err)
	}

	return nil
}

// List retrieves every stored roster
func (r *redisRepo) List(ctx context.Context) ([]*roster.Roster, error) {
	ids, err := r.client.SMembers(ctx, r.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list rosters: %w", err)
	}

	result := make([]*roster.Roster, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			rst, err := r.Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get roster %s: %w", id, err)
			}
			result[i] = rst
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

func toData(rst *roster.Roster) *Data {
	data := &Data{
		ID:          rst.ID,
		Name:        rst.Name,
		Faction:     rst.Faction,
		PointsLimit: rst.PointsLimit,
		ModelsLimit: rst.ModelsLimit,
		LeaderTaken: rst.LeaderTaken,
		Units:       make([]unitData, 0, len(rst.Units)),
	}
	for _, u := range rst.Units {
		unit := unitData{
			UID:     u.UID,
			ID:      u.DefID,
			Faction: u.Faction,
			Cards:   make([]cardData, 0, len(u.Cards)),
		}
		for _, slot := range u.Cards {
			unit.Cards = append(unit.Cards, cardData{
				ItemID: slot.ItemID,
				ModID:  slot.ModID,
				Locked: slot.Locked,
			})
		}
		data.Units = append(data.Units, unit)
	}
	return data
}

func fromData(data *Data) *roster.Roster {
	rst := &roster.Roster{
		ID:          data.ID,
		Name:        data.Name,
		Faction:     data.Faction,
		PointsLimit: data.PointsLimit,
		ModelsLimit: data.ModelsLimit,
		LeaderTaken: data.LeaderTaken,
	}
	for _, u := range data.Units {
		unit := &roster.Unit{
			UID:     u.UID,
			DefID:   u.ID,
			Faction: u.Faction,
		}
		for _, slot := range u.Cards {
			unit.Cards = append(unit.Cards, roster.CardSlot{
				ItemID: slot.ItemID,
				ModID:  slot.ModID,
				Locked: slot.Locked,
			})
		}
		rst.Units = append(rst.Units, unit)
	}
	return rst
}
