package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"seatwise/models"
	"seatwise/utils"
)

// librariesPage mirrors the paged directory search response. The end
// of the listing is signalled redundantly: an explicit next flag, a
// total count, or a page shorter than max_size.
type librariesPage struct {
	Data struct {
		Results []models.Library `json:"results"`
		Next    *bool            `json:"next"`
		Total   *int             `json:"total"`
		MaxSize int              `json:"max_size"`
	} `json:"data"`
}

// directoryPageDelay spaces consecutive page requests so a long listing
// does not burst against the directory.
const directoryPageDelay = 500 * time.Millisecond

// GetLibraries pages through the directory search for query, honoring
// every end-of-listing signal the service provides. Records missing an
// id or name are dropped. Results are cached with the floors TTL; site
// listings barely change.
func (c *Client) GetLibraries(ctx context.Context, query string) ([]models.Library, error) {
	var libraries []models.Library
	key := "libraries_" + query

	err := utils.GetCached(ctx, key, c.floorsTTL, &libraries, func() ([]byte, error) {
		var all []models.Library
		fetched := 0
		for page := 0; ; page++ {
			body := map[string]any{
				"search_query": query,
				"page":         page,
			}
			status, raw, err := c.postJSON(ctx, c.directoryBase+"/sites", body)
			if err != nil {
				return nil, err
			}
			if status < 200 || status >= 300 {
				return nil, fmt.Errorf("directory search returned %d", status)
			}

			var parsed librariesPage
			if err := json.Unmarshal(raw, &parsed); err != nil {
				return nil, fmt.Errorf("invalid directory response on page %d: %w", page, err)
			}
			results := parsed.Data.Results
			if len(results) == 0 {
				break
			}
			fetched += len(results)
			for _, lib := range results {
				if lib.ID == "" || lib.Name == "" {
					c.logger.Warn("dropping directory record missing id or name",
						zap.String("query", query), zap.Int("page", page))
					continue
				}
				all = append(all, lib)
			}

			if parsed.Data.Next != nil && !*parsed.Data.Next {
				break
			}
			if parsed.Data.Total != nil && fetched >= *parsed.Data.Total {
				break
			}
			if parsed.Data.MaxSize > 0 && len(results) < parsed.Data.MaxSize {
				break
			}

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.pageDelay):
			}
		}
		return json.Marshal(all)
	})
	return libraries, err
}

// floorsResponse mirrors the site types endpoint.
type floorsResponse struct {
	Types []models.Floor `json:"types"`
}

// GetFloors fetches the room/floor metadata of one library.
func (c *Client) GetFloors(ctx context.Context, libraryID string) ([]models.Floor, error) {
	var floors []models.Floor
	key := "floors_" + libraryID

	err := utils.GetCached(ctx, key, c.floorsTTL, &floors, func() ([]byte, error) {
		raw, err := c.getRaw(ctx, fmt.Sprintf("%s/site/%s/types", c.reservationBase, libraryID))
		if err != nil {
			return nil, err
		}
		var parsed floorsResponse
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return nil, fmt.Errorf("invalid floors response: %w", err)
		}
		return json.Marshal(parsed.Types)
	})
	return floors, err
}

// GetSeats fetches per-seat slot lists for one floor and date. The TTL
// is short: seat availability changes while users browse.
func (c *Client) GetSeats(ctx context.Context, libraryID, floorID, date string) ([]models.Seat, error) {
	var seats []models.Seat
	key := fmt.Sprintf("seats_%s_%s_%s", libraryID, floorID, date)

	err := utils.GetCached(ctx, key, c.seatsTTL, &seats, func() ([]byte, error) {
		url := fmt.Sprintf("%s/resources/%s/available?date=%s&type=%s",
			c.reservationBase, libraryID, date, floorID)
		return c.getRaw(ctx, url)
	})
	return seats, err
}

// GetAllSeats fans out over every floor of a library and annotates each
// seat with its floor identity, so the optimizer can score proximity
// across rooms. A floor whose fetch fails is skipped with a warning
// rather than failing the whole snapshot.
func (c *Client) GetAllSeats(ctx context.Context, libraryID, date string) ([]models.Seat, error) {
	floors, err := c.GetFloors(ctx, libraryID)
	if err != nil {
		return nil, err
	}

	var all []models.Seat
	for _, floor := range floors {
		seats, err := c.GetSeats(ctx, libraryID, floor.ResourceType, date)
		if err != nil {
			c.logger.Warn("skipping floor with failed seat fetch",
				zap.String("libraryId", libraryID),
				zap.String("floorId", floor.ResourceType),
				zap.Error(err))
			continue
		}
		for i := range seats {
			seats[i].FloorID = floor.ResourceType
			seats[i].FloorName = floor.LocalizedDescription
		}
		all = append(all, seats...)
	}
	return all, nil
}
