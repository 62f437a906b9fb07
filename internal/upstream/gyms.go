package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/claude/gogym/internal/models"
)

// ListGyms fetches the full gym listing.
func (c *Client) ListGyms(ctx context.Context, token string) ([]models.Gym, error) {
	var gyms []models.Gym
	if err := c.do(ctx, http.MethodGet, "/gyms", token, nil, nil, &gyms); err != nil {
		return nil, err
	}
	return gyms, nil
}

// GetGym fetches one gym by ID.
func (c *Client) GetGym(ctx context.Context, token string, id int64) (*models.Gym, error) {
	var gym models.Gym
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/gyms/%d", id), token, nil, nil, &gym); err != nil {
		return nil, err
	}
	return &gym, nil
}

// SearchGyms runs a free-text gym search.
func (c *Client) SearchGyms(ctx context.Context, token, query string) ([]models.Gym, error) {
	params := url.Values{}
	params.Set("q", query)
	var gyms []models.Gym
	if err := c.do(ctx, http.MethodGet, "/gyms/search", token, params, nil, &gyms); err != nil {
		return nil, err
	}
	return gyms, nil
}

// RecommendedGyms fetches the recommended listing shown on the top page.
func (c *Client) RecommendedGyms(ctx context.Context, token string) ([]models.Gym, error) {
	var gyms []models.Gym
	if err := c.do(ctx, http.MethodGet, "/gyms/recommended", token, nil, nil, &gyms); err != nil {
		return nil, err
	}
	return gyms, nil
}

// GetGymReviews fetches a gym's reviews.
func (c *Client) GetGymReviews(ctx context.Context, token string, gymID int64) ([]models.GymReview, error) {
	var reviews []models.GymReview
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/gyms/%d/reviews", gymID), token, nil, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateGymReview posts a review for a gym.
func (c *Client) CreateGymReview(ctx context.Context, token string, gymID int64, review models.NewGymReview) (*models.GymReview, error) {
	var created models.GymReview
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/gyms/%d/reviews", gymID), token, nil, review, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// SendContact forwards a contact-form message.
func (c *Client) SendContact(ctx context.Context, msg models.ContactMessage) error {
	return c.do(ctx, http.MethodPost, "/contact", "", nil, msg, nil)
}
