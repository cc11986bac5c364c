package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// GetUserProfile loads a user's profile joined with its city, country, and
// role reference rows and an aggregated list of skill names.
// Returns (nil, nil) when no profile exists for userID and a non-nil error
// only on storage failure, so callers can tell the two apart.
func (db *DB) GetUserProfile(ctx context.Context, userID string) (*UserProfile, error) {
	query := `
		SELECT
			COALESCE(up."firstName", '') AS first_name,
			COALESCE(up."lastName", '') AS last_name,
			COALESCE(up."Availability", '') AS availability,
			COALESCE(up."Bio", '') AS bio,
			COALESCE(jr.name, '') AS role,
			COALESCE(c.name, $2) AS city,
			COALESCE(co.name, $2) AS country,
			ARRAY_AGG(s.name) FILTER (WHERE s.name IS NOT NULL) AS skills
		FROM user_profile up
		LEFT JOIN city c ON up.city_id = c.id
		LEFT JOIN country co ON up.country_id = co.id
		LEFT JOIN job_role jr ON up.job_role_id = jr.id
		LEFT JOIN skills s ON up.id = s.user_profile_id
		WHERE up.user_id = $1
		GROUP BY up.id, jr.name, c.name, co.name
		LIMIT 1`

	var profile UserProfile
	err := db.pool.QueryRow(ctx, query, userID, locationNotSpecified).Scan(
		&profile.FirstName,
		&profile.LastName,
		&profile.Availability,
		&profile.Bio,
		&profile.Role,
		&profile.City,
		&profile.Country,
		&profile.Skills,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user profile %s: %w", userID, err)
	}

	// ARRAY_AGG with no matching skills scans as NULL
	if profile.Skills == nil {
		profile.Skills = []string{}
	}

	return &profile, nil
}
