package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"vaga-hub/internal/domain/listing"

	"github.com/google/uuid"
)

type listingCacheKeyInput struct {
	Criteria listing.Criteria   `json:"criteria"`
	Sort     listing.SortOption `json:"sort"`
	Page     int                `json:"page"`
	PerPage  int                `json:"per_page"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func normalizeCriteria(c listing.Criteria) listing.Criteria {
	c.Search = normalizeSearchValue(c.Search)
	c.Location = normalizeSearchValue(c.Location)
	c.Experience = normalizeSearchValue(c.Experience)
	c.ContractType = normalizeSearchValue(c.ContractType)
	c.DatePosted = normalizeSearchValue(c.DatePosted)
	c.Country = normalizeSearchValue(c.Country)
	c.CountryCode = normalizeSearchValue(c.CountryCode)
	c.Company = normalizeSearchValue(c.Company)
	c.Tags = normalizeSearchValues(c.Tags)
	c.Benefits = normalizeSearchValues(c.Benefits)
	return c
}

func normalizeSearchValues(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = normalizeSearchValue(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func ListingsCacheKey(c listing.Criteria, sortBy listing.SortOption, page, perPage int) string {
	in := listingCacheKeyInput{
		Criteria: normalizeCriteria(c),
		Sort:     sortBy,
		Page:     page,
		PerPage:  perPage,
	}
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "listings:search:" + hex.EncodeToString(sum[:])
}

func ListingsLockKey(searchKey string) string {
	searchKey = strings.TrimSpace(searchKey)
	if strings.HasPrefix(searchKey, "listings:search:") {
		return "listings:lock:" + strings.TrimPrefix(searchKey, "listings:search:")
	}
	return "listings:lock:" + searchKey
}

// ListingsCachePattern matches every cached page so admin writes can drop
// them all at once.
const ListingsCachePattern = "listings:*"

func RecommendationsCacheKey(userID uuid.UUID) string {
	return "recs:user:" + userID.String()
}

const RecommendationsCachePattern = "recs:*"

func SessionCacheKey(clientID string) string {
	return "session:" + strings.TrimSpace(clientID)
}
