package services

import (
	"invoice_manager/internal/models"
	"invoice_manager/internal/redis"
	"time"
)

const companyCacheKey = "company:info"

type CompanyService interface {
	GetCompanyInfo() models.CompanyProfile
	GetBankDetails() models.BankDetails
}

type companyService struct {
	cache    *redis.Client
	cacheTTL int
}

func NewCompanyService(cache *redis.Client, ttl int) CompanyService {
	return &companyService{cache: cache, cacheTTL: ttl}
}

// GetCompanyInfo serves the cached profile when present and always falls
// back to the built-in default; document generation must not depend on the
// cache being reachable.
func (s *companyService) GetCompanyInfo() models.CompanyProfile {
	if s.cache != nil {
		var cached models.CompanyProfile
		if err := s.cache.GetCached(companyCacheKey, &cached); err == nil && cached.Name != "" {
			return cached
		}
	}

	profile := models.DefaultCompanyProfile()
	if s.cache != nil {
		s.cache.SetCached(companyCacheKey, profile, cacheTTL(s.cacheTTL))
	}
	return profile
}

func (s *companyService) GetBankDetails() models.BankDetails {
	return models.DefaultBankDetails()
}

func cacheTTL(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}
