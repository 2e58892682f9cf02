package service

import (
	"context"
	"errors"
	"strings"

	settingserrors "carhire/internal/settings/errors"
	"carhire/internal/settings/repository"
	"carhire/internal/settings/validator"
	"carhire/pkg/cache"
	"carhire/pkg/config"
	apperrors "carhire/pkg/errors"
	"carhire/pkg/metrics"
	"carhire/pkg/model"
	"carhire/pkg/sanitizer"
	"carhire/pkg/validation"

	"go.mongodb.org/mongo-driver/bson"
)

type SettingsService interface {
	GetPricing(ctx context.Context) (*model.PricingSettings, error)
	SavePricing(ctx context.Context, settings *model.PricingSettings) (*model.PricingSettings, error)
	GetWebsite(ctx context.Context) (*model.WebsiteSettings, error)
	SaveWebsite(ctx context.Context, update *model.WebsiteSettingsUpdate) (*model.WebsiteSettings, error)
}

type settingsService struct {
	repo      repository.SettingsRepository
	validator *validator.SettingsValidator
	cache     cache.Cache
	metrics   *metrics.Metrics
	cfg       *config.Config
}

func NewSettingsService(
	repo repository.SettingsRepository,
	validator *validator.SettingsValidator,
	c cache.Cache,
	m *metrics.Metrics,
	cfg *config.Config,
) SettingsService {
	if c == nil {
		c = cache.Noop{}
	}
	return &settingsService{
		repo:      repo,
		validator: validator,
		cache:     c,
		metrics:   m,
		cfg:       cfg,
	}
}

// GetPricing never fails: a missing document yields the defaults and a read
// error is logged and answered with the defaults.
func (s *settingsService) GetPricing(ctx context.Context) (*model.PricingSettings, error) {
	pricing, err := cache.Fetch(ctx, s.cache, cache.KeyPricingSettings, s.cfg.CacheTTL, s.observe("pricing_settings"),
		func(ctx context.Context) (model.PricingSettings, error) {
			return load(ctx, s.repo.FindPricing, DefaultPricing())
		})
	if err != nil {
		s.cfg.Log.Warn("Failed to read pricing settings, using defaults", "error", err)
		pricing = DefaultPricing()
	}
	return &pricing, nil
}

func (s *settingsService) GetWebsite(ctx context.Context) (*model.WebsiteSettings, error) {
	website, err := cache.Fetch(ctx, s.cache, cache.KeyWebsiteSettings, s.cfg.CacheTTL, s.observe("website_settings"),
		func(ctx context.Context) (model.WebsiteSettings, error) {
			return load(ctx, s.repo.FindWebsite, DefaultWebsite())
		})
	if err != nil {
		s.cfg.Log.Warn("Failed to read website settings, using defaults", "error", err)
		website = DefaultWebsite()
	}
	return &website, nil
}

func load[T any](ctx context.Context, find func(context.Context) (bson.M, error), defaults T) (T, error) {
	doc, err := find(ctx)
	if err != nil {
		if errors.Is(err, settingserrors.ErrNotFound) {
			return defaults, nil
		}
		return defaults, err
	}
	return mergeOver(defaults, doc)
}

func (s *settingsService) SavePricing(ctx context.Context, settings *model.PricingSettings) (*model.PricingSettings, error) {
	if err := s.validator.ValidatePricing(settings); err != nil {
		s.cfg.Log.Warn("Invalid pricing settings", "error", err)
		if errors.Is(err, validator.ErrRentalDaysRange) {
			return nil, apperrors.Validation(validator.ErrRentalDaysRange.Message, validation.ValidationErrors{validator.ErrRentalDaysRange}.Details())
		}
		return nil, invalidSettings("Invalid pricing settings", err)
	}

	fields, err := toDocument(settings)
	if err != nil {
		return nil, apperrors.Internal("Failed to save pricing settings", err)
	}
	delete(fields, "updatedAt")

	if err := s.repo.SavePricing(ctx, fields); err != nil {
		s.cfg.Log.Error("Failed to save pricing settings", "error", err)
		return nil, apperrors.Internal("Failed to save pricing settings", err)
	}

	s.invalidate(ctx, cache.KeyPricingSettings)
	s.cfg.Log.Info("Pricing settings saved successfully",
		"min_days", settings.MinimumRentalDays,
		"max_days", settings.MaximumRentalDays,
	)

	return s.GetPricing(ctx)
}

func (s *settingsService) SaveWebsite(ctx context.Context, update *model.WebsiteSettingsUpdate) (*model.WebsiteSettings, error) {
	sanitizeWebsite(update)

	if err := s.validator.ValidateWebsite(update); err != nil {
		s.cfg.Log.Warn("Invalid website settings", "error", err)
		return nil, invalidSettings("Invalid website settings", err)
	}

	if err := s.repo.SaveWebsite(ctx, websiteFields(update)); err != nil {
		s.cfg.Log.Error("Failed to save website settings", "error", err)
		return nil, apperrors.Internal("Failed to save website settings", err)
	}

	s.invalidate(ctx, cache.KeyWebsiteSettings)
	s.cfg.Log.Info("Website settings saved successfully", "website_name", update.WebsiteName)

	return s.GetWebsite(ctx)
}

// websiteFields selects what a save writes. Branding is always written,
// social and meta links only when non-blank, and the optional content blocks
// only when present in the request.
func websiteFields(update *model.WebsiteSettingsUpdate) bson.M {
	favicon := update.Favicon
	if favicon == "" {
		favicon = defaultFavicon
	}

	fields := bson.M{
		"websiteName": update.WebsiteName,
		"logo":        update.Logo,
		"favicon":     favicon,
		"companyName": update.CompanyName,
		"email":       update.Email,
		"phone":       update.Phone,
		"address":     update.Address,
		"description": update.Description,
	}

	nonBlank := map[string]string{
		"facebookUrl":     update.FacebookURL,
		"xUrl":            update.XURL,
		"instagramUrl":    update.InstagramURL,
		"linkedinUrl":     update.LinkedinURL,
		"metaDescription": update.MetaDescription,
		"metaKeywords":    update.MetaKeywords,
	}
	for key, value := range nonBlank {
		if strings.TrimSpace(value) != "" {
			fields[key] = value
		}
	}

	present := map[string]*string{
		"heroTitle":          update.HeroTitle,
		"heroSubtitle":       update.HeroSubtitle,
		"heroImage":          update.HeroImage,
		"heroButtonText":     update.HeroButtonText,
		"heroButtonLink":     update.HeroButtonLink,
		"heroLearnMoreText":  update.HeroLearnMoreText,
		"heroLearnMoreLink":  update.HeroLearnMoreLink,
		"termsAndConditions": update.TermsAndConditions,
	}
	for key, value := range present {
		if value != nil {
			fields[key] = *value
		}
	}

	if update.Testimonials != nil {
		fields["testimonials"] = *update.Testimonials
	}
	if update.Stats != nil {
		fields["stats"] = *update.Stats
	}

	return fields
}

func sanitizeWebsite(update *model.WebsiteSettingsUpdate) {
	update.WebsiteName = sanitizer.TrimAndNormalize(update.WebsiteName)
	update.CompanyName = sanitizer.TrimAndNormalize(update.CompanyName)
	update.Logo = strings.TrimSpace(update.Logo)
	update.Favicon = strings.TrimSpace(update.Favicon)
	update.Email = sanitizer.NormalizeEmail(update.Email)
	update.Phone = strings.TrimSpace(update.Phone)
	update.Address = sanitizer.TrimAndNormalize(update.Address)
	update.Description = sanitizer.NormalizeText(update.Description)

	update.FacebookURL = sanitizer.NormalizeURL(update.FacebookURL)
	update.XURL = sanitizer.NormalizeURL(update.XURL)
	update.InstagramURL = sanitizer.NormalizeURL(update.InstagramURL)
	update.LinkedinURL = sanitizer.NormalizeURL(update.LinkedinURL)

	if update.HeroImage != nil {
		trimmed := strings.TrimSpace(*update.HeroImage)
		update.HeroImage = &trimmed
	}
	if update.Testimonials != nil {
		for i := range *update.Testimonials {
			t := &(*update.Testimonials)[i]
			t.Name = sanitizer.NormalizeName(t.Name)
			t.Location = sanitizer.TrimAndNormalize(t.Location)
			t.Quote = sanitizer.NormalizeText(t.Quote)
		}
	}
}

func (s *settingsService) invalidate(ctx context.Context, key string) {
	if err := s.cache.Delete(ctx, key); err != nil {
		s.cfg.Log.Warn("Failed to invalidate settings cache", "key", key, "error", err)
	}
}

func (s *settingsService) observe(name string) cache.ObserveFunc {
	if s.metrics == nil {
		return nil
	}
	return func(hit bool, err error) {
		s.metrics.ObserveCache(name, hit, err)
	}
}

func invalidSettings(message string, err error) error {
	var verrs validation.ValidationErrors
	if errors.As(err, &verrs) {
		return apperrors.Validation(message, verrs.Details())
	}
	return apperrors.Validation(message, map[string]any{
		"error": err.Error(),
	})
}
