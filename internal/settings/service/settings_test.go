package service

import (
	"context"
	"errors"
	"testing"
	"time"

	settingserrors "carhire/internal/settings/errors"
	"carhire/internal/settings/validator"
	"carhire/pkg/cache"
	"carhire/pkg/config"
	apperrors "carhire/pkg/errors"
	"carhire/pkg/logger"
	"carhire/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// memoryRepository mimics the upsert $set semantics of the Mongo repository.
type memoryRepository struct {
	pricing bson.M
	website bson.M
	readErr error
	saveErr error

	lastWebsiteSave bson.M
}

func (m *memoryRepository) FindPricing(context.Context) (bson.M, error) {
	return m.find(m.pricing)
}

func (m *memoryRepository) FindWebsite(context.Context) (bson.M, error) {
	return m.find(m.website)
}

func (m *memoryRepository) find(doc bson.M) (bson.M, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	if doc == nil {
		return nil, settingserrors.ErrNotFound
	}
	return doc, nil
}

func (m *memoryRepository) SavePricing(_ context.Context, fields bson.M) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.pricing = merge(m.pricing, fields)
	return nil
}

func (m *memoryRepository) SaveWebsite(_ context.Context, fields bson.M) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.lastWebsiteSave = fields
	m.website = merge(m.website, fields)
	return nil
}

func merge(doc, fields bson.M) bson.M {
	if doc == nil {
		doc = bson.M{}
	}
	for k, v := range fields {
		doc[k] = v
	}
	return doc
}

type recordingCache struct {
	cache.Noop
	deleted []string
}

func (c *recordingCache) Delete(_ context.Context, keys ...string) error {
	c.deleted = append(c.deleted, keys...)
	return nil
}

func newTestService(repo *memoryRepository, c cache.Cache) SettingsService {
	log := logger.New(logger.Config{Level: "info", Format: logger.JSON, AddSource: false, Service: "test"})
	cfg := &config.Config{Log: log, ReadTimeout: 5 * time.Second, CacheTTL: time.Minute}
	return NewSettingsService(repo, validator.NewSettingsValidator(log), c, nil, cfg)
}

func strPtr(s string) *string {
	return &s
}

func TestSettingsService_GetWebsite_MissingDocumentYieldsDefaults(t *testing.T) {
	svc := newTestService(&memoryRepository{}, nil)

	got, err := svc.GetWebsite(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultWebsite(), *got)
}

func TestSettingsService_GetWebsite_PartialDocumentMergesOverDefaults(t *testing.T) {
	svc := newTestService(&memoryRepository{website: bson.M{"websiteName": "X"}}, nil)

	got, err := svc.GetWebsite(context.Background())
	require.NoError(t, err)

	want := DefaultWebsite()
	want.WebsiteName = "X"
	assert.Equal(t, want, *got)
}

func TestSettingsService_GetWebsite_ReadErrorFallsBackToDefaults(t *testing.T) {
	svc := newTestService(&memoryRepository{readErr: errors.New("connection refused")}, nil)

	got, err := svc.GetWebsite(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultWebsite(), *got)
}

func TestSettingsService_GetPricing(t *testing.T) {
	tests := []struct {
		name string
		repo *memoryRepository
		want func() model.PricingSettings
	}{
		{
			name: "missing document",
			repo: &memoryRepository{},
			want: DefaultPricing,
		},
		{
			name: "partial document",
			repo: &memoryRepository{pricing: bson.M{"taxRate": 15.0, "enableTax": true}},
			want: func() model.PricingSettings {
				p := DefaultPricing()
				p.TaxRate = 15
				p.EnableTax = true
				return p
			},
		},
		{
			name: "read error",
			repo: &memoryRepository{readErr: errors.New("timeout")},
			want: DefaultPricing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newTestService(tt.repo, nil).GetPricing(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want(), *got)
		})
	}
}

func TestSettingsService_SavePricing_RejectsInvertedRange(t *testing.T) {
	repo := &memoryRepository{}
	svc := newTestService(repo, nil)

	in := DefaultPricing()
	in.MinimumRentalDays = 10
	in.MaximumRentalDays = 5

	_, err := svc.SavePricing(context.Background(), &in)
	require.Error(t, err)

	appErr := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)
	assert.Equal(t, "Minimum rental days cannot be greater than maximum rental days", appErr.Message)
	assert.Nil(t, repo.pricing, "nothing should be written")
}

func TestSettingsService_SavePricing_RejectsInvalidRates(t *testing.T) {
	svc := newTestService(&memoryRepository{}, nil)

	in := DefaultPricing()
	in.TaxRate = 140

	_, err := svc.SavePricing(context.Background(), &in)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))
}

func TestSettingsService_SavePricing(t *testing.T) {
	repo := &memoryRepository{}
	c := &recordingCache{}
	svc := newTestService(repo, c)

	in := DefaultPricing()
	in.InsuranceRatePerDay = 40
	in.EnableTax = true

	got, err := svc.SavePricing(context.Background(), &in)
	require.NoError(t, err)

	assert.Equal(t, 40.0, got.InsuranceRatePerDay)
	assert.True(t, got.EnableTax)
	assert.Contains(t, c.deleted, cache.KeyPricingSettings)
	assert.NotContains(t, repo.pricing, "updatedAt")
}

func TestSettingsService_SaveWebsite_FieldSelection(t *testing.T) {
	repo := &memoryRepository{website: bson.M{"facebookUrl": "https://facebook.com/old", "heroTitle": "Old title"}}
	c := &recordingCache{}
	svc := newTestService(repo, c)

	update := &model.WebsiteSettingsUpdate{
		WebsiteName:  "  Outback   Wheels ",
		Email:        "Hello@Outback.example",
		FacebookURL:  "   ",
		InstagramURL: "instagram.com/outback",
		HeroSubtitle: strPtr("Drive further"),
	}

	got, err := svc.SaveWebsite(context.Background(), update)
	require.NoError(t, err)

	saved := repo.lastWebsiteSave
	assert.Equal(t, "Outback Wheels", saved["websiteName"])
	assert.Equal(t, "hello@outback.example", saved["email"])
	assert.Equal(t, "/favicon.png", saved["favicon"])
	assert.Equal(t, "", saved["logo"], "branding fields are always written")
	assert.NotContains(t, saved, "facebookUrl", "blank social links are not written")
	assert.Equal(t, "https://instagram.com/outback", saved["instagramUrl"])
	assert.Equal(t, "Drive further", saved["heroSubtitle"])
	assert.NotContains(t, saved, "heroTitle", "absent hero fields are not written")
	assert.NotContains(t, saved, "testimonials")

	assert.Equal(t, "Outback Wheels", got.WebsiteName)
	assert.Equal(t, "https://facebook.com/old", got.FacebookURL)
	assert.Equal(t, "Old title", got.HeroTitle)
	assert.Equal(t, DefaultWebsite().Testimonials, got.Testimonials)
	assert.Contains(t, c.deleted, cache.KeyWebsiteSettings)
}

func TestSettingsService_SaveWebsite_ContentBlocks(t *testing.T) {
	repo := &memoryRepository{}
	svc := newTestService(repo, nil)

	testimonials := []model.Testimonial{{Name: " Kim ", Location: "Perth", Quote: "Great car", Rating: 4}}
	stats := []model.Stat{}
	got, err := svc.SaveWebsite(context.Background(), &model.WebsiteSettingsUpdate{
		WebsiteName:  "Outback Wheels",
		Testimonials: &testimonials,
		Stats:        &stats,
	})
	require.NoError(t, err)

	require.Len(t, got.Testimonials, 1)
	assert.Equal(t, "Kim", got.Testimonials[0].Name)
	assert.Empty(t, got.Stats)
}

func TestSettingsService_SaveWebsite_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		update *model.WebsiteSettingsUpdate
	}{
		{"bad email", &model.WebsiteSettingsUpdate{Email: "not-an-email"}},
		{"bad logo", &model.WebsiteSettingsUpdate{Logo: "javascript:alert(1)"}},
		{"bad rating", &model.WebsiteSettingsUpdate{Testimonials: &[]model.Testimonial{{Name: "A", Quote: "B", Rating: 9}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memoryRepository{}
			_, err := newTestService(repo, nil).SaveWebsite(context.Background(), tt.update)
			require.Error(t, err)
			assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))
			assert.Nil(t, repo.lastWebsiteSave)
		})
	}
}

func TestSettingsService_SaveWebsite_RepositoryFailure(t *testing.T) {
	svc := newTestService(&memoryRepository{saveErr: errors.New("write conflict")}, nil)

	_, err := svc.SaveWebsite(context.Background(), &model.WebsiteSettingsUpdate{WebsiteName: "X"})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInternal))
}
