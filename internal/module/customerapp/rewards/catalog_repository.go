package rewards

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/kelvinwijaya/kopitiam/pkg/errors"
	"github.com/kelvinwijaya/kopitiam/pkg/status"
)

type PromotionRepository interface {
	FindMany(ctx context.Context) ([]Promotion, error)
	FindByID(ctx context.Context, ID string) (Promotion, error)
}

type RedemptionRepository interface {
	FindMany(ctx context.Context) ([]Redemption, error)
	FindByID(ctx context.Context, ID string) (Redemption, error)
}

type promotionDocument struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Type        string   `yaml:"type"`
	Value       float64  `yaml:"value"`
	MinSpend    *float64 `yaml:"min_spend"`
	ValidUntil  string   `yaml:"valid_until"`
	IsActive    bool     `yaml:"is_active"`
}

type redemptionDocument struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	PointsCost  int64   `yaml:"points_cost"`
	Type        string  `yaml:"type"`
	Value       float64 `yaml:"value"`
}

type rewardsCatalogDocument struct {
	Promotions  []promotionDocument  `yaml:"promotions"`
	Redemptions []redemptionDocument `yaml:"redemptions"`
}

// Catalog holds the static promotion and redemption definitions loaded
// at startup.
type Catalog struct {
	Promotions  []Promotion
	Redemptions []Redemption
}

// LoadCatalog reads the rewards catalog from the given YAML file,
// falling back to the built-in catalog when the file is absent.
func LoadCatalog(logger *logrus.Logger, file string) Catalog {
	catalog := defaultCatalog()

	buff, err := os.ReadFile(file)
	if err != nil {
		return catalog
	}

	var doc rewardsCatalogDocument
	if err := yaml.Unmarshal(buff, &doc); err != nil {
		logger.WithField("file", file).WithError(err).Error("an error occurred while parsing the rewards catalog, falling back to the built-in catalog")
		return catalog
	}

	if len(doc.Promotions) > 0 {
		promotions := make([]Promotion, len(doc.Promotions))
		for k, v := range doc.Promotions {
			var validUntil time.Time
			if v.ValidUntil != "" {
				validUntil, err = time.Parse("2006-01-02", v.ValidUntil)
				if err != nil {
					logger.WithField("promotion", v.ID).WithError(err).Error("invalid valid_until date on promotion")
				}
			}

			promotions[k] = Promotion{
				ID:          v.ID,
				Title:       v.Title,
				Description: v.Description,
				Type:        PromotionType(v.Type),
				Value:       v.Value,
				MinSpend:    v.MinSpend,
				ValidUntil:  validUntil,
				IsActive:    v.IsActive,
			}
		}
		catalog.Promotions = promotions
	}

	if len(doc.Redemptions) > 0 {
		redemptions := make([]Redemption, len(doc.Redemptions))
		for k, v := range doc.Redemptions {
			redemptions[k] = Redemption{
				ID:          v.ID,
				Name:        v.Name,
				Description: v.Description,
				PointsCost:  v.PointsCost,
				Type:        RedemptionType(v.Type),
				Value:       v.Value,
			}
		}
		catalog.Redemptions = redemptions
	}

	return catalog
}

type promotionRepository struct {
	logger     *logrus.Logger
	promotions []Promotion
	byID       map[string]Promotion
}

func NewPromotionRepository(logger *logrus.Logger, promotions []Promotion) PromotionRepository {
	byID := make(map[string]Promotion, len(promotions))
	for _, p := range promotions {
		byID[p.ID] = p
	}

	return &promotionRepository{
		logger:     logger,
		promotions: promotions,
		byID:       byID,
	}
}

// FindMany implements PromotionRepository.
func (r *promotionRepository) FindMany(ctx context.Context) ([]Promotion, error) {
	data := make([]Promotion, len(r.promotions))
	copy(data, r.promotions)

	return data, nil
}

// FindByID implements PromotionRepository.
func (r *promotionRepository) FindByID(ctx context.Context, ID string) (Promotion, error) {
	p, ok := r.byID[ID]
	if !ok {
		return Promotion{}, errors.New(http.StatusNotFound, status.NOT_FOUND, fmt.Sprintf("promotion with id '%s' is not found", ID))
	}

	return p, nil
}

type redemptionRepository struct {
	logger      *logrus.Logger
	redemptions []Redemption
	byID        map[string]Redemption
}

func NewRedemptionRepository(logger *logrus.Logger, redemptions []Redemption) RedemptionRepository {
	byID := make(map[string]Redemption, len(redemptions))
	for _, rd := range redemptions {
		byID[rd.ID] = rd
	}

	return &redemptionRepository{
		logger:      logger,
		redemptions: redemptions,
		byID:        byID,
	}
}

// FindMany implements RedemptionRepository.
func (r *redemptionRepository) FindMany(ctx context.Context) ([]Redemption, error) {
	data := make([]Redemption, len(r.redemptions))
	copy(data, r.redemptions)

	return data, nil
}

// FindByID implements RedemptionRepository.
func (r *redemptionRepository) FindByID(ctx context.Context, ID string) (Redemption, error) {
	rd, ok := r.byID[ID]
	if !ok {
		return Redemption{}, errors.New(http.StatusNotFound, status.NOT_FOUND, fmt.Sprintf("reward redemption with id '%s' is not found", ID))
	}

	return rd, nil
}

func defaultCatalog() Catalog {
	minSpend := 5.00

	return Catalog{
		Promotions: []Promotion{
			{
				ID:          "weekend-special",
				Title:       "Weekend Special",
				Description: "Get 20% off all beverages this weekend!",
				Type:        PromotionTypeDiscount,
				Value:       0.20,
				MinSpend:    &minSpend,
				IsActive:    true,
			},
			{
				ID:          "double-points",
				Title:       "Double Points Day",
				Description: "Earn 2x points on all purchases today!",
				Type:        PromotionTypePoints,
				Value:       2,
				IsActive:    true,
			},
			{
				ID:          "new-customer",
				Title:       "Welcome Bonus",
				Description: "New customers get 50 bonus points!",
				Type:        PromotionTypePoints,
				Value:       50,
				IsActive:    true,
			},
		},
		Redemptions: []Redemption{
			{
				ID:          "free-kopi",
				Name:        "Free Kopi",
				Description: "Redeem a free traditional Kopi",
				PointsCost:  100,
				Type:        RedemptionTypeFreeItem,
				Value:       1.20,
			},
			{
				ID:          "free-teh",
				Name:        "Free Teh",
				Description: "Redeem a free traditional Teh",
				PointsCost:  100,
				Type:        RedemptionTypeFreeItem,
				Value:       1.20,
			},
			{
				ID:          "discount-10",
				Name:        "10% Off",
				Description: "10% discount on your next order",
				PointsCost:  150,
				Type:        RedemptionTypeDiscount,
				Value:       0.10,
			},
			{
				ID:          "discount-20",
				Name:        "20% Off",
				Description: "20% discount on your next order",
				PointsCost:  300,
				Type:        RedemptionTypeDiscount,
				Value:       0.20,
			},
			{
				ID:          "free-milo",
				Name:        "Free Milo",
				Description: "Redeem a free Milo drink",
				PointsCost:  120,
				Type:        RedemptionTypeFreeItem,
				Value:       1.50,
			},
		},
	}
}
