package menu

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/kelvinwijaya/kopitiam/pkg/errors"
	"github.com/kelvinwijaya/kopitiam/pkg/status"
)

type CatalogRepository interface {
	FindMany(ctx context.Context) ([]MenuItem, error)
	FindManyByCategory(ctx context.Context, category string) ([]MenuItem, error)
	FindByID(ctx context.Context, ID string) (MenuItem, error)
}

type menuItemDocument struct {
	ID                      string                  `yaml:"id"`
	Name                    string                  `yaml:"name"`
	Description             string                  `yaml:"description"`
	BasePrice               float64                 `yaml:"base_price"`
	Category                string                  `yaml:"category"`
	Popular                 bool                    `yaml:"popular"`
	AvailableCustomizations AvailableCustomizations `yaml:"available_customizations"`
}

type catalogDocument struct {
	Items []menuItemDocument `yaml:"items"`
}

type catalogRepository struct {
	logger *logrus.Logger
	items  []MenuItem
	byID   map[string]MenuItem
}

// NewCatalogRepository builds the static menu catalog. The catalog is
// read once from the given YAML file; when the file is absent the
// built-in kopitiam menu is used instead.
func NewCatalogRepository(logger *logrus.Logger, file string) CatalogRepository {
	items := defaultMenuItems()

	if buff, err := os.ReadFile(file); err == nil {
		var doc catalogDocument
		if err := yaml.Unmarshal(buff, &doc); err != nil {
			logger.WithField("file", file).WithError(err).Error("an error occurred while parsing the menu catalog, falling back to the built-in menu")
		} else if len(doc.Items) > 0 {
			items = make([]MenuItem, len(doc.Items))
			for k, v := range doc.Items {
				items[k] = MenuItem{
					ID:                      v.ID,
					Name:                    v.Name,
					Description:             v.Description,
					BasePrice:               v.BasePrice,
					Category:                v.Category,
					Popular:                 v.Popular,
					AvailableCustomizations: v.AvailableCustomizations,
				}
			}
		}
	}

	byID := make(map[string]MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	return &catalogRepository{
		logger: logger,
		items:  items,
		byID:   byID,
	}
}

// FindMany implements CatalogRepository.
func (r *catalogRepository) FindMany(ctx context.Context) ([]MenuItem, error) {
	data := make([]MenuItem, len(r.items))
	copy(data, r.items)

	return data, nil
}

// FindManyByCategory implements CatalogRepository.
func (r *catalogRepository) FindManyByCategory(ctx context.Context, category string) ([]MenuItem, error) {
	data := make([]MenuItem, 0)

	for _, item := range r.items {
		if item.Category == category {
			data = append(data, item)
		}
	}

	return data, nil
}

// FindByID implements CatalogRepository.
func (r *catalogRepository) FindByID(ctx context.Context, ID string) (MenuItem, error) {
	item, ok := r.byID[ID]
	if !ok {
		return MenuItem{}, errors.New(http.StatusNotFound, status.NOT_FOUND, fmt.Sprintf("menu item with id '%s' is not found", ID))
	}

	return item, nil
}

func defaultMenuItems() []MenuItem {
	all := AvailableCustomizations{CupSize: true, Temperature: true, SugarLevel: true, MilkType: true}
	noMilk := AvailableCustomizations{CupSize: true, Temperature: true, SugarLevel: true, MilkType: false}

	return []MenuItem{
		{
			ID:                      "kopi-001",
			Name:                    "Kopi",
			Description:             "Traditional Nanyang coffee with condensed milk - the classic brew",
			BasePrice:               2.20,
			Category:                "coffee",
			Popular:                 true,
			AvailableCustomizations: all,
		},
		{
			ID:                      "kopi-002",
			Name:                    "Kopi-O",
			Description:             "Black coffee with sugar - strong and aromatic without milk",
			BasePrice:               1.80,
			Category:                "coffee",
			AvailableCustomizations: noMilk,
		},
		{
			ID:                      "kopi-003",
			Name:                    "Kopi-C",
			Description:             "Coffee with evaporated milk and sugar - smooth and creamy",
			BasePrice:               2.50,
			Category:                "coffee",
			AvailableCustomizations: noMilk,
		},
		{
			ID:                      "teh-001",
			Name:                    "Teh",
			Description:             "Traditional milk tea with condensed milk - smooth and comforting",
			BasePrice:               2.00,
			Category:                "tea",
			Popular:                 true,
			AvailableCustomizations: all,
		},
		{
			ID:                      "teh-002",
			Name:                    "Teh-O",
			Description:             "Black tea with sugar - refreshing and aromatic without milk",
			BasePrice:               1.60,
			Category:                "tea",
			AvailableCustomizations: noMilk,
		},
		{
			ID:                      "teh-003",
			Name:                    "Teh-C",
			Description:             "Tea with evaporated milk and sugar - light and smooth",
			BasePrice:               2.30,
			Category:                "tea",
			AvailableCustomizations: noMilk,
		},
		{
			ID:          "teh-004",
			Name:        "Teh Tarik",
			Description: "Pulled tea - frothy and aromatic Malaysian favorite",
			BasePrice:   2.80,
			Category:    "tea",
			Popular:     true,
			// Teh Tarik is served hot only.
			AvailableCustomizations: AvailableCustomizations{CupSize: true, Temperature: false, SugarLevel: true, MilkType: true},
		},
		{
			ID:                      "specialty-001",
			Name:                    "Milo",
			Description:             "Classic chocolate malt drink - childhood favorite",
			BasePrice:               2.50,
			Category:                "specialty",
			AvailableCustomizations: all,
		},
	}
}
