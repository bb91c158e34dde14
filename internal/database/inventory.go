package database

import "inventory-portal/internal/models"

const lowStockThreshold = 10

// InventorySummary is the dashboard aggregate.
type InventorySummary struct {
	TotalItems    int64
	TotalValue    float64
	LowStockCount int64
	RecentItems   []models.InventoryItem
}

func ListInventoryItems() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := DB.Order("name asc").Find(&items).Error
	return items, err
}

// AggregateInventory computes the dashboard numbers. An empty table
// yields zeros and an empty recent list.
func AggregateInventory() (*InventorySummary, error) {
	s := &InventorySummary{}

	if err := DB.Model(&models.InventoryItem{}).Count(&s.TotalItems).Error; err != nil {
		return nil, err
	}
	if err := DB.Model(&models.InventoryItem{}).
		Select("COALESCE(SUM(quantity * price), 0)").
		Scan(&s.TotalValue).Error; err != nil {
		return nil, err
	}
	if err := DB.Model(&models.InventoryItem{}).
		Where("quantity < ?", lowStockThreshold).
		Count(&s.LowStockCount).Error; err != nil {
		return nil, err
	}
	if err := DB.Order("last_updated desc").
		Limit(5).
		Find(&s.RecentItems).Error; err != nil {
		return nil, err
	}

	return s, nil
}
